package controllers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/middleware"
	"github.com/care2you/care2you-api/onboarding"
	"github.com/care2you/care2you-api/services"
	"github.com/care2you/care2you-api/utils"
	"github.com/gin-gonic/gin"
)

// transitionRequest is the body of /api/onboarding/transition. The caller
// round-trips the state between calls; nothing is held server-side.
type transitionRequest struct {
	State  onboarding.State  `json:"state" binding:"required"`
	Action onboarding.Action `json:"action" binding:"required"`
}

// OnboardingTransition handles POST /api/onboarding/transition - applies one
// reducer step to the caller-held onboarding state
func OnboardingTransition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "state and action are required",
		})
		return
	}

	next, err := onboarding.Apply(req.State, req.Action)
	if err != nil {
		var alert *onboarding.AlertError
		if errors.As(err, &alert) {
			// Rejected transition: the state comes back unchanged with the
			// alert message the caller shows inline.
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"alert":   alert.Message,
				"state":   req.State,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"state":   next,
	})
}

// OnboardingFinish handles POST /api/onboarding/finish - a multipart request
// carrying the final state as a JSON form field plus any pending certificate
// files. On success the accumulated draft is persisted to the user record
// store and the signup notification email is sent.
func OnboardingFinish(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "could not extract user information",
		})
		return
	}

	stateJSON := c.PostForm("state")
	if stateJSON == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "state form field is required",
		})
		return
	}

	var state onboarding.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "state is not valid JSON",
		})
		return
	}

	var pendingFiles []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		pendingFiles = form.File["certificates"]
	}
	for _, fileHeader := range pendingFiles {
		if err := utils.ValidateUploadFile(fileHeader); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
	}

	cfg := config.GetConfig()
	finalizer := &onboarding.Finalizer{
		UserStore:   services.GetUserStoreService(),
		Storage:     services.GetStorageService(),
		Email:       services.GetEmailService(),
		FromAddress: cfg.EmailFromAddress,
		NotifyEmail: cfg.AdminNotifyEmail,
	}

	next, err := finalizer.Finish(userID, state, pendingFiles)
	if err != nil {
		var alert *onboarding.AlertError
		if errors.As(err, &alert) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"alert":   alert.Message,
				"state":   state,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"state":   next,
	})
}
