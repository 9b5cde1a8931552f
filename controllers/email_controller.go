package controllers

import (
	"fmt"
	"net/http"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/services"
	"github.com/gin-gonic/gin"
)

// signupEmailRequest carries the template fields of /api/send-email-signup
type signupEmailRequest struct {
	UserID    string `json:"userId" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" binding:"required"`
	City      string `json:"city"`
}

// SendEmailSignup handles POST /api/send-email-signup - notifies the
// operations inbox about a completed signup. The handler passes the
// provider's response through unchanged.
func SendEmailSignup(c *gin.Context) {
	var req signupEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "userId and role are required",
		})
		return
	}

	cfg := config.GetConfig()
	email := services.GetEmailService()
	response, err := email.Send(services.EmailMessage{
		From:    cfg.EmailFromAddress,
		To:      cfg.AdminNotifyEmail,
		Subject: "New signup completed",
		HTML: fmt.Sprintf("<p>%s %s (%s) finished onboarding with role %s in %s.</p>",
			req.FirstName, req.LastName, req.UserID, req.Role, req.City),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// serviceRequestEmailRequest carries the template fields of
// /api/send-email-service-request
type serviceRequestEmailRequest struct {
	ToEmail      string `json:"toEmail" binding:"required,email"`
	ServiceTitle string `json:"serviceTitle" binding:"required"`
	FromName     string `json:"fromName" binding:"required"`
	FromEmail    string `json:"fromEmail" binding:"omitempty,email"`
	Message      string `json:"message"`
}

// SendEmailServiceRequest handles POST /api/send-email-service-request -
// forwards a booking inquiry to the listing owner
func SendEmailServiceRequest(c *gin.Context) {
	var req serviceRequestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "toEmail, serviceTitle and fromName are required",
		})
		return
	}

	cfg := config.GetConfig()
	email := services.GetEmailService()
	response, err := email.Send(services.EmailMessage{
		From:    cfg.EmailFromAddress,
		To:      req.ToEmail,
		Subject: fmt.Sprintf("New request for %s", req.ServiceTitle),
		HTML: fmt.Sprintf("<p>%s (%s) is interested in %s.</p><p>%s</p>",
			req.FromName, req.FromEmail, req.ServiceTitle, req.Message),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
