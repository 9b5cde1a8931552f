package controllers

import (
	"net/http"

	"github.com/care2you/care2you-api/services"
	"github.com/gin-gonic/gin"
)

// addCreditsRequest is the body of /api/addCredits
type addCreditsRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Credits int    `json:"credits" binding:"required,gt=0"`
}

// AddCredits handles POST /api/addCredits - tops up the user's credit
// balance. The balance is read and written in two separate calls to the user
// record store with no version check, so concurrent top-ups can lose an
// update.
func AddCredits(c *gin.Context) {
	var req addCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "userId and a positive credits amount are required",
		})
		return
	}

	userStore := services.GetUserStoreService()
	user, err := userStore.GetUser(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": false,
			"error":  err.Error(),
		})
		return
	}

	newCredits := user.Credits + req.Credits
	if _, err := userStore.UpdateMetadata(req.UserID, map[string]interface{}{"credits": newCredits}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": false,
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true, "newCredits": newCredits})
}

// decreaseCreditRequest is the body of /api/decrease-credit
type decreaseCreditRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// DecreaseCredit handles POST /api/decrease-credit - burns exactly one
// credit, as charged per published listing. A zero balance is rejected
// before any write, so the balance never goes negative.
func DecreaseCredit(c *gin.Context) {
	var req decreaseCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "userId is required",
		})
		return
	}

	userStore := services.GetUserStoreService()
	user, err := userStore.GetUser(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": false,
			"error":  err.Error(),
		})
		return
	}

	if user.Credits <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "insufficient credits",
		})
		return
	}

	newCredits := user.Credits - 1
	if _, err := userStore.UpdateMetadata(req.UserID, map[string]interface{}{"credits": newCredits}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": false,
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true, "newCredits": newCredits})
}
