package controllers

import (
	"net/http"

	"github.com/care2you/care2you-api/admin"
	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/services"
	"github.com/gin-gonic/gin"
)

// AdminListUsers handles GET /api/admin/users - returns the full user table
// for the moderation panel. Reachable only behind the admin role check.
func AdminListUsers(c *gin.Context) {
	userStore := services.GetUserStoreService()
	users, err := userStore.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}

// bulkRequest is the body of /api/admin/bulk
type bulkRequest struct {
	UserIDs []string `json:"userIds" binding:"required,min=1"`
	Action  string   `json:"action" binding:"required,oneof=toggle-status delete"`
}

// bulkRowResult is the per-row outcome inside the bulk response
type bulkRowResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// AdminBulk handles POST /api/admin/bulk - applies one batch operation to
// the selected user records and returns one result per id. Rows resolve
// independently; a failed row never rolls back its siblings.
func AdminBulk(c *gin.Context) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "userIds and a valid action are required",
		})
		return
	}

	actioner := &admin.BulkActioner{
		UserStore: services.GetUserStoreService(),
		DB:        config.GetDB(),
	}

	outcomes := actioner.ApplyBatch(req.UserIDs, admin.Operation(req.Action))

	results := make(map[string]bulkRowResult, len(outcomes))
	for userID, err := range outcomes {
		if err != nil {
			results[userID] = bulkRowResult{Success: false, Error: err.Error()}
		} else {
			results[userID] = bulkRowResult{Success: true}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
	})
}
