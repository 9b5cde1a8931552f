package controllers

import (
	"net/http"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/models"
	"github.com/care2you/care2you-api/services"
	"github.com/gin-gonic/gin"
)

// userDataRequest wraps the metadata payload of the update-data endpoints.
// The payload is a free-form field bag; only the presence of a few keys is
// checked before it is merged into the user record store.
type userDataRequest struct {
	User map[string]interface{} `json:"user"`
}

// requireStringFields checks that every named key is present and non-empty
func requireStringFields(payload map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		value, ok := payload[key].(string)
		if !ok || value == "" {
			return key
		}
	}
	return ""
}

// guardRoleChange rejects payloads that try to move an already-assigned role.
// Role is set once during onboarding and never changed through this system.
func guardRoleChange(userStore services.UserStoreInterface, userID string, payload map[string]interface{}) (int, string) {
	requested, ok := payload["role"].(string)
	if !ok || requested == "" {
		return 0, ""
	}
	if !models.ValidRole(requested) || requested == models.RoleAdmin {
		return http.StatusBadRequest, "invalid role"
	}

	existing, err := userStore.GetUser(userID)
	if err != nil {
		return http.StatusInternalServerError, err.Error()
	}
	if existing.Role != "" && existing.Role != requested {
		return http.StatusBadRequest, "role cannot be changed"
	}
	return 0, ""
}

// UpdateDataService handles POST /api/update-data-service - merges the
// payload into the user record store for clients and service providers
func UpdateDataService(c *gin.Context) {
	var req userDataRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.User == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "user payload is required",
		})
		return
	}

	if missing := requireStringFields(req.User, "role", "phone", "gender"); missing != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "missing required field: " + missing,
		})
		return
	}

	userID, ok := req.User["id"].(string)
	if !ok || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "user id is required",
		})
		return
	}

	userStore := services.GetUserStoreService()
	if status, message := guardRoleChange(userStore, userID, req.User); status != 0 {
		c.JSON(status, gin.H{"result": false, "message": message})
		return
	}

	delete(req.User, "id")
	if _, err := userStore.UpdateMetadata(userID, req.User); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": false,
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// UpdateDataCare handles POST /api/update-data-care - merges the payload
// into the user record store for care givers. The required-field set differs
// from the service path on purpose; the two contracts are documented
// separately.
func UpdateDataCare(c *gin.Context) {
	var req userDataRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.User == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "user payload is required",
		})
		return
	}

	if missing := requireStringFields(req.User, "role", "phone", "gender", "dob", "nationality"); missing != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "missing required field: " + missing,
		})
		return
	}

	userID, ok := req.User["id"].(string)
	if !ok || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "user id is required",
		})
		return
	}

	userStore := services.GetUserStoreService()
	if status, message := guardRoleChange(userStore, userID, req.User); status != 0 {
		c.JSON(status, gin.H{"result": false, "message": message})
		return
	}

	delete(req.User, "id")
	if _, err := userStore.UpdateMetadata(userID, req.User); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": false,
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// changeStatusRequest is the body of /api/change-user-status
type changeStatusRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// ChangeUserStatus handles POST /api/change-user-status - flips the user's
// status between active and inactive. Read-modify-write with no version
// check; concurrent flips for the same user can lose an update.
func ChangeUserStatus(c *gin.Context) {
	var req changeStatusRequest
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

	newStatus := models.StatusActive
	if user.Status == models.StatusActive {
		newStatus = models.StatusInactive
	}

	if _, err := userStore.UpdateMetadata(req.UserID, map[string]interface{}{"status": newStatus}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": false,
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true, "newStatus": newStatus})
}

// deleteUserRequest is the body of /api/delete-user
type deleteUserRequest struct {
	UserID string `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

// DeleteUser handles POST /api/delete-user - removes the user from the user
// record store and, for service providers, cascades to their listings. The
// two deletes are independent and not atomic with each other.
func DeleteUser(c *gin.Context) {
	var req deleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  false,
			"message": "userId and role are required",
		})
		return
	}

	userStore := services.GetUserStoreService()
	if err := userStore.DeleteUser(req.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"result": false,
			"error":  err.Error(),
		})
		return
	}

	if req.Role == models.RoleService {
		db := config.GetDB()
		if err := db.Where("user_id = ?", req.UserID).Delete(&models.ServiceListing{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"result": false,
				"error":  err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}
