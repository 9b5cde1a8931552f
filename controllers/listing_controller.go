package controllers

import (
	"net/http"

	"github.com/care2you/care2you-api/config"
	"github.com/care2you/care2you-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// addServiceRequest is the body of /api/addNewService
type addServiceRequest struct {
	UserID       string              `json:"userId" binding:"required"`
	Title        string              `json:"title" binding:"required"`
	Description  string              `json:"description" binding:"required"`
	Price        float64             `json:"price" binding:"gte=0"`
	PriceType    string              `json:"priceType" binding:"required,oneof=fix hourly"`
	WorkingHours models.WorkingHours `json:"workingHours" binding:"required"`
	Location     models.Location     `json:"location"`
	Image        string              `json:"image"`
	Calendly     string              `json:"calendly"`
}

// AddNewService handles POST /api/addNewService - publishes one listing.
// The one-credit charge is a separate call to /api/decrease-credit issued by
// the caller; the two writes are not atomic.
func AddNewService(c *gin.Context) {
	var req addServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid listing payload: " + err.Error(),
		})
		return
	}

	listing := models.ServiceListing{
		InternalID:   uuid.NewString(),
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		PriceType:    req.PriceType,
		Status:       models.StatusActive,
		WorkingHours: req.WorkingHours,
		Location:     req.Location,
		Image:        req.Image,
		Calendly:     req.Calendly,
	}

	db := config.GetDB()
	if err := db.Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": listing,
	})
}

// updateStatusRequest is the body of PATCH /api/update-status
type updateStatusRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	NewStatus *bool  `json:"newStatus" binding:"required"`
}

// UpdateListingStatus handles PATCH /api/update-status - sets a listing
// active or inactive by its external key. Toggling twice returns the listing
// to its original status.
func UpdateListingStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "serviceId and newStatus are required",
		})
		return
	}

	status := models.StatusInactive
	if *req.NewStatus {
		status = models.StatusActive
	}

	db := config.GetDB()
	var listing models.ServiceListing
	if err := db.Where("internal_id = ?", req.ServiceID).First(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if err := db.Model(&listing).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListServices handles GET /api/services - returns listings for browsing.
// With ?all=true every listing is returned; the default hides inactive ones.
func ListServices(c *gin.Context) {
	db := config.GetDB()

	query := db.Model(&models.ServiceListing{})
	if c.Query("all") != "true" {
		query = query.Where("status = ?", models.StatusActive)
	}
	if userID := c.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var listings []models.ServiceListing
	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": listings,
	})
}
