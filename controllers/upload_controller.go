package controllers

import (
	"net/http"

	"github.com/care2you/care2you-api/services"
	"github.com/care2you/care2you-api/utils"
	"github.com/gin-gonic/gin"
)

// BunnyUpload handles POST /api/bunny-upload - uploads a single file to the
// file store and returns its URL
func BunnyUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "no file provided",
		})
		return
	}

	if err := utils.ValidateUploadFile(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	storage := services.GetStorageService()
	url, err := storage.UploadFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
	})
}

// CaregiverFileUpload handles POST /api/caregiver-file-management - uploads
// one or more certificate files and returns their URLs
func CaregiverFileUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "no files provided",
		})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "no files provided",
		})
		return
	}

	for _, fileHeader := range fileHeaders {
		if err := utils.ValidateUploadFile(fileHeader); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
	}

	storage := services.GetStorageService()
	urls := make([]string, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		url, err := storage.UploadFile(fileHeader)
		if err != nil {
			// Files uploaded before the failure stay in the store.
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"files":   urls,
	})
}

// deleteFilesRequest is the body of DELETE /api/caregiver-file-management
type deleteFilesRequest struct {
	URLs []string `json:"urls" binding:"required,min=1"`
}

// CaregiverFileDelete handles DELETE /api/caregiver-file-management -
// removes certificate files from the file store by URL
func CaregiverFileDelete(c *gin.Context) {
	var req deleteFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "urls are required",
		})
		return
	}

	storage := services.GetStorageService()
	for _, url := range req.URLs {
		if err := storage.DeleteFile(url); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
