package controllers

import (
	"net/http"

	"github.com/harsha-legends/nutri-vision-sub000/utils"

	"github.com/gin-gonic/gin"
)

type UploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadMealImage stores a meal photo and returns its public URL; the client
// attaches the URL when logging the meal.
func UploadMealImage(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "meal-photos/upload")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
