package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"signage-backend/internal/models"
	"signage-backend/internal/services"
)

// respondError maps service error kinds onto HTTP statuses. Storage
// failures are logged and surfaced as a generic 500; the detail stays out
// of the response body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("storage failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// actorEmail identifies the authenticated admin for the activity log.
func actorEmail(c *gin.Context) string {
	if uVal, ok := c.Get("user"); ok {
		if user, ok := uVal.(models.User); ok {
			return user.Email
		}
	}
	return ""
}
