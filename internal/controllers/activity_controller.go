package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"signage-backend/internal/services"
)

type ActivityController struct {
	Log *services.ActivityLog
}

func (ac *ActivityController) List(c *gin.Context) {
	limit := 20
	page := 1
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	entries, total, err := ac.Log.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": entries,
		"meta": gin.H{"total": total, "limit": limit, "page": page},
	})
}
