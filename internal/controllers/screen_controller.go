package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"signage-backend/internal/services"
	"signage-backend/internal/ws"
)

type ScreenController struct {
	Registry *services.ScreenRegistry
	Activity *services.ActivityLog
	Hub      *ws.ViewerHub
}

// List returns all screens ordered by position. The first call seeds the
// fixed screen set.
func (sc *ScreenController) List(c *gin.Context) {
	screens, err := sc.Registry.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": screens})
}

// Changes is the polling endpoint: screens updated strictly after the
// `since` cutoff (RFC3339). A missing or unparseable cutoff means epoch,
// i.e. everything.
func (sc *ScreenController) Changes(c *gin.Context) {
	var since time.Time
	if v := c.Query("since"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			since = t
		}
	}
	screens, err := sc.Registry.ChangesSince(since)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": screens, "since": since.UTC().Format(time.RFC3339)})
}

func (sc *ScreenController) Reorder(c *gin.Context) {
	var updates []services.PositionUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	screens, err := sc.Registry.Reorder(updates)
	if err != nil {
		respondError(c, err)
		return
	}
	sc.Activity.Record(actorEmail(c), "screens.reorder", updates)
	sc.Hub.NotifyScreensUpdated()
	c.JSON(http.StatusOK, gin.H{"data": screens})
}

type setImageRequest struct {
	ImageURL *string `json:"image_url"`
}

// SetImage assigns or clears (null) a screen's image reference.
func (sc *ScreenController) SetImage(c *gin.Context) {
	id := c.Param("id")
	var req setImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	screen, err := sc.Registry.SetImage(id, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	sc.Activity.Record(actorEmail(c), "screens.set_image", gin.H{"id": id, "image_url": req.ImageURL})
	sc.Hub.NotifyScreensUpdated()
	c.JSON(http.StatusOK, screen)
}

func (sc *ScreenController) Reset(c *gin.Context) {
	id := c.Param("id")
	screen, err := sc.Registry.ResetImage(id)
	if err != nil {
		respondError(c, err)
		return
	}
	sc.Activity.Record(actorEmail(c), "screens.reset", gin.H{"id": id})
	sc.Hub.NotifyScreensUpdated()
	c.JSON(http.StatusOK, screen)
}

func (sc *ScreenController) ResetAll(c *gin.Context) {
	screens, err := sc.Registry.ResetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	sc.Activity.Record(actorEmail(c), "screens.reset_all", nil)
	sc.Hub.NotifyScreensUpdated()
	c.JSON(http.StatusOK, gin.H{"data": screens})
}
