package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"signage-backend/internal/services"
	"signage-backend/internal/ws"
)

type LayoutController struct {
	Catalog  *services.LayoutCatalog
	Activity *services.ActivityLog
	Hub      *ws.ViewerHub
}

type createLayoutRequest struct {
	Name   string  `json:"name" binding:"required"`
	Tv1URL *string `json:"tv1_url"`
	Tv2URL *string `json:"tv2_url"`
	Tv3URL *string `json:"tv3_url"`
}

type renameLayoutRequest struct {
	Name string `json:"name" binding:"required"`
}

func (lc *LayoutController) List(c *gin.Context) {
	layouts, err := lc.Catalog.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": layouts})
}

func (lc *LayoutController) Create(c *gin.Context) {
	var req createLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	layout, err := lc.Catalog.Save(req.Name, req.Tv1URL, req.Tv2URL, req.Tv3URL)
	if err != nil {
		respondError(c, err)
		return
	}
	lc.Activity.Record(actorEmail(c), "layouts.save", gin.H{"id": layout.ID, "name": layout.Name})
	c.JSON(http.StatusCreated, layout)
}

// Restore re-applies a saved snapshot to the screens and returns the
// refreshed screen list.
func (lc *LayoutController) Restore(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	screens, err := lc.Catalog.Restore(id)
	if err != nil {
		respondError(c, err)
		return
	}
	lc.Activity.Record(actorEmail(c), "layouts.restore", gin.H{"id": id})
	lc.Hub.NotifyScreensUpdated()
	c.JSON(http.StatusOK, gin.H{"data": screens})
}

func (lc *LayoutController) Rename(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var req renameLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	layout, err := lc.Catalog.UpdateName(id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	lc.Activity.Record(actorEmail(c), "layouts.rename", gin.H{"id": id, "name": req.Name})
	c.JSON(http.StatusOK, layout)
}

func (lc *LayoutController) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := lc.Catalog.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	lc.Activity.Record(actorEmail(c), "layouts.delete", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
