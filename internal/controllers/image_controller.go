package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"signage-backend/internal/services"
)

type ImageController struct {
	Store    *services.ImageStore
	Activity *services.ActivityLog
}

type uploadImageRequest struct {
	Name     string `json:"name"`
	Data     string `json:"data" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
}

// List returns the stored images newest-modified first. With page or limit
// query params it returns the paginated form instead.
func (ic *ImageController) List(c *gin.Context) {
	if c.Query("page") != "" || c.Query("limit") != "" {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		result, err := ic.Store.ListPaginated(page, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}
	images, err := ic.Store.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": images})
}

func (ic *ImageController) Upload(c *gin.Context) {
	var req uploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := ic.Store.Upload(req.Name, req.Data, req.MimeType)
	if err != nil {
		respondError(c, err)
		return
	}
	ic.Activity.Record(actorEmail(c), "images.upload", gin.H{"name": stored.Name, "original_name": stored.OriginalName, "size": stored.Size})
	c.JSON(http.StatusCreated, stored)
}

func (ic *ImageController) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := ic.Store.Delete(name); err != nil {
		respondError(c, err)
		return
	}
	ic.Activity.Record(actorEmail(c), "images.delete", gin.H{"name": name})
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Serve streams the raw bytes. Stored names are never reused, so the
// response is cacheable as immutable.
func (ic *ImageController) Serve(c *gin.Context) {
	name := c.Param("name")
	img, err := ic.Store.Serve(name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Header("Last-Modified", img.ModifiedAt.UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, img.MimeType, img.Data)
}
