package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"signage-backend/internal/controllers"
	"signage-backend/internal/models"
	"signage-backend/internal/services"
)

func setupScreenRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Screen{}, &models.Layout{}, &models.ActivityEntry{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	registry := &services.ScreenRegistry{DB: db}
	activity := &services.ActivityLog{DB: db}
	ctrl := &controllers.ScreenController{Registry: registry, Activity: activity}

	r := gin.New()
	r.GET("/api/v1/screens", ctrl.List)
	r.GET("/api/v1/screens/changes", ctrl.Changes)
	r.PUT("/api/v1/screens/order", ctrl.Reorder)
	r.PUT("/api/v1/screens/:id/image", ctrl.SetImage)
	r.POST("/api/v1/screens/:id/reset", ctrl.Reset)
	r.POST("/api/v1/screens/reset", ctrl.ResetAll)
	return r, db
}

func TestListScreensSeedsFixedSet(t *testing.T) {
	r, _ := setupScreenRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/screens", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []models.Screen `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 3)
	assert.Equal(t, "1", body.Data[0].ID)
	assert.Equal(t, 1, body.Data[0].Position)
}

func TestSetImageEndpoint(t *testing.T) {
	r, _ := setupScreenRouter(t)

	// Malformed ref is rejected with 400.
	payload, _ := json.Marshal(gin.H{"image_url": "not a url"})
	req, _ := http.NewRequest("PUT", "/api/v1/screens/1/image", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rooted path succeeds.
	payload, _ = json.Marshal(gin.H{"image_url": "/custom.png"})
	req, _ = http.NewRequest("PUT", "/api/v1/screens/1/image", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var screen models.Screen
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &screen))
	if assert.NotNil(t, screen.ImageURL) {
		assert.Equal(t, "/custom.png", *screen.ImageURL)
	}

	// Unknown screen id is a 404.
	req, _ = http.NewRequest("PUT", "/api/v1/screens/9/image", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReorderEndpointRecordsActivity(t *testing.T) {
	r, db := setupScreenRouter(t)

	payload, _ := json.Marshal([]gin.H{
		{"id": "1", "position": 3},
		{"id": "2", "position": 1},
		{"id": "3", "position": 2},
	})
	req, _ := http.NewRequest("PUT", "/api/v1/screens/order", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []models.Screen `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2", body.Data[0].ID)

	var count int64
	db.Model(&models.ActivityEntry{}).Where("action = ?", "screens.reorder").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestChangesEndpointFutureCutoff(t *testing.T) {
	r, _ := setupScreenRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/screens/changes?since=2099-01-01T00:00:00Z", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []models.Screen `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}
