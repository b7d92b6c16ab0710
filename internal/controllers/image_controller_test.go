package controllers_test

import (
	"bytes"
	"encoding/base64"
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

func setupImageRouter(t *testing.T) (*gin.Engine, *services.ImageStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.ActivityEntry{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	store := &services.ImageStore{Root: t.TempDir()}
	ctrl := &controllers.ImageController{Store: store, Activity: &services.ActivityLog{DB: db}}

	r := gin.New()
	r.GET("/api/v1/images", ctrl.List)
	r.POST("/api/v1/images", ctrl.Upload)
	r.DELETE("/api/v1/images/:name", ctrl.Delete)
	r.GET("/api/images/:name", ctrl.Serve)
	return r, store
}

func TestUploadThenServe(t *testing.T) {
	r, _ := setupImageRouter(t)

	data := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\nfake"))
	payload, _ := json.Marshal(gin.H{"name": "logo.png", "data": data, "mime_type": "image/png"})
	req, _ := http.NewRequest("POST", "/api/v1/images", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var stored services.StoredImage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.NotEqual(t, "logo.png", stored.Name)
	assert.Equal(t, "logo.png", stored.OriginalName)

	req, _ = http.NewRequest("GET", stored.URL, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("Last-Modified"))
}

func TestUploadRejectsDisallowedMime(t *testing.T) {
	r, _ := setupImageRouter(t)

	payload, _ := json.Marshal(gin.H{"name": "evil.exe", "data": "aGk=", "mime_type": "application/x-msdownload"})
	req, _ := http.NewRequest("POST", "/api/v1/images", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSuspiciousNameRejected(t *testing.T) {
	r, _ := setupImageRouter(t)

	// Names with traversal sequences never come from the generator.
	req, _ := http.NewRequest("DELETE", "/api/v1/images/..secret.png", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unsupported extensions are rejected before touching the filesystem.
	req, _ = http.NewRequest("DELETE", "/api/v1/images/notes.txt", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeMissingImage(t *testing.T) {
	r, _ := setupImageRouter(t)

	req, _ := http.NewRequest("GET", "/api/images/missing.png", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaginatedListing(t *testing.T) {
	r, store := setupImageRouter(t)

	data := base64.StdEncoding.EncodeToString([]byte("img"))
	for i := 0; i < 3; i++ {
		_, err := store.Upload("x.png", data, "image/png")
		assert.NoError(t, err)
	}

	req, _ := http.NewRequest("GET", "/api/v1/images?page=1&limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var page services.ImagePage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)
}
