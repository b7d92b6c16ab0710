package routes

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"signage-backend/internal/config"
	"signage-backend/internal/controllers"
	"signage-backend/internal/middleware"
	"signage-backend/internal/services"
	"signage-backend/internal/ws"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config, hub *ws.ViewerHub) {
	expiresMins, err := time.ParseDuration(cfg.JWTExpiresIn + "m")
	if err != nil || expiresMins == 0 {
		expiresMins = 60 * time.Minute
	}
	pulseSecs, err := strconv.Atoi(cfg.ReloadPulseSeconds)
	if err != nil || pulseSecs <= 0 {
		pulseSecs = 10
	}

	// Services
	registry := &services.ScreenRegistry{DB: db}
	catalog := &services.LayoutCatalog{DB: db}
	store := &services.ImageStore{Root: cfg.ImageVolumeRoot()}
	activity := &services.ActivityLog{DB: db}
	signals := services.NewSignals(time.Duration(pulseSecs) * time.Second)

	// Controllers
	authCtrl := &controllers.AuthController{DB: db, JWTSecret: cfg.JWTSecret, ExpiresIn: expiresMins}
	screenCtrl := &controllers.ScreenController{Registry: registry, Activity: activity, Hub: hub}
	layoutCtrl := &controllers.LayoutController{Catalog: catalog, Activity: activity, Hub: hub}
	imageCtrl := &controllers.ImageController{Store: store, Activity: activity}
	signalCtrl := &controllers.SignalController{Signals: signals, Activity: activity}
	activityCtrl := &controllers.ActivityController{Log: activity}

	r.GET("/healthz", controllers.Health(db))

	// Public: viewers poll these, no auth
	r.POST("/api/v1/auth/login", authCtrl.Login)
	r.GET("/api/v1/screens", screenCtrl.List)
	r.GET("/api/v1/screens/changes", screenCtrl.Changes)
	r.GET("/api/v1/signals", signalCtrl.Get)
	r.GET("/api/v1/ws/viewer", ws.ServeViewer(hub))

	// Image bytes live outside /api/v1 so stored URLs stay short
	r.GET("/api/images/:name", imageCtrl.Serve)

	// Protected admin surface
	authMW := middleware.AuthMiddleware(db, middleware.AuthConfig{
		JWTSecret:    cfg.JWTSecret,
		JWTExpiresIn: expiresMins,
	})
	api := r.Group("/api/v1", authMW)
	{
		api.GET("/auth/me", authCtrl.Me)

		admin := api.Group("", middleware.RequireRoles("admin"))
		{
			admin.PUT("/screens/order", screenCtrl.Reorder)
			admin.PUT("/screens/:id/image", screenCtrl.SetImage)
			admin.POST("/screens/:id/reset", screenCtrl.Reset)
			admin.POST("/screens/reset", screenCtrl.ResetAll)

			admin.GET("/layouts", layoutCtrl.List)
			admin.POST("/layouts", layoutCtrl.Create)
			admin.POST("/layouts/:id/restore", layoutCtrl.Restore)
			admin.PUT("/layouts/:id", layoutCtrl.Rename)
			admin.DELETE("/layouts/:id", layoutCtrl.Delete)

			admin.GET("/images", imageCtrl.List)
			admin.POST("/images", imageCtrl.Upload)
			admin.DELETE("/images/:name", imageCtrl.Delete)

			admin.POST("/signals/reload", signalCtrl.PulseReload)
			admin.POST("/signals/numbers", signalCtrl.ToggleNumbers)

			admin.GET("/admin/activity", activityCtrl.List)
		}
	}
}
