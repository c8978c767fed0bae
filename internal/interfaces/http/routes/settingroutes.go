package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/interfaces/http/handlers"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingHandler       *handlers.SettingHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSettingRoutes configures the staff-only runtime settings.
func SetupSettingRoutes(api *gin.RouterGroup, cfg *SettingRouteConfig) {
	settings := api.Group("/settings")
	settings.Use(cfg.PermissionMiddleware.RequireStaff())
	{
		settings.GET("", cfg.SettingHandler.GetSettings)
		settings.PUT("/:key", cfg.SettingHandler.UpdateSetting)
	}
}
