package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/hartlaw/hartlaw/internal/infrastructure/config"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/routes"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface, opts ...Option) (*Router, error) {
	c, err := NewContainer(db, cfg, log, opts...)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Actor())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	api := r.engine.Group("/api")
	if r.rateLimitMiddleware != nil {
		api.Use(r.rateLimitMiddleware.Limit())
	}

	routes.SetupPublicRoutes(api, &routes.PublicRouteConfig{
		RateHandler:   r.hdlrs.rateHandler,
		ReviewHandler: r.hdlrs.reviewHandler,
	})
	routes.SetupCaseRoutes(api, &routes.CaseRouteConfig{
		CaseHandler:          r.hdlrs.caseHandler,
		BillingHandler:       r.hdlrs.billingHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		SettingHandler:       r.hdlrs.settingHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
