package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/interfaces/http/handlers"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
)

type PublicRouteConfig struct {
	RateHandler   *handlers.RateHandler
	ReviewHandler *handlers.ReviewHandler
}

// SetupPublicRoutes configures the rate table and client reviews.
func SetupPublicRoutes(api *gin.RouterGroup, cfg *PublicRouteConfig) {
	api.GET("/rates", cfg.RateHandler.ListRates)
	api.POST("/reviews", middleware.RequireActor(), cfg.ReviewHandler.AddReview)
}
