package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/ticket"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *ticketHandlers.TicketHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	staff := cfg.PermissionMiddleware.RequireStaff()

	tickets := api.Group("/tickets")
	{
		// Collection operations (no ID parameter)
		tickets.POST("", middleware.RequireActor(), cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.FindTicketByThread)

		tickets.PUT("/:id/assignee", staff, cfg.TicketHandler.AssignTicket)
		tickets.PUT("/:id/status", staff, cfg.TicketHandler.ChangeStatus)
		tickets.PUT("/:id/case", staff, cfg.TicketHandler.LinkCase)
		tickets.POST("/:id/convert", staff, cfg.TicketHandler.ConvertTicket)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
	}
}
