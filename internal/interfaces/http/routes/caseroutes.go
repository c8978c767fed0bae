package routes

import (
	"github.com/gin-gonic/gin"

	billingHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/billing"
	caseHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/legalcase"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
)

// CaseRouteConfig holds dependencies for case and billing routes.
type CaseRouteConfig struct {
	CaseHandler          *caseHandlers.CaseHandler
	BillingHandler       *billingHandlers.BillingHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCaseRoutes configures /cases. Reading a case is open; every write and
// the invoice are staff only.
func SetupCaseRoutes(api *gin.RouterGroup, cfg *CaseRouteConfig) {
	staff := cfg.PermissionMiddleware.RequireStaff()

	cases := api.Group("/cases")
	{
		cases.POST("", staff, cfg.CaseHandler.CreateCase)

		cases.PUT("/:id/currency", staff, cfg.CaseHandler.SetCurrency)
		cases.PUT("/:id/contingency", staff, cfg.CaseHandler.SetContingency)
		cases.POST("/:id/archive", staff, cfg.CaseHandler.ArchiveCase)
		cases.POST("/:id/time-entries", staff, cfg.BillingHandler.AddTimeEntry)
		cases.GET("/:id/invoice", staff, cfg.BillingHandler.InvoiceSummary)

		cases.GET("/:id", cfg.CaseHandler.GetCase)
	}

	api.GET("/retainer", cfg.BillingHandler.RetainerQuote)
}
