package http

import (
	"github.com/hartlaw/hartlaw/internal/interfaces/http/handlers"
	billingHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/billing"
	caseHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/legalcase"
	ticketHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler *handlers.HealthHandler

	// Case & Billing
	caseHandler    *caseHandlers.CaseHandler
	billingHandler *billingHandlers.BillingHandler

	// Ticket
	ticketHandler *ticketHandlers.TicketHandler

	// Support
	rateHandler    *handlers.RateHandler
	reviewHandler  *handlers.ReviewHandler
	settingHandler *handlers.SettingHandler
}
