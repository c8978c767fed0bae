package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderXActorID   = "X-Actor-ID"
	HeaderXRequestID = "X-Request-ID"

	ContextKeyActorID   = "actor_id"
	ContextKeyRequestID = "request_id"

	ContentTypeMarkdown = "text/markdown; charset=utf-8"
	ContentTypeHTML     = "text/html; charset=utf-8"

	// Table names
	TableCases       = "cases"
	TableTickets     = "tickets"
	TableTimeEntries = "time_entries"
	TableRates       = "rates"
	TableSettings    = "settings"
	TableReviews     = "reviews"

	// LeadCounselRole is the rate-table role retainers are quoted against.
	LeadCounselRole = "Equity Partner (Lead Counsel)"
)
