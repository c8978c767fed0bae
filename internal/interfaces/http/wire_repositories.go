package http

import (
	"gorm.io/gorm"

	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/domain/review"
	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	"github.com/hartlaw/hartlaw/internal/infrastructure/repository"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	caseRepo      legalcase.Repository
	ticketRepo    ticket.TicketRepository
	timeEntryRepo billing.TimeEntryRepository
	rateRepo      rate.Repository
	settingRepo   setting.Repository
	reviewRepo    review.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, clock biztime.Clock, log logger.Interface) *repositories {
	return &repositories{
		caseRepo:      repository.NewCaseRepository(db, log),
		ticketRepo:    repository.NewTicketRepository(db, log),
		timeEntryRepo: repository.NewTimeEntryRepository(db, log),
		rateRepo:      repository.NewRateRepository(db, log),
		settingRepo:   repository.NewSettingRepository(db, log, clock),
		reviewRepo:    repository.NewReviewRepository(db, log),
	}
}
