package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hartlaw/hartlaw/internal/application/billing/dto"
	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/legalcase"
	"github.com/hartlaw/hartlaw/internal/domain/rate"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/errors"
	"github.com/hartlaw/hartlaw/internal/shared/id"
	"github.com/hartlaw/hartlaw/internal/shared/keylock"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

type AddTimeEntryCommand struct {
	CaseID               string
	StaffUserID          string
	Role                 string
	Tier                 string
	Hours                decimal.Decimal
	Description          string
	IsTravel             bool
	IsInternalConference bool
	TeamSize             int
}

type AddTimeEntryResult struct {
	Entry *dto.TimeEntryDTO
	// Capped is set when the internal-conference cap reduced the hours.
	Capped         bool
	RequestedHours decimal.Decimal
}

type AddTimeEntryUseCase struct {
	caseRepo   legalcase.Repository
	entryRepo  billing.TimeEntryRepository
	rateRepo   rate.Repository
	policies   PolicySource
	txManager  db.Transactor
	locks      *keylock.Map
	publisher  events.EventPublisher
	metrics    Metrics
	clock      biztime.Clock
	newEntryID func() (string, error)
	logger     logger.Interface
}

func NewAddTimeEntryUseCase(
	caseRepo legalcase.Repository,
	entryRepo billing.TimeEntryRepository,
	rateRepo rate.Repository,
	policies PolicySource,
	txManager db.Transactor,
	locks *keylock.Map,
	publisher events.EventPublisher,
	metrics Metrics,
	clock biztime.Clock,
	logger logger.Interface,
) *AddTimeEntryUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	if clock == nil {
		clock = biztime.SystemClock()
	}
	if locks == nil {
		locks = keylock.New()
	}
	return &AddTimeEntryUseCase{
		caseRepo:   caseRepo,
		entryRepo:  entryRepo,
		rateRepo:   rateRepo,
		policies:   policies,
		txManager:  txManager,
		locks:      locks,
		publisher:  publisher,
		metrics:    metrics,
		clock:      clock,
		newEntryID: id.NewTimeEntryID,
		logger:     logger,
	}
}

func (uc *AddTimeEntryUseCase) Execute(ctx context.Context, cmd AddTimeEntryCommand) (*AddTimeEntryResult, error) {
	uc.logger.Infow("executing add time entry use case",
		"case_id", cmd.CaseID,
		"staff_user_id", cmd.StaffUserID,
		"role", cmd.Role,
		"tier", cmd.Tier,
		"hours", cmd.Hours.String(),
		"travel", cmd.IsTravel,
		"internal_conference", cmd.IsInternalConference,
		"team_size", cmd.TeamSize)

	req, err := uc.buildRequest(cmd)
	if err != nil {
		uc.logger.Errorw("invalid add time entry command", "error", err)
		return nil, err
	}

	legalCase, err := uc.caseRepo.GetByID(ctx, req.CaseID)
	if err != nil {
		uc.logger.Errorw("failed to load case", "case_id", req.CaseID, "error", err)
		return nil, errors.NewInternalError("failed to load case")
	}
	if legalCase == nil {
		return nil, errors.NewNotFoundError("case not found", req.CaseID).WithCause(legalcase.ErrCaseNotFound)
	}

	policy, err := uc.policies.Policy(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load billing policy", "error", err)
		return nil, errors.NewInternalError("failed to load billing policy")
	}

	// The cap sum and the insert must not interleave with another entry on the same case.
	unlock := uc.locks.Lock(req.CaseID)
	defer unlock()

	var (
		entry *billing.TimeEntry
		calc  *billing.Calculation
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		now := uc.clock.Now()

		ledger, err := uc.loadLedger(txCtx, req, policy, now)
		if err != nil {
			return err
		}

		calc, err = billing.Compute(req, policy, ledger)
		if err != nil {
			return err
		}

		entryID, err := uc.newEntryID()
		if err != nil {
			return err
		}
		entry, err = billing.NewTimeEntry(entryID, req, calc, now)
		if err != nil {
			return err
		}

		return uc.entryRepo.Save(txCtx, entry)
	})
	if err != nil {
		return nil, uc.translateError(req, err)
	}

	uc.afterSave(entry, calc)

	uc.logger.Infow("time entry recorded",
		"entry_id", entry.ID(),
		"case_id", entry.CaseID(),
		"hours", entry.Hours().String(),
		"amount_usd", entry.AmountUSD().StringFixed(2),
		"amount_rbx", entry.AmountRBX().StringFixed(2))

	result := &AddTimeEntryResult{
		Entry:          dto.ToTimeEntryDTO(entry),
		RequestedHours: calc.RoundedHours,
	}
	if calc.CapAdjustment != nil {
		result.Capped = true
	}
	return result, nil
}

func (uc *AddTimeEntryUseCase) loadLedger(ctx context.Context, req billing.Request, policy billing.Policy, now time.Time) (billing.Ledger, error) {
	var ledger billing.Ledger

	if req.IsInternalConference && policy.CapEnabled() {
		dayStart := biztime.StartOfDayUTC(now)
		sum, err := uc.entryRepo.SumInternalHours(ctx, req.CaseID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return ledger, err
		}
		ledger.InternalHoursToday = sum
	}

	if req.TeamSize > policy.Normalized().MaxSimultaneousBillable {
		allow, err := uc.policies.AllowExceed(ctx, req.CaseID)
		if err != nil {
			return ledger, err
		}
		ledger.AllowExceedTeam = allow
	}

	rateUSD, found, err := uc.rateRepo.GetRate(ctx, req.Role, req.Tier)
	if err != nil {
		return ledger, err
	}
	ledger.BaseRateUSD = rateUSD
	ledger.RateFound = found

	return ledger, nil
}

func (uc *AddTimeEntryUseCase) afterSave(entry *billing.TimeEntry, calc *billing.Calculation) {
	uc.metrics.EntryRecorded(entry.Tier().String(), entry.IsTravel(), entry.IsInternalConference())

	if !calc.RateFound {
		uc.metrics.UnknownRate(entry.Tier().String())
		uc.logger.Warnw("no USD rate for role and tier, billed at zero",
			"case_id", entry.CaseID(),
			"role", entry.Role(),
			"tier", entry.Tier().String())
	}

	if calc.Tags.Has(billing.TagKindTeamClamped) {
		uc.metrics.TeamClamped()
	}

	if adj := calc.CapAdjustment; adj != nil {
		uc.metrics.InternalCapTruncated()
		uc.logger.Warnw("internal conference hours capped",
			"case_id", entry.CaseID(),
			"entry_id", entry.ID(),
			"requested", adj.RequestedHours.String(),
			"allowed", adj.AllowedHours.String())

		event := billing.NewInternalConferenceCappedEvent(entry.CaseID(), entry.ID(), *adj, entry.CreatedAt())
		if err := uc.publisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish cap event", "case_id", entry.CaseID(), "error", err)
		}
	}
}

func (uc *AddTimeEntryUseCase) translateError(req billing.Request, err error) error {
	switch {
	case stderrors.Is(err, billing.ErrInternalConferenceCapReached):
		uc.metrics.InternalCapRejected()
		uc.logger.Warnw("internal conference cap reached", "case_id", req.CaseID)
		return errors.NewCapacityError("Internal conference cap reached for today.").WithCause(err)
	case stderrors.Is(err, billing.ErrInvalidHours):
		return errors.NewValidationError(err.Error()).WithCause(err)
	default:
		uc.logger.Errorw("failed to add time entry", "case_id", req.CaseID, "error", err)
		return errors.NewInternalError("failed to add time entry")
	}
}

func (uc *AddTimeEntryUseCase) buildRequest(cmd AddTimeEntryCommand) (billing.Request, error) {
	caseID := strings.TrimSpace(cmd.CaseID)
	if caseID == "" {
		return billing.Request{}, errors.NewValidationError("case ID is required")
	}
	if strings.TrimSpace(cmd.StaffUserID) == "" {
		return billing.Request{}, errors.NewValidationError("staff user ID is required")
	}
	role := strings.TrimSpace(cmd.Role)
	if role == "" {
		return billing.Request{}, errors.NewValidationError("role is required")
	}
	tier, err := rate.NewTier(cmd.Tier)
	if err != nil {
		return billing.Request{}, errors.NewValidationError(err.Error())
	}
	if !cmd.Hours.IsPositive() {
		return billing.Request{}, errors.NewValidationError("hours must be greater than zero")
	}
	teamSize := cmd.TeamSize
	if teamSize < 1 {
		teamSize = 1
	}

	return billing.Request{
		CaseID:               caseID,
		StaffUserID:          cmd.StaffUserID,
		Role:                 role,
		Tier:                 tier,
		Hours:                cmd.Hours,
		Description:          cmd.Description,
		IsTravel:             cmd.IsTravel,
		IsInternalConference: cmd.IsInternalConference,
		TeamSize:             teamSize,
	}, nil
}
