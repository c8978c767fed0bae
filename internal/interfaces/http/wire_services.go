package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	billingUsecases "github.com/hartlaw/hartlaw/internal/application/billing/usecases"
	caseUsecases "github.com/hartlaw/hartlaw/internal/application/legalcase/usecases"
	rateUsecases "github.com/hartlaw/hartlaw/internal/application/rate/usecases"
	reviewUsecases "github.com/hartlaw/hartlaw/internal/application/review/usecases"
	settingUsecases "github.com/hartlaw/hartlaw/internal/application/setting/usecases"
	ticketUsecases "github.com/hartlaw/hartlaw/internal/application/ticket/usecases"
	"github.com/hartlaw/hartlaw/internal/domain/billing"
	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/domain/ticket"
	"github.com/hartlaw/hartlaw/internal/infrastructure/cache"
	"github.com/hartlaw/hartlaw/internal/infrastructure/config"
	"github.com/hartlaw/hartlaw/internal/infrastructure/metrics"
	"github.com/hartlaw/hartlaw/internal/infrastructure/permission"
	"github.com/hartlaw/hartlaw/internal/infrastructure/ratelimit"
	"github.com/hartlaw/hartlaw/internal/infrastructure/repository"
	"github.com/hartlaw/hartlaw/internal/infrastructure/template"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/handlers"
	billingHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/billing"
	caseHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/legalcase"
	ticketHandlers "github.com/hartlaw/hartlaw/internal/interfaces/http/handlers/ticket"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/keylock"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/services/markdown"
	"github.com/hartlaw/hartlaw/internal/shared/version"
)

const (
	CounterBackendDatabase = "database"
	CounterBackendRedis    = "redis"

	redisPingTimeout = 5 * time.Second
)

// auditedEvents are logged by the audit subscriber.
var auditedEvents = []string{
	ticket.EventTicketCreated,
	ticket.EventTicketAssigned,
	ticket.EventTicketStatusChanged,
	ticket.EventTicketCaseLinked,
	billing.EventInternalConferenceCapped,
	setting.EventSettingChanged,
}

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Dispatcher, Authorization
// ============================================================

// initInfrastructure connects Redis when a component needs it, builds the
// repositories, starts the event dispatcher and loads the staff policy.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if c.redis == nil && needsRedis(cfg) {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db, c.clock, log)
	c.txManager = db.NewTransactionManager(c.db)
	c.caseLocks = keylock.New()
	c.ucs = &allUseCases{}
	c.hdlrs = &allHandlers{}

	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, log)
	if err := subscribeAuditLog(c.dispatcher, log); err != nil {
		return err
	}
	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("start event dispatcher: %w", err)
	}

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("create permission enforcer: %w", err)
	}
	if err := permission.InitStaffPermissions(enforcer, cfg.Auth.StaffUserIDs, log); err != nil {
		return fmt.Errorf("init staff permissions: %w", err)
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(permission.NewStaffChecker(enforcer), log)

	if cfg.RateLimit.Enabled {
		c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(
			ratelimit.NewRedisRateLimiter(c.redis),
			ratelimit.RateLimitConfig{
				RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
				RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
			},
			log,
		)
	}

	return nil
}

func needsRedis(cfg *config.Config) bool {
	return strings.EqualFold(cfg.Counter.Backend, CounterBackendRedis) || cfg.RateLimit.Enabled
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// subscribeAuditLog records every domain event in the structured log.
func subscribeAuditLog(dispatcher events.EventDispatcher, log logger.Interface) error {
	audit := log.Named("audit")
	for _, eventType := range auditedEvents {
		handler := events.NewSimpleEventHandler(eventType, func(e events.DomainEvent) error {
			audit.Infow("domain event",
				"event_type", e.GetEventType(),
				"aggregate_id", e.GetAggregateID(),
				"occurred_at", e.GetOccurredAt(),
			)
			return nil
		})
		if err := dispatcher.Subscribe(eventType, handler); err != nil {
			return fmt.Errorf("subscribe %s: %w", eventType, err)
		}
	}
	return nil
}

// ============================================================
// Section 2: Cases & Billing
// ============================================================

func (c *Container) initCasesAndBilling() error {
	repos := c.repos
	ucs := c.ucs
	log := c.log

	ucs.createCaseUC = caseUsecases.NewCreateCaseUseCase(repos.caseRepo, c.clock, log)
	ucs.getCaseUC = caseUsecases.NewGetCaseUseCase(repos.caseRepo, log)
	ucs.setCurrencyUC = caseUsecases.NewSetCurrencyUseCase(repos.caseRepo, log)
	ucs.setContingencyUC = caseUsecases.NewSetContingencyUseCase(repos.caseRepo, log)
	ucs.archiveCaseUC = caseUsecases.NewArchiveCaseUseCase(repos.caseRepo, c.clock, log)

	ucs.policyProvider = billingUsecases.NewPolicyProvider(repos.settingRepo, c.cfg.Billing, log)
	ucs.addTimeEntryUC = billingUsecases.NewAddTimeEntryUseCase(
		repos.caseRepo, repos.timeEntryRepo, repos.rateRepo, ucs.policyProvider,
		c.txManager, c.caseLocks, c.dispatcher, metrics.NewBillingMetrics(c.registerer),
		c.clock, log,
	)
	ucs.invoiceSummaryUC = billingUsecases.NewInvoiceSummaryUseCase(repos.caseRepo, repos.timeEntryRepo, log)
	ucs.retainerQuoteUC = billingUsecases.NewRetainerQuoteUseCase(repos.rateRepo, log)

	renderer, err := template.NewInvoiceRenderer(c.cfg.Invoice, markdown.NewMarkdownService(), c.clock, log)
	if err != nil {
		return fmt.Errorf("create invoice renderer: %w", err)
	}

	c.hdlrs.caseHandler = caseHandlers.NewCaseHandler(
		ucs.createCaseUC, ucs.getCaseUC, ucs.setCurrencyUC, ucs.setContingencyUC, ucs.archiveCaseUC, log,
	)
	c.hdlrs.billingHandler = billingHandlers.NewBillingHandler(
		ucs.addTimeEntryUC, ucs.invoiceSummaryUC, ucs.retainerQuoteUC, renderer, log,
	)
	return nil
}

// ============================================================
// Section 3: Tickets
// ============================================================

func (c *Container) initTickets() {
	repos := c.repos
	ucs := c.ucs
	log := c.log

	numbers := ticket.NewCounterNumberGenerator(c.ticketCounter(), c.clock)

	ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.caseRepo, numbers, c.dispatcher, c.clock, log)
	ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, log)
	ucs.assignTicketUC = ticketUsecases.NewAssignTicketUseCase(repos.ticketRepo, c.dispatcher, c.clock, log)
	ucs.changeStatusUC = ticketUsecases.NewChangeStatusUseCase(repos.ticketRepo, c.dispatcher, c.clock, log)
	ucs.linkCaseUC = ticketUsecases.NewLinkCaseUseCase(repos.ticketRepo, repos.caseRepo, c.dispatcher, c.clock, log)
	ucs.convertTicketUC = ticketUsecases.NewConvertTicketUseCase(repos.ticketRepo, ucs.createCaseUC, c.txManager, c.dispatcher, c.clock, log)

	c.hdlrs.ticketHandler = ticketHandlers.NewTicketHandler(
		ucs.createTicketUC, ucs.getTicketUC, ucs.assignTicketUC,
		ucs.changeStatusUC, ucs.linkCaseUC, ucs.convertTicketUC, log,
	)
}

// ticketCounter picks the daily sequence store named by counter.backend.
func (c *Container) ticketCounter() setting.Counter {
	if strings.EqualFold(c.cfg.Counter.Backend, CounterBackendRedis) && c.redis != nil {
		c.log.Infow("ticket numbers use redis counter")
		return cache.NewRedisCounter(c.redis, cache.DefaultCounterTTL, c.log)
	}
	return repository.NewSettingCounter(c.db, c.log, c.clock)
}

// ============================================================
// Section 4: Settings, Rates, Reviews
// ============================================================

func (c *Container) initSupport() {
	repos := c.repos
	ucs := c.ucs
	log := c.log

	ucs.getSettingsUC = settingUsecases.NewGetSettingsUseCase(repos.settingRepo, billingUsecases.SettingDefaults(c.cfg.Billing), log)
	ucs.updateSettingUC = settingUsecases.NewUpdateSettingUseCase(repos.settingRepo, c.dispatcher, c.clock, log)
	ucs.listRatesUC = rateUsecases.NewListRatesUseCase(repos.rateRepo, log)
	ucs.addReviewUC = reviewUsecases.NewAddReviewUseCase(repos.reviewRepo, c.clock, log)

	c.hdlrs.settingHandler = handlers.NewSettingHandler(ucs.getSettingsUC, ucs.updateSettingUC, log)
	c.hdlrs.rateHandler = handlers.NewRateHandler(ucs.listRatesUC, log)
	c.hdlrs.reviewHandler = handlers.NewReviewHandler(ucs.addReviewUC, log)
}

// ============================================================
// Section 5: Handlers
// ============================================================

func (c *Container) initHandlers() {
	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	} else {
		c.log.Warnw("health check runs without database ping", "error", err)
	}
	c.hdlrs.healthHandler = handlers.NewHealthHandler(pinger, version.String(), c.log)
}
