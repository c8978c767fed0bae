package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hartlaw/hartlaw/internal/domain/shared/events"
	"github.com/hartlaw/hartlaw/internal/infrastructure/config"
	"github.com/hartlaw/hartlaw/internal/infrastructure/permission"
	"github.com/hartlaw/hartlaw/internal/interfaces/http/middleware"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/db"
	"github.com/hartlaw/hartlaw/internal/shared/keylock"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

const eventBufferSize = 256

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and owns Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	clock  biztime.Clock

	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	txManager  *db.TransactionManager
	caseLocks  *keylock.Map
	dispatcher *events.InMemoryEventDispatcher

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	enforcer             *permission.Enforcer
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware // nil when disabled
}

// Option overrides a container default. Tests use these to pin the clock and
// isolate metrics.
type Option func(*Container)

func WithClock(clock biztime.Clock) Option {
	return func(c *Container) { c.clock = clock }
}

// WithRegistry registers metrics on reg and serves /metrics from it.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(c *Container) {
		c.registerer = reg
		c.gatherer = reg
	}
}

// WithRedis supplies an already connected client instead of dialing cfg.Redis.
func WithRedis(client *redis.Client) Option {
	return func(c *Container) { c.redis = client }
}

// NewContainer creates a new Container with all dependencies wired together.
// The event dispatcher is running when it returns; call Shutdown to stop it.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface, opts ...Option) (*Container, error) {
	c := &Container{
		engine:     gin.New(),
		db:         gdb,
		cfg:        cfg,
		log:        log,
		clock:      biztime.SystemClock(),
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Section 1: Infrastructure - Redis, Repositories, Dispatcher, Authorization
	if err := c.initInfrastructure(); err != nil {
		c.Shutdown()
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	// Section 2: Cases & Billing - UseCases, Metrics, Invoice Renderer
	if err := c.initCasesAndBilling(); err != nil {
		c.Shutdown()
		return nil, fmt.Errorf("init billing: %w", err)
	}

	// Section 3: Tickets - Number Generator, UseCases
	c.initTickets()

	// Section 4: Settings, Rates, Reviews
	c.initSupport()

	// Section 5: Handlers
	c.initHandlers()

	return c, nil
}

// Shutdown drains queued domain events and closes the Redis client.
func (c *Container) Shutdown() {
	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Warnw("failed to stop event dispatcher", "error", err)
		}
		c.dispatcher = nil
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		c.redis = nil
	}
}
