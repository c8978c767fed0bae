package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	billingUsecases "github.com/hartlaw/hartlaw/internal/application/billing/usecases"
	"github.com/hartlaw/hartlaw/internal/infrastructure/config"
	"github.com/hartlaw/hartlaw/internal/infrastructure/database"
	"github.com/hartlaw/hartlaw/internal/infrastructure/migration"
	"github.com/hartlaw/hartlaw/internal/infrastructure/persistence/seeds"
	"github.com/hartlaw/hartlaw/internal/infrastructure/repository"
	httpRouter "github.com/hartlaw/hartlaw/internal/interfaces/http"
	"github.com/hartlaw/hartlaw/internal/shared/biztime"
	"github.com/hartlaw/hartlaw/internal/shared/constants"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/version"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
	debug              bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Hart Law billing and intake HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, debug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(cfg, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	if err := seed(cmd.Context(), cfg, log); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	router, err := httpRouter.NewRouter(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		log.Errorw("server failed", "error", err)
		return err
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(cfg *config.Config, log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	if autoMigrate {
		if env == constants.EnvProduction {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}

		log.Infow("running auto-migration")
		if err := migration.NewManager(env, cfg.Database.Driver, log).Migrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed successfully")
		return nil
	}

	log.Infow("checking migration status")

	strategy := migration.NewGooseStrategy(cfg.Database.Driver, log)
	if gooseStrategy, ok := strategy.(*migration.GooseStrategy); ok {
		current, err := gooseStrategy.GetVersion(database.Get())
		if err != nil {
			log.Warnw("failed to check migration status", "error", err)
		} else {
			log.Infow("current migration version", "version", current)
		}
	}

	log.Infow("migration check completed")

	return nil
}

// seed loads the rate card and the billing settings into empty tables.
func seed(ctx context.Context, cfg *config.Config, log logger.Interface) error {
	if ctx == nil {
		ctx = context.Background()
	}

	db := database.Get()

	if err := seeds.SeedRates(ctx, repository.NewRateRepository(db, log), log); err != nil {
		return err
	}

	settingRepo := repository.NewSettingRepository(db, log, biztime.SystemClock())
	return seeds.SeedSettings(ctx, settingRepo, billingUsecases.SettingDefaults(cfg.Billing), log)
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return gin.ReleaseMode
	case "development", "dev":
		return gin.DebugMode
	case "test", "testing":
		return gin.TestMode
	case "release":
		return gin.ReleaseMode
	default:
		return gin.DebugMode
	}
}
