package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/quickfunds/loanflow_backend/internal/adapters/database/pgsql"
	"github.com/quickfunds/loanflow_backend/internal/adapters/notification"
	"github.com/quickfunds/loanflow_backend/internal/adapters/security"
	"github.com/quickfunds/loanflow_backend/internal/adapters/session"
	portssvc "github.com/quickfunds/loanflow_backend/internal/core/ports/services"
	"github.com/quickfunds/loanflow_backend/internal/core/services"
	"github.com/quickfunds/loanflow_backend/internal/handlers"
	"github.com/quickfunds/loanflow_backend/internal/middleware"
	"github.com/quickfunds/loanflow_backend/pkg/cache"
	"github.com/quickfunds/loanflow_backend/pkg/config"
	"github.com/quickfunds/loanflow_backend/pkg/database"
)

// @title Loanflow Backend API
// @version 1.0
// @description Loan application intake backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis backs the wizard conversation state and security tokens.
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to initialize redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cache.CloseRedisClient(redisClient)

	// Adapters
	appRepo := pgsql.NewApplicationRepository(dbPool)
	settingsRepo := pgsql.NewPaymentSettingsRepository(dbPool)
	draftStore := session.NewRedisDraftStore(redisClient, cfg.DraftTTL, cfg.RecallTTL)
	tokenService := security.NewRedisTokenService(redisClient, cfg.CSRFTokenTTL)
	captcha := security.NewMathCaptcha(redisClient, cfg.CaptchaTTL, cfg.CaptchaProtectedForms)
	sender := notification.NewEmailSender(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, logger)

	// Services
	countryService := services.NewCountryService()
	fieldValidator := services.NewFieldValidator()
	submissionService := services.NewSubmissionService(appRepo, draftStore, sender, logger, cfg.NotifyTimeout)
	wizardService := services.NewWizardService(draftStore, tokenService, captcha, countryService, fieldValidator, submissionService)
	paymentService := services.NewPaymentConfigService(settingsRepo)

	serviceContainer := &portssvc.ServiceContainer{
		Wizard:     wizardService,
		Submission: submissionService,
		Payment:    paymentService,
		Country:    countryService,
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, session, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	r.Use(middleware.SessionMiddleware(cfg.IsProduction))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// standard sql.DB connection compatible with the main pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
