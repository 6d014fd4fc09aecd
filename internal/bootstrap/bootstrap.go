// Package bootstrap wires configuration, storage, services, controllers
// and routes into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mertcan/placeport/internal/app/controllers"
	appMigrations "github.com/mertcan/placeport/internal/app/migrations"
	appRoutes "github.com/mertcan/placeport/internal/app/routes"
	appServices "github.com/mertcan/placeport/internal/app/services"
	"github.com/mertcan/placeport/internal/app/store"
	"github.com/mertcan/placeport/internal/config"
	appMiddleware "github.com/mertcan/placeport/internal/middleware"
	pkgAuth "github.com/mertcan/placeport/internal/pkg/auth"
	"github.com/mertcan/placeport/internal/pkg/filestorage"
	"github.com/mertcan/placeport/internal/pkg/logger"
	"github.com/mertcan/placeport/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthController         *appControllers.AuthController
	ProfileController      *appControllers.ProfileController
	CompanyController      *appControllers.CompanyController
	JobController          *appControllers.JobController
	NotificationController *appControllers.NotificationController
	ReportController       *appControllers.ReportController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	Store                  *store.Facade
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the configured store backend, applies migrations when
// the relational backend is active, and seeds default data.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Facade, error) {
	facade, err := store.Open(cfg, lgr)
	if err != nil {
		return nil, err
	}

	if database := facade.PostgresDB(); database != nil {
		migrationsDir := "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			facade.Close()
			return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}

		migrator := appMigrations.NewMigrator(database.Pool)
		if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
			facade.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations applied")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seed.CreateDefaultData(ctx, facade, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return facade, nil
}

// BuildDependencies initializes services, controllers and middleware.
func BuildDependencies(cfg *config.Config, facade *store.Facade, lgr zerolog.Logger) (*Dependencies, error) {
	tokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: tokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	authService := appServices.NewAuthService(facade, jwtService, lgr)
	profileService := appServices.NewProfileService(facade, lgr)
	companyService := appServices.NewCompanyService(facade, lgr)
	jobService := appServices.NewJobService(facade, lgr)
	notificationService := appServices.NewNotificationService(facade, lgr)
	reportService := appServices.NewReportService(facade, lgr)

	return &Dependencies{
		AuthController:         appControllers.NewAuthController(authService, lgr),
		ProfileController:      appControllers.NewProfileController(profileService, storage, lgr),
		CompanyController:      appControllers.NewCompanyController(companyService, lgr),
		JobController:          appControllers.NewJobController(jobService, lgr),
		NotificationController: appControllers.NewNotificationController(notificationService, lgr),
		ReportController:       appControllers.NewReportController(reportService, lgr),
		AuthMiddleware:         appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:             jwtService,
		Store:                  facade,
		FileStorage:            storage,
		Logger:                 lgr,
	}, nil
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"backend":  deps.Store.Backend(),
			"fellBack": deps.Store.FellBack(),
		})
	}

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.ProfileController,
		deps.CompanyController,
		deps.JobController,
		deps.NotificationController,
		deps.ReportController,
		deps.AuthMiddleware,
		health,
	)

	return router
}
