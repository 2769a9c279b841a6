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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/palikatech/gunaso/internal/app/controllers"
	appMigrations "github.com/palikatech/gunaso/internal/app/migrations"
	appRepos "github.com/palikatech/gunaso/internal/app/repositories"
	appRoutes "github.com/palikatech/gunaso/internal/app/routes"
	appServices "github.com/palikatech/gunaso/internal/app/services"
	"github.com/palikatech/gunaso/internal/config"
	"github.com/palikatech/gunaso/internal/db"
	appMiddleware "github.com/palikatech/gunaso/internal/middleware"
	pkgAuth "github.com/palikatech/gunaso/internal/pkg/auth"
	"github.com/palikatech/gunaso/internal/pkg/draftcache"
	"github.com/palikatech/gunaso/internal/pkg/helpers"
	"github.com/palikatech/gunaso/internal/pkg/logger"
	"github.com/palikatech/gunaso/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ComplaintQueryService   appServices.ComplaintQueryService
	ComplaintService        appServices.ComplaintService
	WardService             appServices.WardService
	ComplaintViewController *appControllers.ComplaintViewController
	ComplaintController     *appControllers.ComplaintController
	WardController          *appControllers.WardController
	AuthMiddleware          *appMiddleware.AuthMiddleware
	Repos                   *appRepos.Repositories
	JWTService              *pkgAuth.JWTService
	RedisClient             *redis.Client
	DraftStore              *draftcache.Store
	Logger                  zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file is picked up when present so local runs need no exported vars.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seed failures are not fatal; an operator can backfill by hand
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.RedisClient.Ping(ctx).Err(); err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	deps.DraftStore = draftcache.NewStore(
		deps.RedisClient,
		helpers.ParseDuration(cfg.Redis.DraftTTL, 72*time.Hour),
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	services := appServices.NewServices(deps.Repos, deps.DraftStore)
	deps.ComplaintQueryService = services.ComplaintQueryService
	deps.ComplaintService = services.ComplaintService
	deps.WardService = services.WardService

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ComplaintViewController = appControllers.NewComplaintViewController(deps.ComplaintQueryService)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService)
	deps.WardController = appControllers.NewWardController(deps.WardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.ComplaintViewController,
		deps.ComplaintController,
		deps.WardController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
