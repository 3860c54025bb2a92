// Package bootstrap wires configuration, storage and the HTTP layer together.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/migrations"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/app/routes"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/filestorage"
	"github.com/campushub/backend/internal/pkg/logger"
	"github.com/campushub/backend/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Repos       *repositories.Repositories
	Services    *services.Services
	Controllers *controllers.Controllers
	JWTService  *auth.JWTService
	FileStorage *filestorage.LocalStorage
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("level", cfg.Logging.Level).Str("format", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the connection pool, runs migrations and seeds
// development data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	lgr.Info().Msg("Database connection established")

	migrator := migrations.NewMigrator(pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), pool, lgr); err != nil {
			// Seeding is a development convenience, startup continues
			lgr.Error().Err(err).Msg("Failed to seed default data")
		}
	}

	return pool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	repos := repositories.NewRepositories(pool)
	svcs := services.NewServices(repos, pool, jwtService, lgr)
	ctrls := controllers.NewControllers(svcs, storage, lgr)

	return &Dependencies{
		Repos:       repos,
		Services:    svcs,
		Controllers: ctrls,
		JWTService:  jwtService,
		FileStorage: storage,
		Logger:      lgr,
	}, nil
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	authMiddleware := middleware.NewAuthMiddleware(deps.JWTService)
	routes.SetupRouter(router, deps.Controllers, authMiddleware, cfg.Server.StoragePath)

	return router
}
