// Package setup wires together the shared application components.
package setup

import (
	"context"
	"log"

	"github.com/redis/rueidis"
	"github.com/robalyx/teampulse/internal/database"
	"github.com/robalyx/teampulse/internal/redis"
	"github.com/robalyx/teampulse/internal/setup/config"
	"github.com/robalyx/teampulse/internal/statistics"
	"go.uber.org/zap"
)

// App bundles the common dependencies that both binaries need.
type App struct {
	Config       *config.Config
	Logger       *zap.Logger
	DBLogger     *zap.Logger
	DB           database.Client
	RedisManager *redis.Manager
	Statistics   *statistics.Client
	StatusClient rueidis.Client
	LogDir       string
}

// InitializeApp loads configuration, sets up logging, connects to the
// database and Redis, runs migrations, and seeds the default alert rules.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	// Load configuration
	cfg, configDir, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Initialize logging
	logger, dbLogger, err := GetLoggers(logDir, cfg.Common.Debug.LogLevel, cfg.Common.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded configuration", zap.String("configDir", configDir))

	// Initialize database connection
	db, err := database.NewConnection(ctx, &cfg.Common.PostgreSQL, dbLogger, true)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return nil, err
	}

	// Seed the default alert rules, keeping operator overrides intact
	if err := db.Model().Rule().SeedDefaults(ctx); err != nil {
		logger.Error("Failed to seed alert rules", zap.Error(err))
		return nil, err
	}

	// Initialize Redis manager
	redisManager := redis.NewManager(&cfg.Common.Redis, logger)

	// Initialize statistics client
	statsClient, err := redisManager.GetClient(redis.StatsDBIndex)
	if err != nil {
		logger.Error("Failed to create statistics Redis client", zap.Error(err))
		return nil, err
	}

	stats := statistics.NewClient(statsClient, logger)

	// Initialize worker status client
	statusClient, err := redisManager.GetClient(redis.WorkerStatusDBIndex)
	if err != nil {
		logger.Error("Failed to create status Redis client", zap.Error(err))
		return nil, err
	}

	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger,
		DB:           db,
		RedisManager: redisManager,
		Statistics:   stats,
		StatusClient: statusClient,
		LogDir:       logDir,
	}, nil
}

// Cleanup flushes loggers and closes the database and Redis connections.
func (a *App) Cleanup() {
	if err := a.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	a.RedisManager.Close()

	if err := a.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	if err := a.DBLogger.Sync(); err != nil {
		log.Printf("Failed to sync DB logger: %v", err)
	}
}
