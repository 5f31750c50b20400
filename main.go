package main

import (
	"context"
	"log"
	"time"

	"tour-booking/cmd"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/wire"
	"tour-booking/pkg/cache"
	"tour-booking/pkg/database"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Stats cache is optional
	var statsCache cache.StatsCache = cache.Noop{}
	if config.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		statsCache = redisCache
		logger.Info("Stats cache enabled", zap.String("addr", config.Redis.Addr))
	}
	defer statsCache.Close()

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, statsCache, config, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cmd.SessionJanitor(ctx, time.Hour, app.Service.Auth.PurgeExpiredSessions, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
