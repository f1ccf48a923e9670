package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/water-advisory-microservice/internal/config"
	httpDelivery "github.com/water-advisory-microservice/internal/delivery/http"
	"github.com/water-advisory-microservice/internal/delivery/http/handler"
	"github.com/water-advisory-microservice/internal/domain/repository"
	"github.com/water-advisory-microservice/internal/pkg/logger"
	"github.com/water-advisory-microservice/internal/repository/cache"
	"github.com/water-advisory-microservice/internal/repository/geojson"
	"github.com/water-advisory-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Water Advisory Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_dir", cfg.Data.Dir),
	)

	// 3. Load the geospatial dataset. Запросы не обслуживаются, пока
	// снимок не построен полностью.
	dataset := geojson.NewLoader(&cfg.Data, log).Load()

	// 4. Connect to Redis (optional assessment cache)
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Assessment cache enabled", zap.Duration("ttl", cfg.Cache.AdviceTTL))
	}

	// 5. Initialize Use Cases
	advisoryUC := usecase.NewAdvisoryUseCase(
		dataset,
		dataset,
		cacheRepo,
		log,
		cfg.Cache.AdviceTTL,
	)

	statsUC := usecase.NewStatsUseCase(dataset, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	advisoryHandler := handler.NewAdvisoryHandler(advisoryUC, log)
	villageHandler := handler.NewVillageHandler(advisoryUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		advisoryHandler,
		villageHandler,
		statsHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
