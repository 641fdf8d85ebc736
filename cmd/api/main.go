package main

// @title Vastu Analysis Microservice API
// @version 1.0.0
// @description Микросервис направленного анализа планировок. Принимает контур помещения или участка, делит окружающее пространство на секторы по сторонам света и оценивает покрытие, структуру и использование каждого направления.
// @description
// @description Основные возможности:
// @description - Управление проектами с полигональными границами
// @description - Разбиение на 8/16/32 секторов с произвольным поворотом
// @description - Оценка покрытия секторов методом Монте-Карло
// @description - Модули анализа: структура, препятствия, назначение помещений, входы, элементы
// @description - Отчеты с оценками, уровнями серьезности и рекомендациями

// @contact.name API Support
// @contact.email support@vastu-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/vastu-microservice/docs/swagger"
	"github.com/vastu-microservice/internal/analysis/modules"
	"github.com/vastu-microservice/internal/config"
	httpDelivery "github.com/vastu-microservice/internal/delivery/http"
	"github.com/vastu-microservice/internal/delivery/http/handler"
	"github.com/vastu-microservice/internal/pkg/logger"
	"github.com/vastu-microservice/internal/repository/cache"
	"github.com/vastu-microservice/internal/repository/postgres"
	redisrepo "github.com/vastu-microservice/internal/repository/redis"
	"github.com/vastu-microservice/internal/usecase"
	"go.uber.org/zap"
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

	log.Info("Starting Vastu Analysis Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	projectRepo := postgres.NewProjectRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisrepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize module registry
	registry, err := modules.NewRegistry()
	if err != nil {
		log.Fatal("Failed to build module registry", zap.Error(err))
	}
	log.Info("Analysis modules registered", zap.Strings("modules", registry.IDs()))

	// 8. Initialize Use Cases
	projectUC := usecase.NewProjectUseCase(
		projectRepo,
		reportRepo,
		cacheRepo,
		streamRepo,
		cfg.Server.UploadsDir,
		log,
	)

	analysisUC := usecase.NewAnalysisUseCase(
		projectRepo,
		reportRepo,
		cacheRepo,
		registry,
		cfg.Analysis,
		cfg.Cache,
		log,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	projectHandler := handler.NewProjectHandler(projectUC, log)
	analysisHandler := handler.NewAnalysisHandler(analysisUC, log)
	sectorHandler := handler.NewSectorHandler(analysisUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		projectHandler,
		analysisHandler,
		sectorHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
