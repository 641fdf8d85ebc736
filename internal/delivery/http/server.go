package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/vastu-microservice/internal/config"
	"github.com/vastu-microservice/internal/delivery/http/handler"
	"github.com/vastu-microservice/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	projectHandler  *handler.ProjectHandler
	analysisHandler *handler.AnalysisHandler
	sectorHandler   *handler.SectorHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	projectHandler *handler.ProjectHandler,
	analysisHandler *handler.AnalysisHandler,
	sectorHandler *handler.SectorHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Vastu Analysis Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    20 * 1024 * 1024, // планы этажей бывают крупными
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		projectHandler:  projectHandler,
		analysisHandler: analysisHandler,
		sectorHandler:   sectorHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Static files: миниатюры планов для UI
	s.app.Static("/static", "./static")

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Project routes
	api.Post("/projects", s.projectHandler.Create)
	api.Get("/projects", s.projectHandler.List)
	api.Get("/projects/:id", s.projectHandler.Get)
	api.Put("/projects/:id", s.projectHandler.Update)
	api.Delete("/projects/:id", s.projectHandler.Delete)
	api.Post("/projects/:id/image", s.projectHandler.AttachImage)

	// Analysis routes
	api.Get("/analysis/modules", s.analysisHandler.ListModules)
	api.Post("/analysis/run", s.analysisHandler.RunAdHoc)
	api.Get("/projects/:id/reports", s.analysisHandler.GetReports)
	api.Post("/projects/:id/reports/:module", s.analysisHandler.RunForProject)

	// Sector routes
	api.Get("/sectors", s.sectorHandler.GetSectors)
	api.Get("/projects/:id/sectors", s.sectorHandler.GetProjectSectors)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
