// Package server wires the HTTP API: middleware, routes and lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"

	"asprakserver/database"
	"asprakserver/internal/config"
	"asprakserver/server/handlers"
	"asprakserver/server/middleware"
)

// Server is the HTTP server for the asprak roster API.
type Server struct {
	db         *database.AsprakDB
	config     *config.Config
	httpServer *http.Server
	startTime  time.Time
}

// NewServer opens the database and builds a server from the configuration.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.NewAsprakDBWithConfig(cfg.DatabasePath, database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Server{
		db:        db,
		config:    cfg,
		startTime: time.Now(),
	}, nil
}

// DB exposes the underlying database, mainly for seeding and tests.
func (s *Server) DB() *database.AsprakDB {
	return s.db
}

// buildRouter assembles the Gin engine with all middleware and routes.
func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()

	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())

	asprakHandler := handlers.NewAsprakHandler(s.db, s.config.ActiveWindowYears)
	importHandler := handlers.NewImportHandler(s.db, s.config.ActiveWindowYears, s.config.MaxUploadBytes)
	exportHandler := handlers.NewExportHandler(s.db)
	systemHandler := handlers.NewSystemHandler(s.db)

	router.GET("/health", systemHandler.HandleHealth)

	api := router.Group("/api")
	{
		api.GET("/stats", systemHandler.HandleStats)
		api.GET("/generation-rules", asprakHandler.HandleGenerationRules)

		aspraks := api.Group("/aspraks")
		{
			aspraks.GET("", asprakHandler.HandleListAspraks)
			aspraks.POST("", asprakHandler.HandleCreateAsprak)
			aspraks.POST("/generate-code", asprakHandler.HandlePreviewCode)
			aspraks.POST("/check-code", asprakHandler.HandleCheckCode)
			aspraks.GET("/:id", asprakHandler.HandleGetAsprak)
			aspraks.PUT("/:id", asprakHandler.HandleUpdateAsprak)
			aspraks.DELETE("/:id", asprakHandler.HandleDeleteAsprak)
		}

		// Imports rewrite large parts of the roster, so they get their own
		// throttle on top of the normal middleware chain.
		imports := api.Group("/import")
		imports.Use(middleware.GinRateLimitMiddleware(s.config.ImportRateLimitPerSec))
		{
			imports.POST("/roster", importHandler.HandleImportRoster)
		}

		api.GET("/export/roster", exportHandler.HandleExportRoster)
	}

	handlers.RegisterSwaggerRoutes(router, "localhost:"+s.config.Port)

	return router
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.buildRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // exports can be slow on large rosters
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting HTTP server", "addr", s.httpServer.Addr, "database", s.db.Path())

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Initiating graceful shutdown")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	slog.Info("Graceful shutdown completed")
	return nil
}
