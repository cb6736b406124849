package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrewpaige1/flashdeck-api/config"
	"github.com/andrewpaige1/flashdeck-api/handlers"
	"github.com/andrewpaige1/flashdeck-api/middleware"
	"github.com/andrewpaige1/flashdeck-api/store"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if not in production environment
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if dotenvErr != nil {
		logger.Warn(".env file not found, environment variables might not be loaded", zap.Error(dotenvErr))
	}

	// Initialize database connection
	db, err := config.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	DBHandler := handlers.NewDBHandler(store.New(db, cfg.ShareIDLength), logger)
	metrics := middleware.NewMetrics("flashdeck")

	mux := DBHandler.Routes()
	mux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = metrics.Middleware(mux)
	handler = middleware.Logger(logger)(handler)
	handler = chimiddleware.Recoverer(handler)
	handler = chimiddleware.RequestID(handler)

	// Configure CORS with specific options
	handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With", "X-Request-Id", "Accept", "Origin"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(handler)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server listening",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.Environment),
			zap.String("driver", cfg.DBDriver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
