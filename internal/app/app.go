package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/theyuvrajyadav/currency-converter/internal/config"
	"github.com/theyuvrajyadav/currency-converter/internal/handler"
	"github.com/theyuvrajyadav/currency-converter/internal/logger"
	"github.com/theyuvrajyadav/currency-converter/internal/middleware"
	"github.com/theyuvrajyadav/currency-converter/internal/service"
)

type Application struct {
	config *config.Config
	router *gin.Engine
	logger *zap.Logger
	server *http.Server
}

func New(cfg *config.Config) *Application {
	zapLogger, err := logger.New(&cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
		zapLogger.Info("Running in RELEASE mode")
	} else {
		gin.SetMode(gin.DebugMode)
		zapLogger.Info("Running in DEBUG mode")
	}

	router := gin.New()
	currencyService := service.NewCurrencyService(cfg, zapLogger)
	currencyHandler := handler.NewCurrencyHandler(currencyService)

	app := &Application{
		config: cfg,
		router: router,
		logger: zapLogger,
	}
	app.setupMiddleware()
	app.setupRouter(currencyHandler)

	zapLogger.Info("Application initialized",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("api_url", cfg.API.BaseURL),
	)
	return app
}

func (a *Application) setupMiddleware() {
	a.router.Use(middleware.RecoveryMiddleware(a.logger))
	a.router.Use(middleware.LoggingMiddleware(a.logger))
	a.router.Use(middleware.CORSMiddleware())
	a.logger.Debug("Middleware configured")
}

func (a *Application) setupRouter(currencyHandler *handler.CurrencyHandler) {
	a.router.GET("/health", handler.HealthCheck)
	apiV1 := a.router.Group("/api/v1")
	apiV1.GET("/convert", currencyHandler.Convert)
	a.logger.Debug("Routes configured",
		zap.String("health", "GET /health"),
		zap.String("convert", "GET /api/v1/convert"),
	)
}

func (a *Application) Run() error {
	a.server = &http.Server{
		Addr:         a.config.Server.Addr(),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)

	go func() {
		a.logger.Info("Server starting",
			zap.String("address", a.server.Addr),
			zap.String("mode", a.config.Server.Mode),
		)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		a.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}

		a.logger.Info("Server stopped gracefully")
		a.logger.Sync()
		return nil
	}
}
