package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/riskradar/riskradar-backend/internal/config"
	"github.com/dafibh/riskradar/riskradar-backend/internal/handler"
	"github.com/dafibh/riskradar/riskradar-backend/internal/metrics"
	"github.com/dafibh/riskradar/riskradar-backend/internal/middleware"
	"github.com/dafibh/riskradar/riskradar-backend/internal/repository/postgres"
	"github.com/dafibh/riskradar/riskradar-backend/internal/service"
	"github.com/dafibh/riskradar/riskradar-backend/internal/websocket"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()
	log.Info().Msg("Connected to database")

	if err := postgres.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}

	// Initialize repositories
	financialDataRepo := postgres.NewFinancialDataRepository(pool)

	// Initialize services
	financialDataService := service.NewFinancialDataService(financialDataRepo)
	riskService := service.NewRiskService(financialDataRepo)

	// Realtime events
	var wsHandler *handler.WebSocketHandler
	if cfg.WebSocketEnabled {
		hub := websocket.NewHub()
		financialDataService.SetEventPublisher(hub)
		wsHandler = handler.NewWebSocketHandler(hub, cfg.CORSOrigins)
	} else {
		financialDataService.SetEventPublisher(&websocket.NoOpPublisher{})
	}

	// Initialize handlers
	riskHandler := handler.NewRiskHandler(riskService)
	financialDataHandler := handler.NewFinancialDataHandler(financialDataService, riskService)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Request count and latency per route
	e.Use(metrics.Middleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Per-IP rate limiting on /api routes
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Register API routes
	handler.RegisterRoutes(e, riskHandler, financialDataHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Bool("websocket", cfg.WebSocketEnabled).
			Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("client_ip", c.RealIP()).
				Msg("request")

			return nil
		}
	}
}
