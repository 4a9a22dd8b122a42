package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/hogarlabs/hogar-gateway/internal/config"
	"github.com/hogarlabs/hogar-gateway/internal/handler"
	"github.com/hogarlabs/hogar-gateway/internal/middleware"
	"github.com/hogarlabs/hogar-gateway/internal/service"
	"github.com/hogarlabs/hogar-gateway/internal/upstream"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
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

	// Upstream REST clients
	client := upstream.NewClient(cfg.UpstreamURL, cfg.SessionCookie, cfg.UpstreamTimeout)
	movementClient := upstream.NewMovementClient(client)
	incomeClient := upstream.NewIncomeClient(client)
	loanClient := upstream.NewLoanClient(client)
	budgetClient := upstream.NewBudgetClient(client)
	recurringClient := upstream.NewRecurringClient(client)
	cardClient := upstream.NewCardClient(client)
	catalogClient := upstream.NewCatalogClient(client)

	// Initialize services
	dashboardState := service.NewDashboardState()
	defer dashboardState.Stop()

	expenseService := service.NewExpenseService(movementClient, budgetClient, recurringClient, catalogClient)
	incomeService := service.NewIncomeService(incomeClient)
	loanService := service.NewLoanService(loanClient)
	budgetService := service.NewBudgetService(budgetClient, movementClient, recurringClient, catalogClient)
	cardService := service.NewCardService(cardClient, catalogClient)
	dashboardService := service.NewDashboardService(dashboardState, expenseService, incomeService, loanService, budgetService, cardService)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	movementHandler := handler.NewMovementHandler(expenseService, dashboardService)
	incomeHandler := handler.NewIncomeHandler(incomeService, dashboardService)
	budgetHandler := handler.NewBudgetHandler(budgetService, dashboardService)
	cardHandler := handler.NewCardHandler(cardService, dashboardService)

	// Rate limiter keyed by session
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	// Request ID middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes: every endpoint requires the forwarded session cookie
	api := e.Group("/api/v1")
	api.Use(middleware.RequireSession(cfg.SessionCookie))
	api.Use(middleware.RateLimitMiddleware(rateLimiter))
	handler.RegisterRoutes(api, dashboardHandler, movementHandler, incomeHandler, budgetHandler, cardHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.UpstreamURL).Msg("Starting server")
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
				Msg("request")

			return nil
		}
	}
}
