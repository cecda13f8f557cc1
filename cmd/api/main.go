package main

// @title CollabHub API
// @version 1.0
// @description Influencer collaboration program: campaigns, enrollments, analytics and leaderboards.

// @contact.name API Support
// @contact.email support@snoonu.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/collabhq/collabhub/config"
	_ "github.com/collabhq/collabhub/docs" // Swagger docs
	"github.com/collabhq/collabhub/pkg/analytics"
	"github.com/collabhq/collabhub/pkg/api/handlers"
	"github.com/collabhq/collabhub/pkg/cache"
	"github.com/collabhq/collabhub/pkg/campaign"
	"github.com/collabhq/collabhub/pkg/enrollment"
	"github.com/collabhq/collabhub/pkg/events"
	"github.com/collabhq/collabhub/pkg/jobs"
	"github.com/collabhq/collabhub/pkg/leaderboard"
	"github.com/collabhq/collabhub/pkg/logger"
	"github.com/collabhq/collabhub/pkg/metrics"
	custommiddleware "github.com/collabhq/collabhub/pkg/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)
	appLog.Info("configuration loaded", "environment", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			appLog.Warn("failed to initialize Sentry", "error", err)
		} else {
			appLog.Info("Sentry initialized", "environment", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		appLog.Info("Sentry disabled (no DSN configured)")
	}

	// Initialize Redis cache (optional)
	var redisClient *cache.Client
	if cfg.RedisEnabled {
		var err error
		redisClient, err = cache.NewClient(cfg.RedisURL)
		if err != nil {
			appLog.Warn("failed to connect to Redis, continuing without cache", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLog.Info("Redis cache connected")
		}
	} else {
		appLog.Info("Redis cache disabled")
	}

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	appLog.Info("Prometheus metrics initialized")

	providerTimeout := time.Duration(cfg.ProviderTimeoutSecs) * time.Second

	// Initialize services
	var campaignProvider campaign.Provider
	if cfg.CampaignSourceURL != "" {
		campaignProvider = campaign.NewHTTPProvider(cfg.CampaignSourceURL, providerTimeout)
	}
	campaignService := campaign.NewService(campaignProvider, redisClient, prometheusMetrics, appLog)

	store := enrollment.NewStore()
	enrollmentService := enrollment.NewService(store, enrollment.Config{
		ReferralBaseURL: cfg.ReferralBaseURL,
		ReviewDelay:     time.Duration(cfg.ReviewDelaySeconds) * time.Second,
		ApprovalDelay:   time.Duration(cfg.ApprovalDelaySeconds) * time.Second,
	}, appLog)
	defer enrollmentService.Stop()

	analyticsService := analytics.NewService(store, prometheusMetrics, appLog)

	var leaderboardProvider leaderboard.Provider
	if cfg.LeaderboardSourceURL != "" {
		leaderboardProvider = leaderboard.NewHTTPProvider(cfg.LeaderboardSourceURL, providerTimeout)
	}
	leaderboardService := leaderboard.NewService(leaderboardProvider, appLog)

	var eventsProvider events.Provider
	if cfg.EventsSourceURL != "" {
		eventsProvider = events.NewHTTPProvider(cfg.EventsSourceURL, providerTimeout)
	}
	eventsService := events.NewService(eventsProvider, appLog)

	// Warm external sources
	{
		ctx, cancel := context.WithTimeout(context.Background(), providerTimeout+time.Second)
		leaderboardService.Load(ctx)
		eventsService.Load(ctx)
		cancel()
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiter
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appLog.Info("request", "method", c.Request().Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))

	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "CollabHub API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		cacheStatus := "disabled"
		if redisClient != nil {
			cacheStatus = "up"
			if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
				cacheStatus = "down"
			}
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":      "healthy",
			"cache":       cacheStatus,
			"enrollments": store.Len(),
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize handlers
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, campaignService, prometheusMetrics)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, prometheusMetrics)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	tierHandler := handlers.NewTierHandler(store)
	eventsHandler := handlers.NewEventsHandler(eventsService)

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})

	v1.GET("/campaigns", campaignHandler.ListCampaigns)
	v1.GET("/campaigns/:id", campaignHandler.GetCampaign)

	v1.GET("/enrollments", enrollmentHandler.ListEnrollments)
	v1.POST("/enrollments", enrollmentHandler.CreateEnrollment)
	v1.GET("/enrollments/:id", enrollmentHandler.GetEnrollment)
	v1.DELETE("/enrollments/:id", enrollmentHandler.DeleteEnrollment)
	v1.POST("/enrollments/:id/upload", enrollmentHandler.UploadVideo)
	v1.POST("/enrollments/:id/submit", enrollmentHandler.SubmitVideo)
	v1.POST("/enrollments/:id/advance", enrollmentHandler.AdvanceEnrollment)
	v1.POST("/enrollments/:id/approve", enrollmentHandler.ApproveEnrollment)
	v1.POST("/enrollments/:id/reject", enrollmentHandler.RejectEnrollment)

	v1.GET("/analytics", analyticsHandler.GetReport)

	v1.GET("/leaderboard/collaborators", leaderboardHandler.ListCollaborators)
	v1.GET("/leaderboard/collaborators/:id", leaderboardHandler.GetCollaborator)
	v1.GET("/leaderboard/merchants", leaderboardHandler.ListMerchants)
	v1.GET("/leaderboard/daily-winners", leaderboardHandler.ListDailyWinners)

	v1.GET("/tiers", tierHandler.ListTiers)
	v1.GET("/tiers/me", tierHandler.GetStanding)
	v1.GET("/tiers/progress", tierHandler.GetProgress)

	v1.GET("/events", eventsHandler.ListEvents)
	v1.GET("/events/categories", eventsHandler.ListEventCategories)
	v1.GET("/events/filters", eventsHandler.ListEventFilters)

	// Scheduled jobs
	cronManager := jobs.NewCronManager(campaignService, leaderboardService, eventsService, store, analyticsService, appLog)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("failed to set up cron jobs: %v", err)
	}
	cronManager.Start()
	defer cronManager.Stop()

	// Start server
	go func() {
		addr := cfg.APIHost + ":" + cfg.APIPort
		appLog.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLog.Error("server stopped", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		appLog.Error("graceful shutdown failed", "error", err)
	}
}
