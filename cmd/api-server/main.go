package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-AIUB/library-management-system-backend/database"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/cache"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/config"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/handler"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/middleware"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/repository"
	"github.com/Muhammad-AIUB/library-management-system-backend/internal/httpapi/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	appCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		// The API works without Redis, reads just skip the cache.
		logger.Warn("redis unavailable, running without cache", "error", err)
		appCache = nil
	} else {
		defer appCache.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	bookService := service.NewBookService(bookRepo)
	noteService := service.NewNoteService(noteRepo, bookRepo)
	progressService := service.NewProgressService(progressRepo, bookRepo, appCache)
	goalService := service.NewGoalService(goalRepo, bookRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	recommendationService := service.NewRecommendationService(recommendationRepo, bookRepo, appCache)
	summaryService := service.NewSummaryService(summaryRepo, bookRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, bookRepo, appCache)

	// Background sweep resolving goals whose window closed.
	go runGoalSweep(goalService, cfg.GoalSweepInterval, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	api := r.Group("/api")
	api.Use(limiter.Middleware())

	handler.NewUserHandler(userService).RegisterRoutes(api.Group("/users"))
	handler.NewBookHandler(bookService).RegisterRoutes(api.Group("/books"))
	handler.NewNoteHandler(noteService).RegisterRoutes(api.Group("/notes"))
	handler.NewProgressHandler(progressService).RegisterRoutes(api.Group("/progress"))
	handler.NewGoalHandler(goalService).RegisterRoutes(api.Group("/goals"))
	handler.NewNotificationHandler(notificationService).RegisterRoutes(api.Group("/notifications"))
	handler.NewRecommendationHandler(recommendationService).RegisterRoutes(api.Group("/recommendations"))
	handler.NewSummaryHandler(summaryService).RegisterRoutes(api.Group("/summaries"))
	handler.NewSettingsHandler(settingsService).RegisterRoutes(api.Group("/settings"))
	handler.NewDashboardHandler(dashboardService).RegisterRoutes(api.Group("/dashboard"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func runGoalSweep(goals service.GoalService, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		resolved, err := goals.ExpireOverdue(ctx)
		cancel()
		if err != nil {
			logger.Error("goal expiry sweep failed", "error", err)
			continue
		}
		if resolved > 0 {
			logger.Info("goal expiry sweep resolved goals", "count", resolved)
		}
	}
}
