package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"homeinsight-listings/internal/handlers"
	"homeinsight-listings/internal/middleware"
	"homeinsight-listings/internal/repositories"
	"homeinsight-listings/internal/services"
	"homeinsight-listings/internal/validators"
	"homeinsight-listings/pkg/cache"
	"homeinsight-listings/pkg/config"
	"homeinsight-listings/pkg/database"
	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	PropertyHandler *handlers.PropertyHandler
	PropertyService *services.PropertyService
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server

	stopBackground context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeDatabase()
	app.initializeCache()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache. The client is kept even when the first ping
// fails; searches read from the database until Redis comes back.
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Redis unavailable, serving searches from the database: %v", err)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	ctx, cancel := context.WithCancel(context.Background())
	a.stopBackground = cancel
	a.RateLimiter = middleware.NewRateLimiter(a.Config.RateLimit.PerMinute, a.Config.RateLimit.Burst)
	go a.RateLimiter.Cleanup(ctx, 10*time.Minute, time.Hour)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	search := a.Config.Search

	// repositories
	propertyRepo := repositories.NewPropertyRepository(database.NewMongoDatabase(database.DB))
	var searchCache repositories.SearchCache
	if cache.RedisClient != nil {
		searchCache = repositories.NewSearchCache(cache.NewRedisCache(cache.RedisClient))
	}

	// validators
	propertyValidator := validators.NewPropertyValidator(search.DefaultLimit, search.MaxLimit)

	// services
	searchService := services.NewPropertySearchService(propertyRepo, searchCache, search.CacheTTL)
	a.PropertyService = services.NewPropertyService(propertyRepo, search.DetailSize, search.DetailTTL)
	adminService := services.NewAdminService(propertyRepo)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(searchService, a.PropertyService, adminService, propertyValidator)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	gin.SetMode(a.Config.Server.Mode)
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.stopBackground != nil {
		a.stopBackground()
	}
	if a.PropertyService != nil {
		a.PropertyService.Stop()
	}
	database.CloseDB()
	cache.CloseRedis()
}
