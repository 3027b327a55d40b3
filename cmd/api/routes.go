package main

import (
	"context"
	"net/http"
	"time"

	"homeinsight-listings/internal/middleware"
	"homeinsight-listings/pkg/cache"
	"homeinsight-listings/pkg/database"
	"homeinsight-listings/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupHealthCheck reports degraded rather than failing when only Redis is down.
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := database.Ping(ctx); err != nil {
			logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if err := cache.Ping(ctx); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusOK, gin.H{"status": "degraded", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes. The admin route is registered ahead
// of /:id so it is not read as an id.
func (a *App) setupAPIRoutes() {
	properties := a.Router.Group("/api/properties")
	{
		properties.GET("", a.PropertyHandler.SearchProperties)

		admin := properties.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.Config.JWT.Secret), middleware.RequireAdmin())
		admin.GET("/all", a.PropertyHandler.ListAllProperties)

		properties.GET("/:id", a.PropertyHandler.GetPropertyByID)
	}
}
