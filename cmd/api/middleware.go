package main

import (
	"time"

	"homeinsight-listings/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// configure all middleware for the router. ErrorHandler sits ahead of the
// middleware that aborts with c.Error so it renders their failures too.
func (a *App) setupMiddleware() {
	a.Router.Use(setupCORS(a.Config.CORS.AllowedOrigins))

	a.Router.Use(middleware.RequestID())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.LoggingMiddleware())
	a.Router.Use(middleware.ErrorHandler())
	a.Router.Use(gin.Recovery())
	a.Router.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	a.Router.Use(middleware.SecureHeaders())
}

// configure CORS middleware. Credentials are allowed so the session cookie
// reaches the admin endpoint, which rules out a wildcard origin.
func setupCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", middleware.HeaderRequestID}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
