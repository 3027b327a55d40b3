package middleware

import (
	"strings"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set once a token has been validated.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// name of the cookie the web client's login stores the session token in
const tokenCookie = "token"

// AuthMiddleware accepts a session token from the token cookie or a Bearer
// Authorization header.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Error(errors.Unauthorized("missing session token"))
			c.Abort()
			return
		}

		claims, err := auth.ValidateJWT(token, secret)
		if err != nil {
			c.Error(errors.Unauthorized(err.Error()))
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != auth.RoleAdmin {
			c.Error(errors.Forbidden("user " + c.GetString(CtxUserID) + " is not an admin"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(tokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
