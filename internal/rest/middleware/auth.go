package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/auth"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/types"
)

// GuestAuthenticateMiddleware allows requests without authentication and
// stamps the default tenant and user so downstream code always finds both.
func GuestAuthenticateMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, types.CtxTenantID, types.DefaultTenantID)
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// AuthenticateMiddleware authenticates requests by either a machine API key
// in the configured header or a JWT bearer token, and attaches the resolved
// actor, tenant and user to the request context.
func AuthenticateMiddleware(provider *auth.Provider, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader(provider.APIKeyHeader()); apiKey != "" {
			binding, ok := provider.ResolveAPIKey(apiKey)
			if !ok || binding.TenantID == "" || binding.UserID == "" {
				log.Debugw("invalid api key")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
				c.Abort()
				return
			}

			ctx := c.Request.Context()
			ctx = context.WithValue(ctx, types.CtxTenantID, binding.TenantID)
			ctx = context.WithValue(ctx, types.CtxUserID, binding.UserID)
			ctx = context.WithValue(ctx, types.CtxActor, &types.Actor{
				ID:   binding.UserID,
				Role: binding.Role,
			})
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := provider.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Debugw("failed to validate token", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		if claims.Subject == "" || claims.TenantID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, types.CtxUserID, claims.Subject)
		ctx = context.WithValue(ctx, types.CtxTenantID, claims.TenantID)
		ctx = context.WithValue(ctx, types.CtxActor, &types.Actor{
			ID:   claims.Subject,
			Role: claims.Role,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
