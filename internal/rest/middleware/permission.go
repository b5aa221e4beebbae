package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/rbac"
	"github.com/stayloop/stayloop/internal/types"
)

// PermissionMiddleware handles route-level RBAC checks
type PermissionMiddleware struct {
	rbacService *rbac.Service
	logger      *logger.Logger
}

func NewPermissionMiddleware(rbacService *rbac.Service, logger *logger.Logger) *PermissionMiddleware {
	return &PermissionMiddleware{
		rbacService: rbacService,
		logger:      logger,
	}
}

// RequirePermission returns a middleware checking the actor's role for
// entity.action. Called explicitly in route definitions. Ownership-based
// access stays in the service layer; this gate covers role-only routes.
func (pm *PermissionMiddleware) RequirePermission(entity string, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := types.GetActor(c.Request.Context())
		if actor == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		var roles []string
		if actor.Role != "" {
			roles = append(roles, actor.Role)
		}
		if !pm.rbacService.HasPermission(roles, entity, action) {
			pm.logger.Infow("permission denied",
				"user_id", actor.ID,
				"role", actor.Role,
				"entity", entity,
				"action", action,
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": fmt.Sprintf("Insufficient permissions to %s %s", action, entity),
			})
			return
		}

		c.Next()
	}
}
