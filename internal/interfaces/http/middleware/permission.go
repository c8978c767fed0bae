package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

// StaffChecker answers the single authorization question the API asks.
type StaffChecker interface {
	IsStaff(actorID string) (bool, error)
}

type PermissionMiddleware struct {
	checker StaffChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker StaffChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

func (m *PermissionMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := GetActorID(c)
		if actorID == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "X-Actor-ID header is required")
			c.Abort()
			return
		}

		allowed, err := m.checker.IsStaff(actorID)
		if err != nil {
			m.logger.Errorw("staff check failed", "error", err, "actor_id", actorID)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("staff only operation denied", "actor_id", actorID, "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusForbidden, "Staff only.")
			c.Abort()
			return
		}

		c.Next()
	}
}
