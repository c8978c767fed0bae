package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/shared/constants"
	"github.com/hartlaw/hartlaw/internal/shared/id"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

// RequestID propagates X-Request-ID, minting one when the caller sent none.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(constants.HeaderXRequestID))
		if requestID == "" {
			if generated, err := id.NewRequestID(); err == nil {
				requestID = generated
			}
		}
		if requestID != "" {
			c.Set(constants.ContextKeyRequestID, requestID)
			c.Header(constants.HeaderXRequestID, requestID)
		}
		c.Next()
	}
}

// Actor stores the caller identity from X-Actor-ID. Identity is asserted by
// the collaborator in front of this service; it is not authenticated here.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorID := strings.TrimSpace(c.GetHeader(constants.HeaderXActorID)); actorID != "" {
			c.Set(constants.ContextKeyActorID, actorID)
		}
		c.Next()
	}
}

// RequireActor rejects requests that carry no actor identity.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetActorID(c) == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "X-Actor-ID header is required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetActorID returns the actor set by Actor, or "".
func GetActorID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyActorID)
}
