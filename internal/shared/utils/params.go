package utils

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/shared/errors"
)

// ParseIDParam reads a non-empty identifier from a URL path parameter.
// entityName is used in error messages (e.g., "case", "ticket").
func ParseIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	value := strings.TrimSpace(c.Param(paramName))
	if value == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	return value, nil
}
