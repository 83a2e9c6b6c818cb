package middleware

import (
	"context"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey keeps this package's context values apart from everyone else's.
type contextKey string

const roleKey = contextKey("role")

// WithRole returns a copy of ctx carrying the session role.
func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// GetRoleFromContext retrieves the authenticated role from the Gin context.
// It returns the role and a boolean indicating if it was found.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	role, ok := c.Request.Context().Value(roleKey).(domain.Role)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
