package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
)

// Role gates which screens a session may see.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"

	// roleSalesAlias is the older name for the staff role, still accepted on input.
	roleSalesAlias = "sales"
)

// ParseRole accepts "admin", "staff" and the legacy alias "sales".
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleStaff), roleSalesAlias:
		return RoleStaff, nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown role %q", s))
	}
}

func (r Role) String() string {
	return string(r)
}

// CanSubmitClosings reports whether the role may use the closing form.
func (r Role) CanSubmitClosings() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanViewDashboard reports whether the role may see history, totals and analysis.
func (r Role) CanViewDashboard() bool {
	return r == RoleAdmin
}
