package domain

import (
	"fmt"
	"strings"
)

// Role classifies what a signed-in user may do.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleCashier  Role = "cashier"
	RoleOwner    Role = "owner"
)

// ParseRole maps a string onto a known role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleCashier, RoleOwner:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Staff reports whether the role may manage the catalog.
func (r Role) Staff() bool {
	return r == RoleCashier || r == RoleOwner
}

// User is the authenticated identity supplied by the auth collaborator.
// The stores treat it as read-only input and never mutate it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
