package domain

import "time"

// Role is the privilege level carried by an authenticated session.
type Role string

const (
	RoleNone       Role = ""
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Admin reports whether the role grants access to the admin area.
func (r Role) Admin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Session is the authenticated identity held for one browser session.
// The four identity fields are set and cleared together: a Session either
// exists with all of them or does not exist at all.
type Session struct {
	ID          string    `json:"session_id"`
	Token       string    `json:"token"`
	Role        Role      `json:"role"`
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	ExpiresAt   time.Time `json:"expires_at"`
}
