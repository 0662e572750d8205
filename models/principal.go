package models

// User roles.
const (
	RoleSeeker   = "seeker"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// Principal identifies the authenticated caller. It is extracted from the
// bearer token by the auth middleware and passed explicitly into every
// service call; nothing below the handler layer reads it from ambient state.
type Principal struct {
	ID   string
	Role string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
