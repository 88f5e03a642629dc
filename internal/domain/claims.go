package domain

// Role of the caller, derived from the `admin` claim of the bearer token:
// absent means an ordinary passenger, 0 a regular admin, 1 a super admin.
type Role int

const (
	RolePassenger Role = iota
	RoleAdmin
	RoleSuperAdmin
)

// Claims is the verified payload of a bearer token.
type Claims struct {
	ID   int64
	Role Role
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}
