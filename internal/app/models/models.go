package models

// Role defines the user role type
type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether r is a role accepted at registration.
// Admin accounts live in a separate record set and are seeded, not registered.
func ValidRole(r Role) bool {
	return r == RoleStudent || r == RoleLecturer
}
