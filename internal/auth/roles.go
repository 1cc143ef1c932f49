package auth

// Admin roles. Viewers can read dashboards and player state; admin and
// superadmin can additionally mutate player state (shield grants).
const (
	RoleViewer     = "viewer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// WriteRoles returns the roles allowed on mutating admin endpoints.
func WriteRoles() []string {
	return []string{RoleAdmin, RoleSuperAdmin}
}
