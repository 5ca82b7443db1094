package auth

import "strings"

const (
	RoleUsuario = "usuario"
	RoleAdmin   = "admin"
)

// EffectiveRole resolves the role minted into a token. The stored profile
// role wins unless the verified email contains "admin" anywhere
// (case-insensitive), which forces the admin role. That override predates
// proper role provisioning; swap this function for real role storage when it
// goes away. It must be evaluated exactly once, at token issuance.
func EffectiveRole(email, storedRole string) string {
	role := storedRole
	if role == "" {
		role = RoleUsuario
	}

	if strings.Contains(strings.ToLower(email), "admin") {
		return RoleAdmin
	}

	return role
}
