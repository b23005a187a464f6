package identity

// Role gates which dashboard an authenticated user may mount.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Identity is the authenticated (user, role) pair consumed by the dashboard
// controllers. It is built at the HTTP boundary from verified token claims
// and passed explicitly; nothing below the handlers reads ambient auth state.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   Role
}

func (i Identity) IsClient() bool { return i.Role == RoleClient }
func (i Identity) IsAdmin() bool  { return i.Role == RoleAdmin }

// FromClaims extracts an Identity from an OIDC/JWT claims map. The role comes
// from a flat "role" claim when present, otherwise from Keycloak-style
// realm_access.roles (first of client/admin wins).
func FromClaims(claims map[string]interface{}) Identity {
	id := Identity{}
	id.UserID, _ = claims["sub"].(string)
	id.Email, _ = claims["email"].(string)
	id.Name, _ = claims["name"].(string)
	if r, ok := claims["role"].(string); ok {
		id.Role = Role(r)
		return id
	}
	if ra, ok := claims["realm_access"].(map[string]interface{}); ok {
		if roles, ok := ra["roles"].([]interface{}); ok {
			for _, v := range roles {
				switch v {
				case string(RoleClient):
					id.Role = RoleClient
					return id
				case string(RoleAdmin):
					id.Role = RoleAdmin
					return id
				}
			}
		}
	}
	return id
}
