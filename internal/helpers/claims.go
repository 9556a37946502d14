package helpers

import (
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
)

// EnhancedClaims carries a validated token's identity plus the profile row's
// role, which is the authoritative role for authorization decisions.
type EnhancedClaims struct {
	*CustomClaims
	ProfileRole string `json:"profile_role"`
	UserName    string `json:"user_name"`
}

func (ec *EnhancedClaims) HasRole(role string) bool {
	return ec.ProfileRole == role
}

func (ec *EnhancedClaims) IsAdmin() bool {
	return ec.HasRole(models.RoleAdmin)
}

func (ec *EnhancedClaims) IsArtist() bool {
	return ec.HasRole(models.RoleArtist)
}

func (ec *EnhancedClaims) IsClient() bool {
	return ec.HasRole(models.RoleClient)
}

// IsOwner reports whether the claims belong to the given user id.
func (ec *EnhancedClaims) IsOwner(userId string) bool {
	return ec.Subject == userId
}

// GetSafeRole returns the profile role, falling back to client when the
// profile has no role set.
func (ec *EnhancedClaims) GetSafeRole() string {
	if ec.ProfileRole == "" {
		return models.RoleClient
	}
	return ec.ProfileRole
}
