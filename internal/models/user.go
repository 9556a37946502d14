package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleArtist = "artist"
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User is the profile document kept in the identity provider's profiles table.
// The catalog only ever reads the role to decide which surface is reachable.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"password,omitempty"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Phone     string    `db:"phone" json:"phone"`
	Bio       string    `db:"bio" json:"bio"`
	Location  string    `db:"location" json:"location"`
	AvatarURL string    `db:"avatar_url" json:"avatar_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsKnownRole reports whether role is one of the three app roles.
func IsKnownRole(role string) bool {
	return role == RoleArtist || role == RoleClient || role == RoleAdmin
}
