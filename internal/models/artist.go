package models

import (
	"time"

	"github.com/google/uuid"
)

// Artist is a service-provider profile. Artists are created during onboarding
// (profile store side) and are read-only inside the catalog: clients browse,
// filter and bookmark them but never mutate them.
type Artist struct {
	ID          uuid.UUID `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name" validate:"required"`
	Bio         string    `bson:"bio" json:"bio"`
	Location    string    `bson:"location" json:"location"`
	Categories  []string  `bson:"categories" json:"categories"`
	Rating      float64   `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int       `bson:"review_count" json:"review_count" validate:"gte=0"`
	AvatarURL   string    `bson:"avatar_url" json:"avatar_url"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
