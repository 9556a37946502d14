package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketplaceCategories is the fixed category set offered by the client app.
// A gig's category must be one of these; artist profiles may carry any subset
// as tags.
var MarketplaceCategories = []string{
	"Mariage",
	"Anniversaire",
	"Traiteur",
	"Musique",
	"Neggafa",
	"Conference",
	"Evenement d'entreprise",
	"Kermesse",
	"Henna",
	"Photographie",
	"Animation",
	"Decoration",
	"Buffet",
}

// IsValidCategory reports whether name is one of the marketplace categories.
// Comparison is case-insensitive, matching the filter engine.
func IsValidCategory(name string) bool {
	for _, c := range MarketplaceCategories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

type AddOnKind string

const (
	// AddOnFlag is a flat-fee extra: selected or not, one price.
	AddOnFlag AddOnKind = "flag"
	// AddOnCounted is a per-unit extra: count x unit price.
	AddOnCounted AddOnKind = "counted"
)

// AddOn is an optional priced extra an artist attaches to a gig.
type AddOn struct {
	ID    string          `bson:"id" json:"id"`
	Name  string          `bson:"name" json:"name" validate:"required"`
	Kind  AddOnKind       `bson:"kind" json:"kind" validate:"required,oneof=flag counted"`
	Price decimal.Decimal `bson:"price" json:"price"`
}

// Review is a client review left on a gig.
type Review struct {
	ID        uuid.UUID `bson:"id" json:"id"`
	UserID    uuid.UUID `bson:"user_id" json:"user_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	Rating    int       `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Gig is a sellable service offered by an artist. Tickets for event-like gigs
// hang off the gig so that every ticket always has a parent.
type Gig struct {
	ID          uuid.UUID       `bson:"_id" json:"id"`
	ArtistID    uuid.UUID       `bson:"artist_id" json:"artist_id"`
	Title       string          `bson:"title" json:"title" validate:"required"`
	Description string          `bson:"description" json:"description" validate:"required"`
	Category    string          `bson:"category" json:"category"`
	BasePrice   decimal.Decimal `bson:"-" json:"base_price"`
	MinQuantity int             `bson:"min_quantity" json:"min_quantity"`
	MaxQuantity int             `bson:"max_quantity" json:"max_quantity"`
	Images      []string        `bson:"images" json:"images"`
	Location    string          `bson:"location" json:"location"`
	AddOns      []AddOn         `bson:"-" json:"add_ons,omitempty"`
	Tickets     []Ticket        `bson:"-" json:"tickets,omitempty"`
	Reviews     []Review        `bson:"reviews" json:"reviews,omitempty"`
	Rating      float64         `bson:"rating" json:"rating"`
	ReviewCount int             `bson:"review_count" json:"review_count"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// ValidateGig checks the invariants the catalog relies on: a non-negative base
// price, a known category and a sane quantity window.
func (g *Gig) ValidateGig() error {
	if err := Validate.Struct(g); err != nil {
		return err
	}
	if g.BasePrice.IsNegative() {
		return fmt.Errorf("base price must not be negative")
	}
	if g.Category != "" && !IsValidCategory(g.Category) {
		return fmt.Errorf("unknown category: %s", g.Category)
	}
	if g.MinQuantity < 0 || g.MaxQuantity < 0 {
		return fmt.Errorf("quantity bounds must not be negative")
	}
	if g.MaxQuantity != 0 && g.MinQuantity > g.MaxQuantity {
		return fmt.Errorf("min quantity %d exceeds max quantity %d", g.MinQuantity, g.MaxQuantity)
	}
	for i := range g.AddOns {
		if g.AddOns[i].Price.IsNegative() {
			return fmt.Errorf("add-on %q price must not be negative", g.AddOns[i].Name)
		}
	}
	return nil
}

// RecalculateRating recomputes the cached rating and review count from the
// review list. Called after every review mutation.
func (g *Gig) RecalculateRating() {
	g.ReviewCount = len(g.Reviews)
	if g.ReviewCount == 0 {
		g.Rating = 0
		return
	}
	sum := 0
	for _, r := range g.Reviews {
		sum += r.Rating
	}
	g.Rating = float64(sum) / float64(g.ReviewCount)
}

// GigUpdate is a partial update: nil fields are left unchanged. The catalog
// replaces the matching entry in place, so position is preserved.
type GigUpdate struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	BasePrice   *decimal.Decimal `json:"base_price,omitempty"`
	MinQuantity *int             `json:"min_quantity,omitempty"`
	MaxQuantity *int             `json:"max_quantity,omitempty"`
	Images      *[]string        `json:"images,omitempty"`
	Location    *string          `json:"location,omitempty"`
	AddOns      *[]AddOn         `json:"add_ons,omitempty"`
}

// ApplyTo merges the set fields of the update into g.
func (u GigUpdate) ApplyTo(g *Gig) {
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
	if u.Category != nil {
		g.Category = *u.Category
	}
	if u.BasePrice != nil {
		g.BasePrice = *u.BasePrice
	}
	if u.MinQuantity != nil {
		g.MinQuantity = *u.MinQuantity
	}
	if u.MaxQuantity != nil {
		g.MaxQuantity = *u.MaxQuantity
	}
	if u.Images != nil {
		g.Images = *u.Images
	}
	if u.Location != nil {
		g.Location = *u.Location
	}
	if u.AddOns != nil {
		g.AddOns = *u.AddOns
	}
	g.UpdatedAt = time.Now()
}

// Category is an artist-managed grouping shown on the dashboard.
type Category struct {
	ID   uuid.UUID `bson:"_id" json:"id"`
	Name string    `bson:"name" json:"name" validate:"required"`
}
