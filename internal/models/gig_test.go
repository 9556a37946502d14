package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGig() Gig {
	return Gig{
		ID:          uuid.New(),
		Title:       "Henna Night",
		Description: "Traditional henna ceremony",
		Category:    "Henna",
		BasePrice:   decimal.NewFromInt(80),
		MinQuantity: 1,
		MaxQuantity: 5,
	}
}

func TestValidateGigAcceptsValid(t *testing.T) {
	g := validGig()
	assert.NoError(t, g.ValidateGig())
}

func TestValidateGigRejectsNegativePrice(t *testing.T) {
	g := validGig()
	g.BasePrice = decimal.NewFromInt(-1)
	assert.Error(t, g.ValidateGig())
}

func TestValidateGigRejectsUnknownCategory(t *testing.T) {
	g := validGig()
	g.Category = "Skydiving"
	assert.Error(t, g.ValidateGig())

	// Empty category is allowed; placeholder gigs have none.
	g.Category = ""
	assert.NoError(t, g.ValidateGig())
}

func TestValidateGigRejectsInvertedQuantityWindow(t *testing.T) {
	g := validGig()
	g.MinQuantity = 10
	g.MaxQuantity = 2
	assert.Error(t, g.ValidateGig())
}

func TestValidateGigRejectsNegativeAddOnPrice(t *testing.T) {
	g := validGig()
	g.AddOns = []AddOn{{Name: "Extra", Kind: AddOnFlag, Price: decimal.NewFromInt(-5)}}
	assert.Error(t, g.ValidateGig())
}

func TestIsValidCategoryIgnoresCase(t *testing.T) {
	assert.True(t, IsValidCategory("mariage"))
	assert.True(t, IsValidCategory("MUSIQUE"))
	assert.False(t, IsValidCategory("Plumbing"))
}

func TestRecalculateRating(t *testing.T) {
	g := validGig()
	g.Reviews = []Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}

	g.RecalculateRating()

	assert.Equal(t, 3, g.ReviewCount)
	assert.InDelta(t, 4.0, g.Rating, 0.001)

	g.Reviews = nil
	g.RecalculateRating()
	assert.Equal(t, 0, g.ReviewCount)
	assert.Zero(t, g.Rating)
}

func TestGigUpdateApplyToMergesSetFields(t *testing.T) {
	g := validGig()
	original := g.Description

	title := "Henna Deluxe"
	price := decimal.NewFromInt(120)
	update := GigUpdate{Title: &title, BasePrice: &price}
	update.ApplyTo(&g)

	assert.Equal(t, "Henna Deluxe", g.Title)
	assert.True(t, g.BasePrice.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, original, g.Description)
	require.False(t, g.UpdatedAt.IsZero())
}
