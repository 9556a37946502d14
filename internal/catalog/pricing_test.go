package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteGig() models.Gig {
	return models.Gig{
		ID:          uuid.New(),
		Title:       "Live Band",
		BasePrice:   decimal.NewFromInt(45),
		MinQuantity: 1,
		MaxQuantity: 10,
		AddOns: []models.AddOn{
			{ID: "sound", Name: "Sound system", Kind: models.AddOnFlag, Price: decimal.NewFromInt(25)},
			{ID: "hour", Name: "Extra hour", Kind: models.AddOnCounted, Price: decimal.NewFromInt(10)},
		},
	}
}

func TestQuoteTotalWithAddOns(t *testing.T) {
	q := NewQuote(quoteGig())
	q.SetQuantity(2)
	q.AddOns[0].Selected = true
	q.AddOns[1].Count = 1

	// 45 x 2 + 25 + 10 = 125
	assert.True(t, q.Total().Equal(decimal.NewFromInt(125)), "got %s", q.Total())
}

func TestQuoteBaseOnly(t *testing.T) {
	q := NewQuote(quoteGig())

	assert.Equal(t, 1, q.Quantity)
	assert.True(t, q.Total().Equal(decimal.NewFromInt(45)))
}

func TestQuoteCountedAddOnScales(t *testing.T) {
	q := NewQuote(quoteGig())
	q.AddOns[1].Count = 3

	assert.True(t, q.Total().Equal(decimal.NewFromInt(75)), "got %s", q.Total())
}

func TestQuoteDecrementAtMinIsNoOp(t *testing.T) {
	q := NewQuote(quoteGig())
	require.Equal(t, 1, q.Quantity)

	q.Decrement()
	assert.Equal(t, 1, q.Quantity)
}

func TestQuoteIncrementAtMaxIsNoOp(t *testing.T) {
	q := NewQuote(quoteGig())
	q.SetQuantity(10)

	q.Increment()
	assert.Equal(t, 10, q.Quantity)
}

func TestQuoteSetQuantityClamps(t *testing.T) {
	q := NewQuote(quoteGig())

	q.SetQuantity(99)
	assert.Equal(t, 10, q.Quantity)

	q.SetQuantity(-5)
	assert.Equal(t, 1, q.Quantity)
}

func TestQuoteDefaultsForZeroBounds(t *testing.T) {
	g := quoteGig()
	g.MinQuantity = 0
	g.MaxQuantity = 0

	q := NewQuote(g)

	assert.Equal(t, 1, q.MinQuantity)
	assert.Equal(t, 1, q.MaxQuantity)
	assert.Equal(t, 1, q.Quantity)
}

func TestQuoteTotalNeverNegative(t *testing.T) {
	g := quoteGig()
	g.BasePrice = decimal.NewFromInt(-45)

	q := NewQuote(g)

	assert.True(t, q.Total().Equal(decimal.Zero))
}

func TestQuoteChargesFreezeSelections(t *testing.T) {
	q := NewQuote(quoteGig())
	q.AddOns[0].Selected = true
	q.AddOns[1].Count = 2

	charges := q.Charges()

	require.Len(t, charges, 2)
	assert.Equal(t, "Sound system", charges[0].Name)
	assert.Equal(t, 1, charges[0].Count)
	assert.True(t, charges[0].Amount().Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "Extra hour", charges[1].Name)
	assert.Equal(t, 2, charges[1].Count)
	assert.True(t, charges[1].Amount().Equal(decimal.NewFromInt(20)))
}

func TestQuoteIdenticalQuotesPriceIdentically(t *testing.T) {
	a := NewQuote(quoteGig())
	b := NewQuote(quoteGig())
	a.SetQuantity(3)
	b.SetQuantity(3)
	a.AddOns[0].Selected = true
	b.AddOns[0].Selected = true

	assert.True(t, a.Total().Equal(b.Total()))
}
