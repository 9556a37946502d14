package catalog

import (
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/shopspring/decimal"
)

// AddOnSelection pairs a gig add-on with the buyer's choice. For flag add-ons
// Selected decides whether the flat price applies; for counted add-ons Count
// is the number of units, floored at zero.
type AddOnSelection struct {
	AddOn    models.AddOn `json:"add_on"`
	Selected bool         `json:"selected"`
	Count    int          `json:"count"`
}

// charge is the selection's contribution to the total.
func (s AddOnSelection) charge() decimal.Decimal {
	switch s.AddOn.Kind {
	case models.AddOnFlag:
		if s.Selected {
			return s.AddOn.Price
		}
	case models.AddOnCounted:
		if s.Count > 0 {
			return s.AddOn.Price.Mul(decimal.NewFromInt(int64(s.Count)))
		}
	}
	return decimal.Zero
}

// Quote is a checkout in progress: a base unit price, a quantity bounded by
// [MinQuantity, MaxQuantity] and a set of add-on selections. Total is a pure
// function of the fields; identical quotes always price identically.
type Quote struct {
	BasePrice   decimal.Decimal  `json:"base_price"`
	Quantity    int              `json:"quantity"`
	MinQuantity int              `json:"min_quantity"`
	MaxQuantity int              `json:"max_quantity"`
	AddOns      []AddOnSelection `json:"add_ons"`
}

// NewQuote builds a quote for a gig, starting at the minimum quantity.
func NewQuote(g models.Gig) Quote {
	min, max := g.MinQuantity, g.MaxQuantity
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	q := Quote{
		BasePrice:   g.BasePrice,
		Quantity:    min,
		MinQuantity: min,
		MaxQuantity: max,
	}
	for _, a := range g.AddOns {
		q.AddOns = append(q.AddOns, AddOnSelection{AddOn: a})
	}
	return q
}

// Increment raises the quantity by one, a no-op at the maximum.
func (q *Quote) Increment() {
	if q.Quantity < q.MaxQuantity {
		q.Quantity++
	}
}

// Decrement lowers the quantity by one, a no-op at the minimum.
func (q *Quote) Decrement() {
	if q.Quantity > q.MinQuantity {
		q.Quantity--
	}
}

// SetQuantity clamps n into [MinQuantity, MaxQuantity].
func (q *Quote) SetQuantity(n int) {
	if n < q.MinQuantity {
		n = q.MinQuantity
	}
	if n > q.MaxQuantity {
		n = q.MaxQuantity
	}
	q.Quantity = n
}

// Total computes base x quantity plus every selected add-on charge. The
// result is never negative.
func (q Quote) Total() decimal.Decimal {
	total := q.BasePrice.Mul(decimal.NewFromInt(int64(q.Quantity)))
	for _, s := range q.AddOns {
		total = total.Add(s.charge())
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Charges freezes the current selections into order line charges.
func (q Quote) Charges() []models.AddOnCharge {
	var charges []models.AddOnCharge
	for _, s := range q.AddOns {
		switch s.AddOn.Kind {
		case models.AddOnFlag:
			if s.Selected {
				charges = append(charges, models.AddOnCharge{
					Name:      s.AddOn.Name,
					Kind:      s.AddOn.Kind,
					UnitPrice: s.AddOn.Price,
					Count:     1,
				})
			}
		case models.AddOnCounted:
			if s.Count > 0 {
				charges = append(charges, models.AddOnCharge{
					Name:      s.AddOn.Name,
					Kind:      s.AddOn.Kind,
					UnitPrice: s.AddOn.Price,
					Count:     s.Count,
				})
			}
		}
	}
	return charges
}
