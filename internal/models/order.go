package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions is the allowed status graph. Completed and cancelled are
// terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderCompleted, OrderCancelled},
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// AddOnCharge is one priced extra applied to an order line. For flag add-ons
// Count is always 1; for counted add-ons it is the chosen count.
type AddOnCharge struct {
	Name      string          `bson:"name" json:"name"`
	Kind      AddOnKind       `bson:"kind" json:"kind"`
	UnitPrice decimal.Decimal `bson:"-" json:"unit_price"`
	Count     int             `bson:"count" json:"count"`
}

// Amount is the charge's contribution to the line total.
func (a AddOnCharge) Amount() decimal.Decimal {
	if a.Count <= 0 {
		return decimal.Zero
	}
	return a.UnitPrice.Mul(decimal.NewFromInt(int64(a.Count)))
}

// OrderItem is one gig quote frozen into an order.
type OrderItem struct {
	GigID     uuid.UUID       `bson:"gig_id" json:"gig_id"`
	Title     string          `bson:"title" json:"title"`
	Quantity  int             `bson:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `bson:"-" json:"unit_price"`
	AddOns    []AddOnCharge   `bson:"-" json:"add_ons,omitempty"`
	LineTotal decimal.Decimal `bson:"-" json:"line_total"`
}

// ComputeLineTotal recomputes the line from its parts.
func (it OrderItem) ComputeLineTotal() decimal.Decimal {
	total := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
	for _, a := range it.AddOns {
		total = total.Add(a.Amount())
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Order references a client and one or more gig/ticket line items. Total is a
// cache of the computed sum and must equal ComputeTotal at all times.
type Order struct {
	ID        uuid.UUID       `bson:"_id" json:"id"`
	ClientID  uuid.UUID       `bson:"client_id" json:"client_id"`
	ArtistID  uuid.UUID       `bson:"artist_id" json:"artist_id"`
	Items     []OrderItem     `bson:"-" json:"items"`
	Status    OrderStatus     `bson:"status" json:"status"`
	Total     decimal.Decimal `bson:"-" json:"total"`
	Message   string          `bson:"message" json:"message,omitempty"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updated_at"`
}

// ComputeTotal sums the line totals. Never negative.
func (o Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.ComputeLineTotal())
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// ValidateOrder checks the cached total against the computed one and that the
// order has at least one line and a known status.
func (o *Order) ValidateOrder() error {
	if len(o.Items) == 0 {
		return fmt.Errorf("order must have at least one item")
	}
	if !o.Status.IsValid() {
		return fmt.Errorf("unknown order status: %s", o.Status)
	}
	if !o.Total.Equal(o.ComputeTotal()) {
		return fmt.Errorf("order total %s does not match computed total %s", o.Total, o.ComputeTotal())
	}
	return nil
}
