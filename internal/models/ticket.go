package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket is a purchasable admission unit tied to an event-like gig.
type Ticket struct {
	ID          uuid.UUID       `bson:"id" json:"id"`
	GigID       uuid.UUID       `bson:"gig_id" json:"gig_id"`
	Name        string          `bson:"name" json:"name" validate:"required"`
	Price       decimal.Decimal `bson:"-" json:"price"`
	Quantity    int             `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	EventDate   time.Time       `bson:"event_date" json:"event_date"`
	Location    string          `bson:"location" json:"location"`
	Contact     string          `bson:"contact" json:"contact"`
	Flyer       string          `bson:"flyer" json:"flyer,omitempty"`
	Description string          `bson:"description" json:"description,omitempty"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
}

// ValidateTicket enforces the required fields from the publish form: name,
// positive price, positive quantity and an event date.
func (t *Ticket) ValidateTicket() error {
	if err := Validate.Struct(t); err != nil {
		return err
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("price must be a positive number")
	}
	if t.EventDate.IsZero() {
		return fmt.Errorf("event date is required")
	}
	return nil
}
