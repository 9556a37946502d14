package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemComputeLineTotal(t *testing.T) {
	item := OrderItem{
		GigID:     uuid.New(),
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(45),
		AddOns: []AddOnCharge{
			{Name: "Sound system", Kind: AddOnFlag, UnitPrice: decimal.NewFromInt(25), Count: 1},
			{Name: "Extra hour", Kind: AddOnCounted, UnitPrice: decimal.NewFromInt(10), Count: 1},
		},
	}

	assert.True(t, item.ComputeLineTotal().Equal(decimal.NewFromInt(125)))
}

func TestOrderItemLineTotalNeverNegative(t *testing.T) {
	item := OrderItem{Quantity: 1, UnitPrice: decimal.NewFromInt(-10)}

	assert.True(t, item.ComputeLineTotal().Equal(decimal.Zero))
}

func TestAddOnChargeZeroCountIsFree(t *testing.T) {
	charge := AddOnCharge{UnitPrice: decimal.NewFromInt(10), Count: 0}

	assert.True(t, charge.Amount().Equal(decimal.Zero))
}

func TestOrderValidateChecksCachedTotal(t *testing.T) {
	order := Order{
		ID:       uuid.New(),
		ClientID: uuid.New(),
		Status:   OrderPending,
		Items: []OrderItem{
			{GigID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
		},
	}

	order.Total = order.ComputeTotal()
	require.NoError(t, order.ValidateOrder())

	order.Total = decimal.NewFromInt(1)
	assert.Error(t, order.ValidateOrder())
}

func TestOrderValidateRejectsEmptyAndUnknownStatus(t *testing.T) {
	empty := Order{Status: OrderPending}
	assert.Error(t, empty.ValidateOrder())

	bad := Order{
		Status: OrderStatus("shipped"),
		Items:  []OrderItem{{Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
	}
	bad.Total = bad.ComputeTotal()
	assert.Error(t, bad.ValidateOrder())
}

func TestOrderStatusGraph(t *testing.T) {
	assert.True(t, OrderPending.CanTransition(OrderConfirmed))
	assert.True(t, OrderPending.CanTransition(OrderCancelled))
	assert.True(t, OrderConfirmed.CanTransition(OrderCompleted))
	assert.True(t, OrderConfirmed.CanTransition(OrderCancelled))

	assert.False(t, OrderPending.CanTransition(OrderCompleted))
	assert.False(t, OrderCompleted.CanTransition(OrderPending))
	assert.False(t, OrderCancelled.CanTransition(OrderConfirmed))
}
