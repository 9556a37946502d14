package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/monitoring"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrdersRepo struct {
	mock.Mock
}

func (m *MockOrdersRepo) InsertOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrdersRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrdersRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrdersRepo) ListOrdersByClient(ctx context.Context, clientId uuid.UUID) ([]models.Order, error) {
	args := m.Called(ctx, clientId)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrdersRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func setupOrderService() (*OrderService, *MockOrdersRepo, *catalog.Catalog, models.Gig) {
	ordersRepo := &MockOrdersRepo{}
	gigsRepo := &MockGigsRepo{}
	cat := catalog.New()

	gig := cat.AddGig(models.Gig{
		ArtistID:    uuid.New(),
		Title:       "Live Band",
		BasePrice:   decimal.NewFromInt(45),
		MinQuantity: 1,
		MaxQuantity: 10,
		AddOns: []models.AddOn{
			{ID: "sound", Name: "Sound system", Kind: models.AddOnFlag, Price: decimal.NewFromInt(25)},
			{ID: "hour", Name: "Extra hour", Kind: models.AddOnCounted, Price: decimal.NewFromInt(10)},
		},
	})

	gigService := NewGigService(gigsRepo, cat)
	svc := NewOrderService(ordersRepo, gigService, cat, monitoring.NewMonitor())
	return svc, ordersRepo, cat, gig
}

func TestPlaceOrderFreezesQuoteIntoOrder(t *testing.T) {
	svc, ordersRepo, cat, gig := setupOrderService()
	clientId := uuid.New()

	ordersRepo.On("InsertOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := svc.PlaceOrder(context.Background(), clientId, []OrderLineRequest{
		{
			GigID:       gig.ID,
			Quantity:    2,
			AddOnIds:    []string{"sound"},
			AddOnCounts: map[string]int{"hour": 1},
		},
	}, "for Saturday")
	require.NoError(t, err)

	// 45 x 2 + 25 + 10 = 125
	assert.True(t, order.Total.Equal(decimal.NewFromInt(125)), "got %s", order.Total)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, clientId, order.ClientID)
	assert.Equal(t, gig.ArtistID, order.ArtistID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Live Band", order.Items[0].Title)
	assert.Len(t, cat.Orders(), 1)
	ordersRepo.AssertExpectations(t)
}

func TestPlaceOrderClampsQuantity(t *testing.T) {
	svc, ordersRepo, _, gig := setupOrderService()

	ordersRepo.On("InsertOrder", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := svc.PlaceOrder(context.Background(), uuid.New(), []OrderLineRequest{
		{GigID: gig.ID, Quantity: 99},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 10, order.Items[0].Quantity)
}

func TestPlaceOrderUnknownGig(t *testing.T) {
	svc, _, _, _ := setupOrderService()

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), []OrderLineRequest{
		{GigID: uuid.New(), Quantity: 1},
	}, "")
	assert.ErrorIs(t, err, catalog.ErrGigNotFound)
}

func TestPlaceOrderRequiresLines(t *testing.T) {
	svc, _, _, _ := setupOrderService()

	_, err := svc.PlaceOrder(context.Background(), uuid.New(), nil, "")
	assert.Error(t, err)
}

func TestUpdateStatusFollowsGraph(t *testing.T) {
	svc, ordersRepo, cat, _ := setupOrderService()
	order := cat.AddOrder(models.Order{Status: models.OrderPending, ClientID: uuid.New()})

	ordersRepo.On("UpdateOrderStatus", mock.Anything, order.ID, models.OrderConfirmed).Return(nil).Once()

	updated, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, updated.Status)

	// Pending -> completed is not in the graph; the store is never touched.
	other := cat.AddOrder(models.Order{Status: models.OrderPending})
	_, err = svc.UpdateStatus(context.Background(), other.ID, models.OrderCompleted)
	assert.ErrorIs(t, err, catalog.ErrInvalidTransition)
	ordersRepo.AssertExpectations(t)
}

func TestUpdateStatusStoreFailureLeavesCatalogUntouched(t *testing.T) {
	svc, ordersRepo, cat, _ := setupOrderService()
	order := cat.AddOrder(models.Order{Status: models.OrderPending, ClientID: uuid.New()})

	ordersRepo.On("UpdateOrderStatus", mock.Anything, order.ID, models.OrderConfirmed).
		Return(fmt.Errorf("write failed")).Once()

	_, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderConfirmed)
	require.Error(t, err)

	got, err := cat.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, got.Status)
	ordersRepo.AssertExpectations(t)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, cat, _ := setupOrderService()
	order := cat.AddOrder(models.Order{Status: models.OrderPending})

	_, err := svc.UpdateStatus(context.Background(), order.ID, models.OrderStatus("shipped"))
	assert.Error(t, err)
}
