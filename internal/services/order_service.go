package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/monitoring"
)

// OrderLineRequest is one gig plus the buyer's quantity and add-on choices,
// as submitted from the checkout screen.
type OrderLineRequest struct {
	GigID       uuid.UUID      `json:"gig_id" validate:"required"`
	Quantity    int            `json:"quantity"`
	AddOnIds    []string       `json:"add_on_ids,omitempty"`
	AddOnCounts map[string]int `json:"add_on_counts,omitempty"`
}

type OrderService struct {
	ordersRepo models.OrdersRepo
	gigService *GigService
	catalog    *catalog.Catalog
	monitor    *monitoring.Monitor
}

func NewOrderService(ordersRepo models.OrdersRepo, gigService *GigService, cat *catalog.Catalog, monitor *monitoring.Monitor) *OrderService {
	return &OrderService{
		ordersRepo: ordersRepo,
		gigService: gigService,
		catalog:    cat,
		monitor:    monitor,
	}
}

// PlaceOrder quotes each requested line, freezes the quotes into order items
// and persists the order in pending status.
func (os *OrderService) PlaceOrder(ctx context.Context, clientId uuid.UUID, lines []OrderLineRequest, message string) (*models.Order, error) {
	if clientId == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("order must have at least one item")
	}

	order := models.Order{
		ID:       uuid.New(),
		ClientID: clientId,
		Status:   models.OrderPending,
		Message:  message,
	}

	for _, line := range lines {
		gig, err := os.catalog.GetGig(line.GigID)
		if err != nil {
			return nil, err
		}

		quote, err := os.gigService.Quote(line.GigID, line.Quantity, line.AddOnIds, line.AddOnCounts)
		if err != nil {
			return nil, err
		}

		item := models.OrderItem{
			GigID:     gig.ID,
			Title:     gig.Title,
			Quantity:  quote.Quantity,
			UnitPrice: quote.BasePrice,
			AddOns:    quote.Charges(),
		}
		item.LineTotal = item.ComputeLineTotal()

		// Single-artist orders for now; the first line decides the artist.
		if order.ArtistID == uuid.Nil {
			order.ArtistID = gig.ArtistID
		}
		order.Items = append(order.Items, item)
	}

	order.Total = order.ComputeTotal()
	if err := order.ValidateOrder(); err != nil {
		return nil, err
	}

	if err := os.ordersRepo.InsertOrder(ctx, &order); err != nil {
		return nil, err
	}

	stored := os.catalog.AddOrder(order)
	os.monitor.TrackOrder(string(stored.Status))
	return &stored, nil
}

func (os *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}
	return os.ordersRepo.GetOrderByID(ctx, id)
}

func (os *OrderService) ListOrders() []models.Order {
	return os.catalog.Orders()
}

func (os *OrderService) ListOrdersByClient(ctx context.Context, clientId uuid.UUID) ([]models.Order, error) {
	if clientId == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}
	return os.ordersRepo.ListOrdersByClient(ctx, clientId)
}

// UpdateStatus moves an order along the status graph, rejecting transitions
// the graph does not allow.
func (os *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown order status: %s", status)
	}

	current, err := os.catalog.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(status) {
		return nil, catalog.ErrInvalidTransition
	}

	if err := os.ordersRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}

	updated, err := os.catalog.UpdateOrderStatus(id, status)
	if err != nil {
		return nil, err
	}

	os.monitor.TrackOrder(string(status))
	return &updated, nil
}
