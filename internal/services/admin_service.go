package services

import (
	"context"
	"fmt"

	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/shopspring/decimal"
)

// AdminStats is the dashboard summary shown on the admin home screen.
type AdminStats struct {
	TotalUsers    int             `json:"total_users"`
	PendingOrders int             `json:"pending_orders"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalTickets  int             `json:"total_tickets"`
}

type AdminService struct {
	userRepo models.UserRepo
	catalog  *catalog.Catalog
}

func NewAdminService(userRepo models.UserRepo, cat *catalog.Catalog) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		catalog:  cat,
	}
}

// Stats aggregates the dashboard numbers: user count from the profile store,
// everything else from the catalog. Sales only count completed orders.
func (as *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	users, err := as.userRepo.CountProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %v", err)
	}

	stats := &AdminStats{
		TotalUsers: users,
		TotalSales: decimal.Zero,
	}

	for _, order := range as.catalog.Orders() {
		switch order.Status {
		case models.OrderPending:
			stats.PendingOrders++
		case models.OrderCompleted:
			stats.TotalSales = stats.TotalSales.Add(order.Total)
		}
	}

	stats.TotalTickets = len(as.catalog.Tickets())
	return stats, nil
}
