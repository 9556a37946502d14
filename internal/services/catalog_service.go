package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
)

// CatalogService manages the catalog session lifecycle and the category
// collection.
type CatalogService struct {
	userRepo   models.UserRepo
	gigsRepo   models.GigsRepo
	ordersRepo models.OrdersRepo
	catalog    *catalog.Catalog
}

func NewCatalogService(userRepo models.UserRepo, gigsRepo models.GigsRepo, ordersRepo models.OrdersRepo, cat *catalog.Catalog) *CatalogService {
	return &CatalogService{
		userRepo:   userRepo,
		gigsRepo:   gigsRepo,
		ordersRepo: ordersRepo,
		catalog:    cat,
	}
}

// Seed loads artists, gigs and orders from the stores and replaces the
// catalog contents. Called once after sign-in. Categories start from the
// built-in marketplace list.
func (cs *CatalogService) Seed(ctx context.Context) error {
	artists, err := cs.userRepo.ListArtists(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed artists: %v", err)
	}

	gigs, err := cs.gigsRepo.ListGigs(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed gigs: %v", err)
	}

	orders, err := cs.ordersRepo.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed orders: %v", err)
	}

	categories := make([]models.Category, 0, len(models.MarketplaceCategories))
	for _, name := range models.MarketplaceCategories {
		categories = append(categories, models.Category{ID: uuid.New(), Name: name})
	}

	cs.catalog.Seed(artists, gigs, categories, orders)
	return nil
}

// Reset clears the catalog. Called on sign-out.
func (cs *CatalogService) Reset() {
	cs.catalog.Reset()
}

func (cs *CatalogService) ListArtists() []models.Artist {
	return cs.catalog.Artists()
}

func (cs *CatalogService) ListCategories() []models.Category {
	return cs.catalog.Categories()
}

func (cs *CatalogService) AddCategory(name string) (*models.Category, error) {
	if err := models.Validate.Var(name, "required,min=2,max=64"); err != nil {
		return nil, fmt.Errorf("invalid category name: %v", err)
	}
	cat := cs.catalog.AddCategory(name)
	return &cat, nil
}

func (cs *CatalogService) UpdateCategory(id uuid.UUID, name string) (*models.Category, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}
	if err := models.Validate.Var(name, "required,min=2,max=64"); err != nil {
		return nil, fmt.Errorf("invalid category name: %v", err)
	}
	cat, err := cs.catalog.UpdateCategory(id, name)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (cs *CatalogService) DeleteCategory(id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("no valid UUID provided")
	}
	return cs.catalog.DeleteCategory(id)
}
