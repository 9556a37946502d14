// Package catalog is the in-memory session state behind the marketplace
// screens: artists, gigs with their tickets, categories and orders, plus the
// pure search/filter and pricing logic that operates on snapshots of it.
//
// The catalog is seeded from the document store when a session starts and
// reset when it ends. Durability is not its problem; callers persist through
// the repositories and mirror the result here.
package catalog

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
)

// Catalog holds ordered collections. Adds append, updates replace in place by
// id, deletes remove by id, so the relative order observed by screens only
// changes when entries come and go.
type Catalog struct {
	mu         sync.RWMutex
	artists    []models.Artist
	gigs       []models.Gig
	categories []models.Category
	orders     []models.Order
}

func New() *Catalog {
	return &Catalog{}
}

// Seed replaces the catalog contents wholesale. Called once per session,
// right after sign-in.
func (c *Catalog) Seed(artists []models.Artist, gigs []models.Gig, categories []models.Category, orders []models.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.artists = append([]models.Artist(nil), artists...)
	c.gigs = append([]models.Gig(nil), gigs...)
	c.categories = append([]models.Category(nil), categories...)
	c.orders = append([]models.Order(nil), orders...)
}

// Reset clears all collections. Called on sign-out.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.artists = nil
	c.gigs = nil
	c.categories = nil
	c.orders = nil
}

// Artists returns a snapshot copy in insertion order.
func (c *Catalog) Artists() []models.Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Artist(nil), c.artists...)
}

func (c *Catalog) Gigs() []models.Gig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Gig(nil), c.gigs...)
}

func (c *Catalog) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Category(nil), c.categories...)
}

func (c *Catalog) Orders() []models.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Order(nil), c.orders...)
}

// Tickets flattens every gig's tickets, gig order first, ticket order within.
func (c *Catalog) Tickets() []models.Ticket {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var tickets []models.Ticket
	for i := range c.gigs {
		tickets = append(tickets, c.gigs[i].Tickets...)
	}
	return tickets
}

// GetGig returns a copy of the gig with the given id.
func (c *Catalog) GetGig(id uuid.UUID) (models.Gig, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.gigs {
		if c.gigs[i].ID == id {
			return c.gigs[i], nil
		}
	}
	return models.Gig{}, ErrGigNotFound
}

// AddGig appends. A missing id and creation time are filled in.
func (c *Catalog) AddGig(g models.Gig) models.Gig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addGigLocked(g)
}

func (c *Catalog) addGigLocked(g models.Gig) models.Gig {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}
	c.gigs = append(c.gigs, g)
	return g
}

// UpdateGig merges the set fields of the update into the matching entry,
// leaving its position and unspecified fields unchanged.
func (c *Catalog) UpdateGig(id uuid.UUID, update models.GigUpdate) (models.Gig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.gigs {
		if c.gigs[i].ID == id {
			update.ApplyTo(&c.gigs[i])
			return c.gigs[i], nil
		}
	}
	return models.Gig{}, ErrGigNotFound
}

func (c *Catalog) DeleteGig(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.gigs {
		if c.gigs[i].ID == id {
			c.gigs = append(c.gigs[:i], c.gigs[i+1:]...)
			return nil
		}
	}
	return ErrGigNotFound
}

func (c *Catalog) AddCategory(name string) models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	cat := models.Category{ID: uuid.New(), Name: name}
	c.categories = append(c.categories, cat)
	return cat
}

func (c *Catalog) UpdateCategory(id uuid.UUID, name string) (models.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.categories {
		if c.categories[i].ID == id {
			c.categories[i].Name = name
			return c.categories[i], nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (c *Catalog) DeleteCategory(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.categories {
		if c.categories[i].ID == id {
			c.categories = append(c.categories[:i], c.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

// AddTicket attaches a ticket to the gig with the given id.
func (c *Catalog) AddTicket(gigId uuid.UUID, t models.Ticket) (models.Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.gigs {
		if c.gigs[i].ID == gigId {
			t = fillTicket(t, gigId)
			c.gigs[i].Tickets = append(c.gigs[i].Tickets, t)
			return t, nil
		}
	}
	return models.Ticket{}, ErrGigNotFound
}

func fillTicket(t models.Ticket, gigId uuid.UUID) models.Ticket {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.GigID = gigId
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return t
}

// AddReview appends a review to a gig and recomputes its cached rating.
func (c *Catalog) AddReview(gigId uuid.UUID, r models.Review) (models.Gig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.gigs {
		if c.gigs[i].ID == gigId {
			c.gigs[i].Reviews = append(c.gigs[i].Reviews, r)
			c.gigs[i].RecalculateRating()
			return c.gigs[i], nil
		}
	}
	return models.Gig{}, ErrGigNotFound
}

// GetOrder returns a copy of the order with the given id.
func (c *Catalog) GetOrder(id uuid.UUID) (models.Order, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.orders {
		if c.orders[i].ID == id {
			return c.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (c *Catalog) AddOrder(o models.Order) models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}
	c.orders = append(c.orders, o)
	return o
}

// UpdateOrderStatus moves an order along the status graph.
func (c *Catalog) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].ID == id {
			if !c.orders[i].Status.CanTransition(status) {
				return models.Order{}, ErrInvalidTransition
			}
			c.orders[i].Status = status
			c.orders[i].UpdatedAt = time.Now()
			return c.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}
