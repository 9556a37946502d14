package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSeedAndReset(t *testing.T) {
	c := New()
	c.Seed(
		[]models.Artist{{ID: uuid.New(), Name: "Sara"}},
		[]models.Gig{{ID: uuid.New(), Title: "Henna Night"}},
		[]models.Category{{ID: uuid.New(), Name: "Henna"}},
		nil,
	)

	assert.Len(t, c.Artists(), 1)
	assert.Len(t, c.Gigs(), 1)
	assert.Len(t, c.Categories(), 1)

	c.Reset()

	assert.Empty(t, c.Artists())
	assert.Empty(t, c.Gigs())
	assert.Empty(t, c.Categories())
	assert.Empty(t, c.Orders())
}

func TestCatalogAddGigFillsIdentity(t *testing.T) {
	c := New()

	g := c.AddGig(models.Gig{Title: "Buffet"})

	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.False(t, g.CreatedAt.IsZero())
}

func TestCatalogUpdateGigKeepsPosition(t *testing.T) {
	c := New()
	first := c.AddGig(models.Gig{Title: "First"})
	second := c.AddGig(models.Gig{Title: "Second"})

	title := "Second, renamed"
	_, err := c.UpdateGig(second.ID, models.GigUpdate{Title: &title})
	require.NoError(t, err)

	gigs := c.Gigs()
	require.Len(t, gigs, 2)
	assert.Equal(t, first.ID, gigs[0].ID)
	assert.Equal(t, "Second, renamed", gigs[1].Title)
}

func TestCatalogDeleteGig(t *testing.T) {
	c := New()
	g := c.AddGig(models.Gig{Title: "Short-lived"})

	require.NoError(t, c.DeleteGig(g.ID))
	assert.ErrorIs(t, c.DeleteGig(g.ID), ErrGigNotFound)
	assert.Empty(t, c.Gigs())
}

func TestCatalogSnapshotsAreCopies(t *testing.T) {
	c := New()
	c.AddGig(models.Gig{Title: "Original"})

	snapshot := c.Gigs()
	snapshot[0].Title = "Mutated"

	assert.Equal(t, "Original", c.Gigs()[0].Title)
}

func TestAddTicketKeepsGivenIdentity(t *testing.T) {
	c := New()
	gig := c.AddGig(models.Gig{Title: "Concert"})
	id := uuid.New()

	ticket, err := c.AddTicket(gig.ID, models.Ticket{ID: id, Name: "Entry", Price: decimal.NewFromInt(10), Quantity: 50})
	require.NoError(t, err)

	// A ticket arriving with an id already assigned keeps it, so the
	// catalog mirror matches what was persisted.
	assert.Equal(t, id, ticket.ID)
	assert.Equal(t, gig.ID, ticket.GigID)
}

func TestAddTicketToNamedGig(t *testing.T) {
	c := New()
	c.AddGig(models.Gig{Title: "First"})
	target := c.AddGig(models.Gig{Title: "Second"})

	ticket, err := c.AddTicket(target.ID, models.Ticket{Name: "Entry", Quantity: 20})
	require.NoError(t, err)
	assert.Equal(t, target.ID, ticket.GigID)

	_, err = c.AddTicket(uuid.New(), models.Ticket{Name: "Lost", Quantity: 1})
	assert.ErrorIs(t, err, ErrGigNotFound)
}

func TestAddReviewRecalculatesRating(t *testing.T) {
	c := New()
	g := c.AddGig(models.Gig{Title: "Animation"})

	_, err := c.AddReview(g.ID, models.Review{ID: uuid.New(), Rating: 5})
	require.NoError(t, err)
	updated, err := c.AddReview(g.ID, models.Review{ID: uuid.New(), Rating: 3})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.ReviewCount)
	assert.InDelta(t, 4.0, updated.Rating, 0.001)
}

func TestCategoryLifecycle(t *testing.T) {
	c := New()
	cat := c.AddCategory("Mariage")

	renamed, err := c.UpdateCategory(cat.ID, "Mariage & Fiançailles")
	require.NoError(t, err)
	assert.Equal(t, "Mariage & Fiançailles", renamed.Name)

	require.NoError(t, c.DeleteCategory(cat.ID))
	assert.ErrorIs(t, c.DeleteCategory(cat.ID), ErrCategoryNotFound)
}

func TestOrderStatusTransitions(t *testing.T) {
	c := New()
	o := c.AddOrder(models.Order{Status: models.OrderPending, ClientID: uuid.New()})

	confirmed, err := c.UpdateOrderStatus(o.ID, models.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.OrderConfirmed, confirmed.Status)

	completed, err := c.UpdateOrderStatus(o.ID, models.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, completed.Status)

	// Completed is terminal.
	_, err = c.UpdateOrderStatus(o.ID, models.OrderCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderStatusUnknownOrder(t *testing.T) {
	c := New()

	_, err := c.UpdateOrderStatus(uuid.New(), models.OrderConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrder(t *testing.T) {
	c := New()
	o := c.AddOrder(models.Order{Status: models.OrderPending, ClientID: uuid.New()})

	got, err := c.GetOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, models.OrderPending, got.Status)

	_, err = c.GetOrder(uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderUpdatedAtMoves(t *testing.T) {
	c := New()
	o := c.AddOrder(models.Order{
		Status:    models.OrderPending,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	})

	updated, err := c.UpdateOrderStatus(o.ID, models.OrderCancelled)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(o.UpdatedAt))
}
