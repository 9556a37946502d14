package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
)

// TicketService owns the ticket lifecycle. Like GigService, writes go to the
// document store first and mirror into the catalog only after the write
// succeeds, so a store failure never leaves the session ahead of the store.
type TicketService struct {
	gigsRepo models.GigsRepo
	catalog  *catalog.Catalog
}

func NewTicketService(gigsRepo models.GigsRepo, cat *catalog.Catalog) *TicketService {
	return &TicketService{
		gigsRepo: gigsRepo,
		catalog:  cat,
	}
}

// AddTicket attaches a ticket to a specific gig.
func (ts *TicketService) AddTicket(ctx context.Context, gigId uuid.UUID, ticket models.Ticket) (*models.Ticket, error) {
	if gigId == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}
	if err := models.Validate.Struct(&ticket); err != nil {
		return nil, fmt.Errorf("invalid ticket data provided: %v", err)
	}
	if err := ticket.ValidateTicket(); err != nil {
		return nil, err
	}
	if _, err := ts.catalog.GetGig(gigId); err != nil {
		return nil, err
	}

	ticket = fillTicketIdentity(ticket, gigId)
	if err := ts.gigsRepo.AddTicket(ctx, gigId, ticket); err != nil {
		return nil, err
	}

	stored, err := ts.catalog.AddTicket(gigId, ticket)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// PublishTicket attaches a ticket without a target gig, the publish-from-the-
// ticket-form flow. The first publish into an empty catalog synthesizes a
// placeholder gig owned by the publishing artist and persists it with the
// ticket inside; afterwards tickets land on the first gig.
func (ts *TicketService) PublishTicket(ctx context.Context, ticket models.Ticket, artistId uuid.UUID) (*models.Gig, *models.Ticket, error) {
	if err := models.Validate.Struct(&ticket); err != nil {
		return nil, nil, fmt.Errorf("invalid ticket data provided: %v", err)
	}
	if err := ticket.ValidateTicket(); err != nil {
		return nil, nil, err
	}

	if gigs := ts.catalog.Gigs(); len(gigs) > 0 {
		ticket = fillTicketIdentity(ticket, gigs[0].ID)
		if err := ts.gigsRepo.AddTicket(ctx, gigs[0].ID, ticket); err != nil {
			return nil, nil, err
		}
		stored, err := ts.catalog.AddTicket(gigs[0].ID, ticket)
		if err != nil {
			return nil, nil, err
		}
		gig, err := ts.catalog.GetGig(gigs[0].ID)
		if err != nil {
			return nil, nil, err
		}
		return &gig, &stored, nil
	}

	now := time.Now()
	gig := models.Gig{
		ID:          uuid.New(),
		ArtistID:    artistId,
		Title:       "General",
		Description: "General tickets",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	stored := fillTicketIdentity(ticket, gig.ID)
	gig.Tickets = []models.Ticket{stored}

	if err := ts.gigsRepo.InsertGig(ctx, &gig); err != nil {
		return nil, nil, err
	}

	mirrored := ts.catalog.AddGig(gig)
	return &mirrored, &stored, nil
}

func fillTicketIdentity(t models.Ticket, gigId uuid.UUID) models.Ticket {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.GigID = gigId
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return t
}

// ListTickets returns every ticket across gigs in catalog order.
func (ts *TicketService) ListTickets() []models.Ticket {
	return ts.catalog.Tickets()
}
