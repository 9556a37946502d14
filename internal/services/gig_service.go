package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/connect"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/helpers"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
)

// GigService owns the gig lifecycle. Writes go to the document store first,
// then mirror into the in-memory catalog so reads stay session-local.
type GigService struct {
	gigsRepo models.GigsRepo
	catalog  *catalog.Catalog
}

func NewGigService(gigsRepo models.GigsRepo, cat *catalog.Catalog) *GigService {
	return &GigService{
		gigsRepo: gigsRepo,
		catalog:  cat,
	}
}

func (gs *GigService) CreateGig(ctx context.Context, gig *models.Gig, artistId uuid.UUID) (*models.Gig, error) {
	gig.ArtistID = artistId
	if err := gig.ValidateGig(); err != nil {
		return nil, err
	}

	if gig.ID == uuid.Nil {
		gig.ID = uuid.New()
	}
	now := time.Now()
	gig.CreatedAt = now
	gig.UpdatedAt = now

	if len(gig.Images) > 0 {
		uploadChan := make(chan []string, 1)
		errorChan := make(chan error, 1)

		go func() {
			urls, uploadErr := helpers.UploadImages(ctx, connect.Cld, gig.Images, helpers.GigFolder)
			if uploadErr != nil {
				errorChan <- uploadErr
				return
			}
			uploadChan <- urls
		}()

		select {
		case urls := <-uploadChan:
			gig.Images = urls
		case uploadErr := <-errorChan:
			return nil, fmt.Errorf("failed to upload images: %v", uploadErr)
		case <-time.After(30 * time.Second):
			return nil, fmt.Errorf("image upload timeout")
		}
	}

	if err := gs.gigsRepo.InsertGig(ctx, gig); err != nil {
		return nil, err
	}

	stored := gs.catalog.AddGig(*gig)
	return &stored, nil
}

func (gs *GigService) UpdateGig(ctx context.Context, id uuid.UUID, update models.GigUpdate, artistId uuid.UUID) (*models.Gig, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}

	existing, err := gs.catalog.GetGig(id)
	if err != nil {
		return nil, err
	}
	if existing.ArtistID != artistId {
		return nil, fmt.Errorf("gig does not belong to this artist")
	}

	if update.Category != nil && !models.IsValidCategory(*update.Category) {
		return nil, fmt.Errorf("unknown category: %s", *update.Category)
	}

	if err := gs.gigsRepo.UpdateGig(ctx, id, update); err != nil {
		return nil, err
	}

	updated, err := gs.catalog.UpdateGig(id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (gs *GigService) DeleteGig(ctx context.Context, id uuid.UUID, artistId uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("no valid UUID provided")
	}

	existing, err := gs.catalog.GetGig(id)
	if err != nil {
		return err
	}
	if existing.ArtistID != artistId {
		return fmt.Errorf("gig does not belong to this artist")
	}

	if err := gs.gigsRepo.DeleteGig(ctx, id); err != nil {
		return err
	}
	return gs.catalog.DeleteGig(id)
}

func (gs *GigService) GetGig(id uuid.UUID) (*models.Gig, error) {
	gig, err := gs.catalog.GetGig(id)
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

func (gs *GigService) ListGigs() []models.Gig {
	return gs.catalog.Gigs()
}

func (gs *GigService) ListGigsByArtist(ctx context.Context, artistId uuid.UUID) ([]models.Gig, error) {
	if artistId == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}
	return gs.gigsRepo.ListGigsByArtist(ctx, artistId)
}

func (gs *GigService) AddReview(ctx context.Context, gigId uuid.UUID, review models.Review) (*models.Gig, error) {
	if err := models.Validate.Struct(&review); err != nil {
		return nil, fmt.Errorf("invalid review data provided: %v", err)
	}

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()

	gig, err := gs.catalog.GetGig(gigId)
	if err != nil {
		return nil, err
	}

	// The rating the review will produce, computed from a snapshot so the
	// store is written before the catalog moves.
	sum := review.Rating
	for _, r := range gig.Reviews {
		sum += r.Rating
	}
	count := len(gig.Reviews) + 1
	rating := float64(sum) / float64(count)

	if err := gs.gigsRepo.AddReview(ctx, gigId, review, rating, count); err != nil {
		return nil, err
	}

	updated, err := gs.catalog.AddReview(gigId, review)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Quote builds a price quote for a gig with the caller's quantity and add-on
// selections already applied.
func (gs *GigService) Quote(gigId uuid.UUID, quantity int, selectedAddOnIds []string, addOnCounts map[string]int) (*catalog.Quote, error) {
	gig, err := gs.catalog.GetGig(gigId)
	if err != nil {
		return nil, err
	}

	quote := catalog.NewQuote(gig)
	quote.SetQuantity(quantity)

	selected := make(map[string]bool, len(selectedAddOnIds))
	for _, id := range selectedAddOnIds {
		selected[id] = true
	}
	for i := range quote.AddOns {
		sel := &quote.AddOns[i]
		switch sel.AddOn.Kind {
		case models.AddOnFlag:
			sel.Selected = selected[sel.AddOn.ID]
		case models.AddOnCounted:
			if n, ok := addOnCounts[sel.AddOn.ID]; ok && n > 0 {
				sel.Count = n
			}
		}
	}
	return &quote, nil
}
