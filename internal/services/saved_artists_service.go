package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
)

// SavedArtistsService is the load-modify-store cycle around a user's bookmark
// set. The whole set travels as one value, matching the device-storage
// contract the mobile clients expect.
type SavedArtistsService struct {
	savedRepo models.SavedArtistsRepo
}

func NewSavedArtistsService(savedRepo models.SavedArtistsRepo) *SavedArtistsService {
	return &SavedArtistsService{
		savedRepo: savedRepo,
	}
}

func (ss *SavedArtistsService) ListSaved(ctx context.Context, userId uuid.UUID) ([]string, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}
	set, err := ss.savedRepo.LoadSavedArtists(ctx, userId)
	if err != nil {
		return nil, err
	}
	return set.IDs(), nil
}

// ToggleSaved flips an artist in the user's set and reports whether the
// artist is now saved.
func (ss *SavedArtistsService) ToggleSaved(ctx context.Context, userId uuid.UUID, artistId string) (bool, error) {
	if userId == uuid.Nil {
		return false, fmt.Errorf("no valid UUID provided")
	}
	if artistId == "" {
		return false, fmt.Errorf("artist id is required")
	}

	set, err := ss.savedRepo.LoadSavedArtists(ctx, userId)
	if err != nil {
		return false, err
	}

	saved := set.Toggle(artistId)
	if err := ss.savedRepo.StoreSavedArtists(ctx, userId, set); err != nil {
		return false, err
	}
	return saved, nil
}

// ReplaceSaved overwrites the whole bookmark set with the given ids, the PUT
// counterpart of ToggleSaved. Duplicates collapse and the payload's order is
// kept, so the stored set round-trips exactly.
func (ss *SavedArtistsService) ReplaceSaved(ctx context.Context, userId uuid.UUID, artistIds []string) ([]string, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("no valid UUID provided")
	}

	trimmed := make([]string, 0, len(artistIds))
	for _, id := range artistIds {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("artist id is required")
		}
		trimmed = append(trimmed, id)
	}

	set := models.NewSavedArtists(trimmed...)
	if err := ss.savedRepo.StoreSavedArtists(ctx, userId, set); err != nil {
		return nil, err
	}
	return set.IDs(), nil
}

func (ss *SavedArtistsService) IsSaved(ctx context.Context, userId uuid.UUID, artistId string) (bool, error) {
	if userId == uuid.Nil {
		return false, fmt.Errorf("no valid UUID provided")
	}
	set, err := ss.savedRepo.LoadSavedArtists(ctx, userId)
	if err != nil {
		return false, err
	}
	return set.Has(artistId), nil
}
