package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// savedArtistsKey is the single fixed key each user's bookmark set lives
// under, mirroring the device-storage contract.
func savedArtistsKey(userId uuid.UUID) string {
	return fmt.Sprintf("saved_artists:%s", userId)
}

type SavedArtistsRepo interface {
	LoadSavedArtists(ctx context.Context, userId uuid.UUID) (*SavedArtists, error)
	StoreSavedArtists(ctx context.Context, userId uuid.UUID, set *SavedArtists) error
}

func (r *RedisRepo) LoadSavedArtists(ctx context.Context, userId uuid.UUID) (*SavedArtists, error) {
	data, err := r.redisClient.Get(ctx, savedArtistsKey(userId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Absence is an empty set, not an error.
			return NewSavedArtists(), nil
		}
		return nil, fmt.Errorf("error loading saved artists: %v", err)
	}
	return DecodeSavedArtists(data), nil
}

func (r *RedisRepo) StoreSavedArtists(ctx context.Context, userId uuid.UUID, set *SavedArtists) error {
	if err := r.redisClient.Set(ctx, savedArtistsKey(userId), EncodeSavedArtists(set), 0).Err(); err != nil {
		return fmt.Errorf("error storing saved artists: %v", err)
	}
	return nil
}
