package models

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSavedArtistsRepo() (*RedisRepo, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return RedisNewRepo(db), mock
}

func TestLoadSavedArtistsMissingKeyIsEmptySet(t *testing.T) {
	repo, mock := setupSavedArtistsRepo()
	userId := uuid.New()

	mock.ExpectGet(fmt.Sprintf("saved_artists:%s", userId)).RedisNil()

	set, err := repo.LoadSavedArtists(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSavedArtistsDecodesStoredSet(t *testing.T) {
	repo, mock := setupSavedArtistsRepo()
	userId := uuid.New()

	mock.ExpectGet(fmt.Sprintf("saved_artists:%s", userId)).SetVal(`["a","b"]`)

	set, err := repo.LoadSavedArtists(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, set.IDs())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSavedArtistsMalformedPayloadIsEmptySet(t *testing.T) {
	repo, mock := setupSavedArtistsRepo()
	userId := uuid.New()

	mock.ExpectGet(fmt.Sprintf("saved_artists:%s", userId)).SetVal("corrupt{{")

	set, err := repo.LoadSavedArtists(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestStoreSavedArtistsWritesFixedKey(t *testing.T) {
	repo, mock := setupSavedArtistsRepo()
	userId := uuid.New()
	set := NewSavedArtists("a", "b")

	mock.ExpectSet(fmt.Sprintf("saved_artists:%s", userId), []byte(`["a","b"]`), 0).SetVal("OK")

	err := repo.StoreSavedArtists(context.Background(), userId, set)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreThenLoadRoundTrip(t *testing.T) {
	repo, mock := setupSavedArtistsRepo()
	userId := uuid.New()
	key := fmt.Sprintf("saved_artists:%s", userId)
	set := NewSavedArtists("x")

	mock.ExpectSet(key, []byte(`["x"]`), 0).SetVal("OK")
	mock.ExpectGet(key).SetVal(`["x"]`)

	require.NoError(t, repo.StoreSavedArtists(context.Background(), userId, set))

	loaded, err := repo.LoadSavedArtists(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, loaded.IDs())
}
