package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSavedArtistsService() (*SavedArtistsService, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return NewSavedArtistsService(models.RedisNewRepo(db)), mock
}

func TestToggleSavedAddsThenRemoves(t *testing.T) {
	svc, mock := setupSavedArtistsService()
	userId := uuid.New()
	key := fmt.Sprintf("saved_artists:%s", userId)

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, []byte(`["artist-1"]`), 0).SetVal("OK")

	saved, err := svc.ToggleSaved(context.Background(), userId, "artist-1")
	require.NoError(t, err)
	assert.True(t, saved)

	mock.ExpectGet(key).SetVal(`["artist-1"]`)
	mock.ExpectSet(key, []byte(`[]`), 0).SetVal("OK")

	saved, err = svc.ToggleSaved(context.Background(), userId, "artist-1")
	require.NoError(t, err)
	assert.False(t, saved)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleSavedRequiresArtistId(t *testing.T) {
	svc, _ := setupSavedArtistsService()

	_, err := svc.ToggleSaved(context.Background(), uuid.New(), "")
	assert.Error(t, err)

	_, err = svc.ToggleSaved(context.Background(), uuid.Nil, "artist-1")
	assert.Error(t, err)
}

func TestReplaceSavedOverwritesWholeSet(t *testing.T) {
	svc, mock := setupSavedArtistsService()
	userId := uuid.New()
	key := fmt.Sprintf("saved_artists:%s", userId)

	// The previous contents are irrelevant; the stored set is exactly the
	// payload, deduplicated, in payload order.
	mock.ExpectSet(key, []byte(`["artist-2","artist-1"]`), 0).SetVal("OK")

	ids, err := svc.ReplaceSaved(context.Background(), userId, []string{"artist-2", "artist-1", "artist-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"artist-2", "artist-1"}, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceSavedWithEmptyListClears(t *testing.T) {
	svc, mock := setupSavedArtistsService()
	userId := uuid.New()

	mock.ExpectSet(fmt.Sprintf("saved_artists:%s", userId), []byte(`[]`), 0).SetVal("OK")

	ids, err := svc.ReplaceSaved(context.Background(), userId, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceSavedRejectsBlankIds(t *testing.T) {
	svc, _ := setupSavedArtistsService()

	_, err := svc.ReplaceSaved(context.Background(), uuid.New(), []string{"artist-1", "  "})
	assert.Error(t, err)

	_, err = svc.ReplaceSaved(context.Background(), uuid.Nil, []string{"artist-1"})
	assert.Error(t, err)
}

func TestListSavedMalformedStashIsEmpty(t *testing.T) {
	svc, mock := setupSavedArtistsService()
	userId := uuid.New()

	mock.ExpectGet(fmt.Sprintf("saved_artists:%s", userId)).SetVal("garbage")

	ids, err := svc.ListSaved(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIsSaved(t *testing.T) {
	svc, mock := setupSavedArtistsService()
	userId := uuid.New()
	key := fmt.Sprintf("saved_artists:%s", userId)

	mock.ExpectGet(key).SetVal(`["a","b"]`)
	saved, err := svc.IsSaved(context.Background(), userId, "b")
	require.NoError(t, err)
	assert.True(t, saved)

	mock.ExpectGet(key).SetVal(`["a","b"]`)
	saved, err = svc.IsSaved(context.Background(), userId, "z")
	require.NoError(t, err)
	assert.False(t, saved)
}
