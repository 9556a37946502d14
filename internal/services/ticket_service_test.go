package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGigsRepo struct {
	mock.Mock
}

func (m *MockGigsRepo) InsertGig(ctx context.Context, gig *models.Gig) error {
	args := m.Called(ctx, gig)
	return args.Error(0)
}

func (m *MockGigsRepo) UpdateGig(ctx context.Context, id uuid.UUID, update models.GigUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockGigsRepo) DeleteGig(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGigsRepo) ListGigs(ctx context.Context) ([]models.Gig, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Gig), args.Error(1)
}

func (m *MockGigsRepo) ListGigsByArtist(ctx context.Context, artistId uuid.UUID) ([]models.Gig, error) {
	args := m.Called(ctx, artistId)
	return args.Get(0).([]models.Gig), args.Error(1)
}

func (m *MockGigsRepo) AddTicket(ctx context.Context, gigId uuid.UUID, ticket models.Ticket) error {
	args := m.Called(ctx, gigId, ticket)
	return args.Error(0)
}

func (m *MockGigsRepo) AddReview(ctx context.Context, gigId uuid.UUID, review models.Review, rating float64, reviewCount int) error {
	args := m.Called(ctx, gigId, review, rating, reviewCount)
	return args.Error(0)
}

func validTicket() models.Ticket {
	return models.Ticket{
		Name:      "Entry",
		Price:     decimal.NewFromInt(10),
		Quantity:  50,
		EventDate: time.Now().Add(48 * time.Hour),
		Location:  "Casablanca",
		Contact:   "0600000000",
	}
}

func TestPublishTicketSynthesizesPlaceholderGig(t *testing.T) {
	repo := &MockGigsRepo{}
	cat := catalog.New()
	svc := NewTicketService(repo, cat)
	artistId := uuid.New()

	repo.On("InsertGig", mock.Anything, mock.AnythingOfType("*models.Gig")).Return(nil).Once()

	gig, ticket, err := svc.PublishTicket(context.Background(), validTicket(), artistId)
	require.NoError(t, err)

	assert.Equal(t, "General", gig.Title)
	assert.Equal(t, "General tickets", gig.Description)
	assert.Equal(t, artistId, gig.ArtistID)
	assert.Equal(t, gig.ID, ticket.GigID)
	require.Len(t, cat.Gigs(), 1)
	repo.AssertExpectations(t)
}

func TestPublishTicketReusesExistingGig(t *testing.T) {
	repo := &MockGigsRepo{}
	cat := catalog.New()
	existing := cat.AddGig(models.Gig{Title: "Concert"})
	svc := NewTicketService(repo, cat)

	repo.On("AddTicket", mock.Anything, existing.ID, mock.AnythingOfType("models.Ticket")).Return(nil).Once()

	gig, _, err := svc.PublishTicket(context.Background(), validTicket(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, existing.ID, gig.ID)
	require.Len(t, cat.Gigs(), 1)
	repo.AssertExpectations(t)
}

func TestPublishTicketConsecutiveCallsShareThePlaceholder(t *testing.T) {
	repo := &MockGigsRepo{}
	cat := catalog.New()
	svc := NewTicketService(repo, cat)

	repo.On("InsertGig", mock.Anything, mock.AnythingOfType("*models.Gig")).Return(nil).Once()
	repo.On("AddTicket", mock.Anything, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("models.Ticket")).Return(nil).Once()

	first, _, err := svc.PublishTicket(context.Background(), validTicket(), uuid.New())
	require.NoError(t, err)
	second, _, err := svc.PublishTicket(context.Background(), validTicket(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.Len(t, cat.Gigs(), 1)
	assert.Len(t, cat.Tickets(), 2)
	repo.AssertExpectations(t)
}

func TestPublishTicketPlaceholderBelongsToArtistInCatalog(t *testing.T) {
	repo := &MockGigsRepo{}
	cat := catalog.New()
	svc := NewTicketService(repo, cat)
	artistId := uuid.New()

	repo.On("InsertGig", mock.Anything, mock.AnythingOfType("*models.Gig")).Return(nil).Once()
	repo.On("DeleteGig", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil).Once()

	_, _, err := svc.PublishTicket(context.Background(), validTicket(), artistId)
	require.NoError(t, err)

	// The catalog entry carries the artist too, so ownership checks on the
	// freshly published gig pass for its publisher.
	gigs := cat.Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, artistId, gigs[0].ArtistID)

	gigService := NewGigService(repo, cat)
	assert.NoError(t, gigService.DeleteGig(context.Background(), gigs[0].ID, artistId),
		"publisher should own the placeholder gig")
	repo.AssertExpectations(t)
}

func TestPublishTicketStoreFailureLeavesCatalogEmpty(t *testing.T) {
	repo := &MockGigsRepo{}
	cat := catalog.New()
	svc := NewTicketService(repo, cat)

	repo.On("InsertGig", mock.Anything, mock.AnythingOfType("*models.Gig")).
		Return(fmt.Errorf("write failed")).Once()

	_, _, err := svc.PublishTicket(context.Background(), validTicket(), uuid.New())
	require.Error(t, err)

	assert.Empty(t, cat.Gigs())
	assert.Empty(t, cat.Tickets())
}

func TestAddTicketStoreFailureLeavesCatalogUntouched(t *testing.T) {
	repo := &MockGigsRepo{}
	cat := catalog.New()
	gig := cat.AddGig(models.Gig{Title: "Concert"})
	svc := NewTicketService(repo, cat)

	repo.On("AddTicket", mock.Anything, gig.ID, mock.AnythingOfType("models.Ticket")).
		Return(fmt.Errorf("write failed")).Once()

	_, err := svc.AddTicket(context.Background(), gig.ID, validTicket())
	require.Error(t, err)

	assert.Empty(t, cat.Tickets())
}

func TestAddTicketUnknownGig(t *testing.T) {
	repo := &MockGigsRepo{}
	svc := NewTicketService(repo, catalog.New())

	_, err := svc.AddTicket(context.Background(), uuid.New(), validTicket())
	assert.ErrorIs(t, err, catalog.ErrGigNotFound)
}

func TestAddTicketRejectsInvalid(t *testing.T) {
	repo := &MockGigsRepo{}
	svc := NewTicketService(repo, catalog.New())

	bad := validTicket()
	bad.Quantity = 0

	_, err := svc.AddTicket(context.Background(), uuid.New(), bad)
	assert.Error(t, err)
}
