package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendr/internal/domain/entity"
	"lendr/internal/domain/repository"
	"lendr/pkg/errors"
)

func newListing(title string) *entity.Listing {
	now := time.Now()
	return &entity.Listing{
		ID:        uuid.New().String(),
		Title:     title,
		Price:     "₹50/day",
		Status:    entity.ListingAvailable,
		Category:  "Tech",
		Image:     "https://example.com/item.jpg",
		Lender:    "You",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestListingCreatePrependsNewestFirst(t *testing.T) {
	repo := NewMemoryListingRepository(nil)
	ctx := context.Background()

	a := newListing("Item A")
	b := newListing("Item B")

	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	listings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Item B", listings[0].Title)
	assert.Equal(t, "Item A", listings[1].Title)
}

func TestListingCreateRejectsDuplicateID(t *testing.T) {
	repo := NewMemoryListingRepository(nil)
	ctx := context.Background()

	listing := newListing("Item")
	require.NoError(t, repo.Create(ctx, listing))

	dupe := newListing("Other item")
	dupe.ID = listing.ID
	err := repo.Create(ctx, dupe)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestListingGetByIDMissReturnsNotFound(t *testing.T) {
	repo := NewMemoryListingRepository(nil)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListingDelete(t *testing.T) {
	repo := NewMemoryListingRepository(nil)
	ctx := context.Background()

	listing := newListing("Item")
	require.NoError(t, repo.Create(ctx, listing))
	require.NoError(t, repo.Delete(ctx, listing.ID))

	_, err := repo.GetByID(ctx, listing.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	assert.True(t, errors.Is(repo.Delete(ctx, listing.ID), "NOT_FOUND"))
}

func TestListingToggleStatus(t *testing.T) {
	repo := NewMemoryListingRepository(nil)
	ctx := context.Background()

	listing := newListing("Item")
	require.NoError(t, repo.Create(ctx, listing))

	toggled, err := repo.ToggleStatus(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingRented, toggled.Status)

	toggled, err = repo.ToggleStatus(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingAvailable, toggled.Status)
}

func TestListingToggleStatusLeavesBlockedAlone(t *testing.T) {
	repo := NewMemoryListingRepository(nil)
	ctx := context.Background()

	listing := newListing("Item")
	listing.Status = entity.ListingBlocked
	require.NoError(t, repo.Create(ctx, listing))

	toggled, err := repo.ToggleStatus(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingBlocked, toggled.Status)
}

func TestListingListReturnsCopies(t *testing.T) {
	repo := NewMemoryListingRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newListing("Item")))

	listings, err := repo.List(ctx)
	require.NoError(t, err)
	listings[0].Title = "Mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Item", again[0].Title)
}

func TestListingWatchDeliversChangeEvents(t *testing.T) {
	repo := NewMemoryListingRepository(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := repo.Watch(ctx)

	listing := newListing("Item")
	require.NoError(t, repo.Create(context.Background(), listing))

	select {
	case event := <-events:
		assert.Equal(t, repository.EntityListing, event.Entity)
		assert.Equal(t, repository.OpCreated, event.Op)
		assert.Equal(t, listing.ID, event.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a change event")
	}
}
