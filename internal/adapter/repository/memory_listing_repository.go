package repository

import (
	"context"
	"sync"

	"lendr/internal/domain/entity"
	"lendr/internal/domain/repository"
	"lendr/pkg/errors"
)

type memoryListingRepository struct {
	mu       sync.RWMutex
	listings []*entity.Listing
	hub      *watchHub
}

var _ repository.ListingRepository = (*memoryListingRepository)(nil)

// NewMemoryListingRepository builds the in-memory listing store, seeded
// with the given listings in the order provided.
func NewMemoryListingRepository(seed []*entity.Listing) repository.ListingRepository {
	repo := &memoryListingRepository{
		listings: make([]*entity.Listing, 0, len(seed)),
		hub:      newWatchHub(),
	}
	for _, l := range seed {
		repo.listings = append(repo.listings, copyListing(l))
	}
	return repo
}

func (r *memoryListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	for _, existing := range r.listings {
		if existing.ID == listing.ID {
			r.mu.Unlock()
			return errors.Conflict("Listing id already exists")
		}
	}
	// Newest first: the feed reads the store front to back.
	r.listings = append([]*entity.Listing{copyListing(listing)}, r.listings...)
	r.mu.Unlock()

	r.hub.publish(repository.Event{Entity: repository.EntityListing, Op: repository.OpCreated, ID: listing.ID})
	return nil
}

func (r *memoryListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.listings {
		if l.ID == id {
			return copyListing(l), nil
		}
	}
	return nil, errors.NotFound("Listing", nil)
}

func (r *memoryListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Listing, len(r.listings))
	for i, l := range r.listings {
		out[i] = copyListing(l)
	}
	return out, nil
}

func (r *memoryListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	found := false
	for i, l := range r.listings {
		if l.ID == listing.ID {
			r.listings[i] = copyListing(listing)
			found = true
			break
		}
	}
	r.mu.Unlock()

	if !found {
		return errors.NotFound("Listing", nil)
	}
	r.hub.publish(repository.Event{Entity: repository.EntityListing, Op: repository.OpUpdated, ID: listing.ID})
	return nil
}

func (r *memoryListingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	index := -1
	for i, l := range r.listings {
		if l.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		r.mu.Unlock()
		return errors.NotFound("Listing", nil)
	}
	r.listings = append(r.listings[:index], r.listings[index+1:]...)
	r.mu.Unlock()

	r.hub.publish(repository.Event{Entity: repository.EntityListing, Op: repository.OpDeleted, ID: id})
	return nil
}

func (r *memoryListingRepository) ToggleStatus(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.Lock()
	var updated *entity.Listing
	for _, l := range r.listings {
		if l.ID == id {
			switch l.Status {
			case entity.ListingAvailable:
				l.Status = entity.ListingRented
			case entity.ListingRented:
				l.Status = entity.ListingAvailable
			}
			updated = copyListing(l)
			break
		}
	}
	r.mu.Unlock()

	if updated == nil {
		return nil, errors.NotFound("Listing", nil)
	}
	r.hub.publish(repository.Event{Entity: repository.EntityListing, Op: repository.OpUpdated, ID: id})
	return updated, nil
}

func (r *memoryListingRepository) Watch(ctx context.Context) <-chan repository.Event {
	return r.hub.subscribe(ctx)
}

func copyListing(l *entity.Listing) *entity.Listing {
	cp := *l
	cp.BlockedDays = append([]int(nil), l.BlockedDays...)
	return &cp
}
