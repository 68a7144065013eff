package repository

import (
	"context"

	"lendr/internal/domain/entity"
)

type ListingRepository interface {
	// Create prepends the listing so the newest item is read first.
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	// List returns a snapshot of all listings in store order.
	List(ctx context.Context) ([]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
	// ToggleStatus flips Available to Rented and back, returning the
	// updated listing. Blocked listings are left untouched.
	ToggleStatus(ctx context.Context, id string) (*entity.Listing, error)
	Watch(ctx context.Context) <-chan Event
}
