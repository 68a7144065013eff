package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"lendr/internal/domain/entity"
	"lendr/internal/domain/repository"
	"lendr/internal/infrastructure/ratelimit"
	"lendr/pkg/errors"
	"lendr/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	rateLimiter *ratelimit.RateLimiter
}

func NewListingUseCase(listingRepo repository.ListingRepository) *ListingUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ListingUseCase{
		listingRepo: listingRepo,
		rateLimiter: rateLimiter,
	}
}

type CreateListingInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"` // daily rate amount, digits only
	Category    string `json:"category"`
	Image       string `json:"image"`
}

type UpdateListingInput struct {
	Title       string `json:"title"`
	Price       string `json:"price"` // display string
	Image       string `json:"image"`
	BlockedDays []int  `json:"blocked_days"`
}

const (
	SortRelevance = "relevance"
	SortDistance  = "distance"
	SortPrice     = "price"
)

func (uc *ListingUseCase) CreateListing(ctx context.Context, input CreateListingInput) (*entity.Listing, error) {
	if input.Title == "" || input.Price == "" || input.Image == "" {
		return nil, errors.BadRequest("Please add a title, price, and photo", nil)
	}
	if !entity.IsValidCategory(input.Category) {
		return nil, errors.BadRequest("Invalid category", nil)
	}

	allowed, waitTime := uc.rateLimiter.Allow("You", "post_listing")
	if !allowed {
		logger.Warn("Listing post rate limited, wait %v", waitTime)
		return nil, errors.TooManyRequests("Posting limit reached. Please wait before adding another listing", waitTime)
	}

	now := time.Now()
	listing := &entity.Listing{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Price:       fmt.Sprintf("₹%s/day", input.Price),
		Status:      entity.ListingAvailable,
		Category:    input.Category,
		Image:       input.Image,
		Lender:      "You",
		BlockedDays: []int{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

// ListListings returns listings matching the search query and category,
// newest first, paginated.
func (uc *ListingUseCase) ListListings(ctx context.Context, query, category string, limit, offset int) ([]*entity.Listing, int64, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]*entity.Listing, 0, len(listings))
	needle := strings.ToLower(query)
	for _, l := range listings {
		matchCat := category == "" || category == entity.CategoryAll || l.Category == category
		matchSearch := needle == "" || strings.Contains(strings.ToLower(l.Title), needle)
		if matchCat && matchSearch {
			filtered = append(filtered, l)
		}
	}

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []*entity.Listing{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

// MapListings returns all listings ordered for the map view. Relevance
// keeps insertion order; distance and price sort ascending on values
// parsed out of the display strings.
func (uc *ListingUseCase) MapListings(ctx context.Context, sortMode string) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	switch sortMode {
	case "", SortRelevance:
	case SortDistance:
		sort.SliceStable(listings, func(i, j int) bool {
			return parseDistanceMetres(listings[i].Distance) < parseDistanceMetres(listings[j].Distance)
		})
	case SortPrice:
		sort.SliceStable(listings, func(i, j int) bool {
			return parsePriceAmount(listings[i].Price) < parsePriceAmount(listings[j].Price)
		})
	default:
		return nil, errors.BadRequest("Invalid sort mode", nil)
	}
	return listings, nil
}

func (uc *ListingUseCase) UpdateListing(ctx context.Context, id string, input UpdateListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		listing.Title = input.Title
	}
	if input.Price != "" {
		listing.Price = input.Price
	}
	if input.Image != "" {
		listing.Image = input.Image
	}
	listing.BlockedDays = input.BlockedDays
	if listing.BlockedDays == nil {
		listing.BlockedDays = []int{}
	}

	// Blocked dates take the listing off the shelf; clearing them puts
	// it back.
	if len(listing.BlockedDays) > 0 {
		listing.Status = entity.ListingBlocked
	} else {
		listing.Status = entity.ListingAvailable
	}
	listing.UpdatedAt = time.Now()

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, id string) error {
	return uc.listingRepo.Delete(ctx, id)
}

// ToggleListingStatus flips a listing between Available and Rented. It
// backs the pickup/return scan simulation.
func (uc *ListingUseCase) ToggleListingStatus(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.ToggleStatus(ctx, id)
}

// parseDistanceMetres reads display strings like "200m" or "1.2km".
// Unparsable values sort last.
func parseDistanceMetres(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return float64(1<<62)
	}
	isKM := strings.Contains(trimmed, "km")
	numeric := strings.TrimFunc(trimmed, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return float64(1 << 62)
	}
	if isKM {
		return value * 1000
	}
	return value
}

// parsePriceAmount strips everything but digits out of a price display
// string; the "Free" sentinel and unparsable strings are zero.
func parsePriceAmount(s string) int {
	if strings.EqualFold(strings.TrimSpace(s), "Free") {
		return 0
	}
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return value
}
