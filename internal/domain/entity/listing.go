package entity

import (
	"time"
)

const (
	ListingAvailable = "Available"
	ListingRented    = "Rented"
	ListingBlocked   = "Blocked"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// Categories a listing can be posted under.
var Categories = []string{"Tech", "Books", "Sports", "Lab", "Gaming", "Tools", "Music", "Fashion"}

type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"` // display string, e.g. "₹50/day" or "Free"
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Lender      string    `json:"lender"` // literal "You" for self-posted items
	BlockedDays []int     `json:"blocked_days"` // day numbers within a fixed 28-day window
	Distance    string    `json:"distance,omitempty"` // display string, e.g. "200m" or "1.2km"
	Rating      float64   `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsValidCategory reports whether cat is one of the known posting categories.
func IsValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
