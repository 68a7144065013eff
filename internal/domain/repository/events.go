package repository

// Event describes one store mutation, delivered to Watch subscribers so
// consumers refresh on push instead of re-reading on focus.
type Event struct {
	Entity string `json:"entity"` // "listing" or "chat"
	Op     string `json:"op"`     // "created", "updated", "deleted", "message"
	ID     string `json:"id"`
}

const (
	EntityListing = "listing"
	EntityChat    = "chat"

	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
	OpMessage = "message"
)
