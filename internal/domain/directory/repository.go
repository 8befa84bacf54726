package directory

import (
	"context"

	"github.com/google/uuid"
)

// ListingRepository defines the persistence contract for directory listings.
type ListingRepository interface {
	// FindByID retrieves a listing by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Listing, error)

	// List retrieves listings with pagination, optionally filtered by category
	// (empty category means all).
	List(ctx context.Context, category ListingCategory, page, limit int) ([]*Listing, int64, error)

	// Save persists a new listing.
	Save(ctx context.Context, listing *Listing) error
}
