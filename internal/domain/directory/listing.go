package directory

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing does not exist.
var ErrListingNotFound = errors.New("listing not found")

// ListingCategory groups directory entries by what they offer.
type ListingCategory string

const (
	CategoryBusiness ListingCategory = "business"
	CategoryEatery   ListingCategory = "eatery"
	CategoryTourism  ListingCategory = "tourism"
	CategoryService  ListingCategory = "service"
)

// IsValid returns true if the listing category is recognized.
func (c ListingCategory) IsValid() bool {
	switch c {
	case CategoryBusiness, CategoryEatery, CategoryTourism, CategoryService:
		return true
	}
	return false
}

// String returns the string representation of the category.
func (c ListingCategory) String() string {
	return string(c)
}

// Listing is the aggregate root for one municipal directory entry: a local
// business, eatery, tourist spot, or public service office.
type Listing struct {
	id          uuid.UUID
	category    ListingCategory
	name        string
	description string
	address     string
	latitude    float64
	longitude   float64
	phone       string
	hours       string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewListing creates a new Listing with validated fields.
func NewListing(
	category ListingCategory,
	name, description, address string,
	latitude, longitude float64,
	phone, hours string,
) (*Listing, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid listing category: %s", category)
	}
	if name == "" {
		return nil, fmt.Errorf("listing name is required")
	}
	if address == "" {
		return nil, fmt.Errorf("listing address is required")
	}

	now := time.Now().UTC()
	return &Listing{
		id:          uuid.New(),
		category:    category,
		name:        name,
		description: description,
		address:     address,
		latitude:    latitude,
		longitude:   longitude,
		phone:       phone,
		hours:       hours,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a Listing from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	category ListingCategory,
	name, description, address string,
	latitude, longitude float64,
	phone, hours string,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:          id,
		category:    category,
		name:        name,
		description: description,
		address:     address,
		latitude:    latitude,
		longitude:   longitude,
		phone:       phone,
		hours:       hours,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// --- Getters ---

func (l *Listing) ID() uuid.UUID             { return l.id }
func (l *Listing) Category() ListingCategory { return l.category }
func (l *Listing) Name() string              { return l.name }
func (l *Listing) Description() string       { return l.description }
func (l *Listing) Address() string           { return l.address }
func (l *Listing) Latitude() float64         { return l.latitude }
func (l *Listing) Longitude() float64        { return l.longitude }
func (l *Listing) Phone() string             { return l.phone }
func (l *Listing) Hours() string             { return l.hours }
func (l *Listing) CreatedAt() time.Time      { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time      { return l.updatedAt }
