package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bayanlink/service-fares/internal/domain/directory"
)

// CreateListingRequest is the request DTO for adding a directory entry.
type CreateListingRequest struct {
	Category    string  `json:"category" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Phone       string  `json:"phone"`
	Hours       string  `json:"hours"`
}

// ListingDTO is the API response representation of a directory entry.
type ListingDTO struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Phone       string    `json:"phone,omitempty"`
	Hours       string    `json:"hours,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DirectoryService implements use cases for the municipal directory.
type DirectoryService struct {
	repo   directory.ListingRepository
	logger *zap.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(repo directory.ListingRepository, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, logger: logger}
}

// CreateListing adds a new entry to the directory.
func (s *DirectoryService) CreateListing(ctx context.Context, req CreateListingRequest) (*ListingDTO, error) {
	listing, err := directory.NewListing(
		directory.ListingCategory(req.Category),
		req.Name, req.Description, req.Address,
		req.Latitude, req.Longitude,
		req.Phone, req.Hours,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid listing data: %w", err)
	}

	if err := s.repo.Save(ctx, listing); err != nil {
		s.logger.Error("failed to create listing", zap.Error(err))
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	s.logger.Info("listing created",
		zap.String("listing_id", listing.ID().String()),
		zap.String("category", listing.Category().String()),
	)

	result := toListingDTO(listing)
	return &result, nil
}

// GetListing retrieves a single directory entry by ID.
func (s *DirectoryService) GetListing(ctx context.Context, id uuid.UUID) (*ListingDTO, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toListingDTO(listing)
	return &result, nil
}

// ListListings retrieves paginated directory entries, optionally filtered by
// category (empty string means all categories).
func (s *DirectoryService) ListListings(ctx context.Context, category string, page, limit int) ([]ListingDTO, int64, error) {
	cat := directory.ListingCategory(category)
	if category != "" && !cat.IsValid() {
		return nil, 0, fmt.Errorf("invalid listing category: %s", category)
	}

	listings, total, err := s.repo.List(ctx, cat, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}

	dtos := make([]ListingDTO, len(listings))
	for i, l := range listings {
		dtos[i] = toListingDTO(l)
	}
	return dtos, total, nil
}

func toListingDTO(l *directory.Listing) ListingDTO {
	return ListingDTO{
		ID:          l.ID(),
		Category:    l.Category().String(),
		Name:        l.Name(),
		Description: l.Description(),
		Address:     l.Address(),
		Latitude:    l.Latitude(),
		Longitude:   l.Longitude(),
		Phone:       l.Phone(),
		Hours:       l.Hours(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
}
