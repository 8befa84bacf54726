package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bayanlink/service-fares/internal/domain/directory"
)

// ListingModel is the GORM model for the listings table.
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category    string    `gorm:"not null;size:30;index"`
	Name        string    `gorm:"not null;size:200"`
	Description string    `gorm:"size:2000"`
	Address     string    `gorm:"not null;size:500"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	Phone       string    `gorm:"size:30"`
	Hours       string    `gorm:"size:200"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ListingModel) TableName() string {
	return "listings"
}

// GormListingRepository is the GORM-based implementation of ListingRepository.
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GormListingRepository.
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// FindByID retrieves a listing by its unique identifier.
func (r *GormListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Listing, error) {
	var model ListingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, directory.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to find listing by ID: %w", err)
	}
	return toDomainListing(&model), nil
}

// List retrieves listings with pagination, optionally filtered by category.
func (r *GormListingRepository) List(ctx context.Context, category directory.ListingCategory, page, limit int) ([]*directory.Listing, int64, error) {
	query := r.db.WithContext(ctx).Model(&ListingModel{})
	if category != "" {
		query = query.Where("category = ?", category.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	var models []ListingModel
	offset := (page - 1) * limit
	if err := query.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}

	listings := make([]*directory.Listing, len(models))
	for i, m := range models {
		listings[i] = toDomainListing(&m)
	}
	return listings, total, nil
}

// Save persists a new listing.
func (r *GormListingRepository) Save(ctx context.Context, listing *directory.Listing) error {
	model := toListingModel(listing)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}
	return nil
}

// --- Mappers ---

func toDomainListing(m *ListingModel) *directory.Listing {
	return directory.Reconstruct(
		m.ID,
		directory.ListingCategory(m.Category),
		m.Name, m.Description, m.Address,
		m.Latitude, m.Longitude,
		m.Phone, m.Hours,
		m.CreatedAt, m.UpdatedAt,
	)
}

func toListingModel(l *directory.Listing) *ListingModel {
	return &ListingModel{
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
