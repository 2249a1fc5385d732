package repository

import (
	"github.com/jteo/listify-backend/internal/app/model"
	"github.com/jteo/listify-backend/pkg/logger"
	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(listing *model.Listing) error
	FindByID(id uint) (*model.Listing, error)
	FindByExternalID(externalID string) (*model.Listing, error)
	FindAll() ([]model.Listing, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *model.Listing) error {
	logger.Debug("Creating listing in database", map[string]interface{}{
		"external_id": listing.ExternalID,
		"name":        listing.Name,
	})

	if err := r.db.Create(listing).Error; err != nil {
		logger.Error("Failed to create listing in database", err, map[string]interface{}{
			"external_id": listing.ExternalID,
			"name":        listing.Name,
		})
		return err
	}

	logger.Debug("Listing created in database", map[string]interface{}{
		"listing_id":  listing.ID,
		"external_id": listing.ExternalID,
	})
	return nil
}

func (r *listingRepository) FindByID(id uint) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.First(&listing, id).Error; err != nil {
		logger.Error("Failed to find listing by ID in database", err, map[string]interface{}{
			"listing_id": id,
		})
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindByExternalID(externalID string) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.Where("external_id = ?", externalID).First(&listing).Error; err != nil {
		logger.Error("Failed to find listing by external ID in database", err, map[string]interface{}{
			"external_id": externalID,
		})
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindAll() ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.Order("submitted_at DESC").Find(&listings).Error; err != nil {
		logger.Error("Failed to list listings from database", err, nil)
		return nil, err
	}
	return listings, nil
}
