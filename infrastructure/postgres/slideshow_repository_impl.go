package postgres

import (
	"context"

	"gorm.io/gorm"

	"phototagger/domain/models"
	"phototagger/domain/repositories"
)

type SlideshowRepositoryImpl struct {
	db *gorm.DB
}

func NewSlideshowRepository(db *gorm.DB) repositories.SlideshowRepository {
	return &SlideshowRepositoryImpl{db: db}
}

func (r *SlideshowRepositoryImpl) Create(ctx context.Context, slideshow *models.Slideshow) error {
	return r.db.WithContext(ctx).Create(slideshow).Error
}

func (r *SlideshowRepositoryImpl) GetBySlideshowID(ctx context.Context, slideshowID string) (*models.Slideshow, error) {
	var slideshow models.Slideshow
	err := r.db.WithContext(ctx).Where("slideshow_id = ?", slideshowID).First(&slideshow).Error
	if err != nil {
		return nil, err
	}
	return &slideshow, nil
}

func (r *SlideshowRepositoryImpl) GetByOwner(ctx context.Context, ownerEmail string) ([]models.Slideshow, error) {
	var slideshows []models.Slideshow
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("created_at DESC").
		Find(&slideshows).Error
	if err != nil {
		return nil, err
	}
	return slideshows, nil
}

func (r *SlideshowRepositoryImpl) DeleteBySlideshowID(ctx context.Context, slideshowID, ownerEmail string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("slideshow_id = ? AND owner_email = ?", slideshowID, ownerEmail).
		Delete(&models.Slideshow{})
	return result.RowsAffected, result.Error
}
