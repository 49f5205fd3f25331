package postgres

import (
	"context"

	"gorm.io/gorm"

	"phototagger/domain/models"
	"phototagger/domain/repositories"
)

type GalleryRepositoryImpl struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) repositories.GalleryRepository {
	return &GalleryRepositoryImpl{db: db}
}

func (r *GalleryRepositoryImpl) CreateBatch(ctx context.Context, images []*models.GalleryImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(images, 100).Error
}

func (r *GalleryRepositoryImpl) GetByOwner(ctx context.Context, ownerEmail string) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Order("created_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepositoryImpl) DeleteByImageURL(ctx context.Context, ownerEmail, imageURL string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("owner_email = ? AND image_url = ?", ownerEmail, imageURL).
		Delete(&models.GalleryImage{})
	return result.RowsAffected, result.Error
}
