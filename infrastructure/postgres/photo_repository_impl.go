package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phototagger/domain/models"
	"phototagger/domain/repositories"
)

type PhotoRepositoryImpl struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) repositories.PhotoRepository {
	return &PhotoRepositoryImpl{db: db}
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *models.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PhotoRepositoryImpl) GetByGooglePhotoID(ctx context.Context, googlePhotoID string) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).Where("google_photo_id = ?", googlePhotoID).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) GetByGooglePhotoIDAndOwner(ctx context.Context, googlePhotoID, ownerEmail string) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).
		Where("google_photo_id = ? AND owner_email = ?", googlePhotoID, ownerEmail).
		First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error {
	return r.db.WithContext(ctx).Model(&models.Photo{}).
		Where("id = ?", id).
		Update("custom_tags", models.StringSlice(tags)).Error
}

func (r *PhotoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Photo{}).Error
}

func (r *PhotoRepositoryImpl) SearchByOwner(ctx context.Context, ownerEmail, pattern string) ([]models.Photo, error) {
	var photos []models.Photo
	// ~* is Postgres case-insensitive regex. Tags live in a jsonb array,
	// so each element is matched individually.
	err := r.db.WithContext(ctx).
		Where("owner_email = ?", ownerEmail).
		Where(`filename ~* ? OR EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(custom_tags) AS tag WHERE tag ~* ?
		)`, pattern, pattern).
		Order("uploaded_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}
