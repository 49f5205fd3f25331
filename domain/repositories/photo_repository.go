package repositories

import (
	"context"

	"github.com/google/uuid"
	"phototagger/domain/models"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByGooglePhotoID(ctx context.Context, googlePhotoID string) (*models.Photo, error)
	GetByGooglePhotoIDAndOwner(ctx context.Context, googlePhotoID, ownerEmail string) (*models.Photo, error)

	// UpdateTags replaces the tag set. A map-based update so clearing the
	// last tag still writes.
	UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error

	Delete(ctx context.Context, id uuid.UUID) error

	// SearchByOwner matches pattern (case-insensitive regex) against the
	// filename or any custom tag of the owner's photos.
	SearchByOwner(ctx context.Context, ownerEmail, pattern string) ([]models.Photo, error)
}
