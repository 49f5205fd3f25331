package repositories

import (
	"context"

	"phototagger/domain/models"
)

type SlideshowRepository interface {
	Create(ctx context.Context, slideshow *models.Slideshow) error
	GetBySlideshowID(ctx context.Context, slideshowID string) (*models.Slideshow, error)
	GetByOwner(ctx context.Context, ownerEmail string) ([]models.Slideshow, error)
	DeleteBySlideshowID(ctx context.Context, slideshowID, ownerEmail string) (int64, error)
}
