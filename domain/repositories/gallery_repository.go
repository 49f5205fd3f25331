package repositories

import (
	"context"

	"phototagger/domain/models"
)

type GalleryRepository interface {
	CreateBatch(ctx context.Context, images []*models.GalleryImage) error
	GetByOwner(ctx context.Context, ownerEmail string) ([]models.GalleryImage, error)
	DeleteByImageURL(ctx context.Context, ownerEmail, imageURL string) (int64, error)
}
