package services

import (
	"context"

	"phototagger/domain/dto"
)

// GalleryService manages curated external image references.
type GalleryService interface {
	// AddImages bulk-inserts entries, applying title/description defaults.
	AddImages(ctx context.Context, ownerEmail string, req dto.AddGalleryImagesRequest) ([]dto.GalleryImageResponse, error)

	// ListImages returns the owner's gallery entries.
	ListImages(ctx context.Context, ownerEmail string) ([]dto.GalleryImageResponse, error)

	// DeleteImage removes the owner's entry with the exact URL.
	DeleteImage(ctx context.Context, ownerEmail, imageURL string) error

	// ListImageURLsByEmail is the public URL-only listing for embeds.
	ListImageURLsByEmail(ctx context.Context, email string) (*dto.PublicGalleryResponse, error)
}
