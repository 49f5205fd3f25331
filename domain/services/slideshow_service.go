package services

import (
	"context"

	"phototagger/domain/dto"
)

// SlideshowService assembles named photo collections with resolved URLs.
type SlideshowService interface {
	// CreateSlideshow resolves every photo ID to a display URL before
	// anything is stored. One unresolvable ID fails the whole request.
	CreateSlideshow(ctx context.Context, ownerEmail, accessToken string, req dto.CreateSlideshowRequest) (*dto.SlideshowResponse, error)

	// ListSlideshows returns the owner's slideshows.
	ListSlideshows(ctx context.Context, ownerEmail string) ([]dto.SlideshowResponse, error)

	// GetSlideshow fetches one slideshow by its public handle.
	GetSlideshow(ctx context.Context, slideshowID string) (*dto.SlideshowResponse, error)

	// DeleteSlideshow removes the owner's slideshow by its public handle.
	DeleteSlideshow(ctx context.Context, ownerEmail, slideshowID string) error
}
