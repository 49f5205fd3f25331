package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"phototagger/domain/dto"
	"phototagger/domain/models"
	"phototagger/domain/repositories"
	"phototagger/domain/services"
	"phototagger/pkg/logger"
)

// ErrGalleryImageNotFound is returned when no entry matches the URL for the
// calling owner.
var ErrGalleryImageNotFound = errors.New("gallery image not found")

const (
	defaultGalleryTitle       = "Untitled"
	defaultGalleryDescription = "No description provided"
)

type GalleryServiceImpl struct {
	galleryRepo repositories.GalleryRepository
}

func NewGalleryService(galleryRepo repositories.GalleryRepository) services.GalleryService {
	return &GalleryServiceImpl{galleryRepo: galleryRepo}
}

func (s *GalleryServiceImpl) AddImages(ctx context.Context, ownerEmail string, req dto.AddGalleryImagesRequest) ([]dto.GalleryImageResponse, error) {
	now := time.Now()
	images := make([]*models.GalleryImage, 0, len(req.Photos))

	for _, input := range req.Photos {
		title := input.Title
		if title == "" {
			title = defaultGalleryTitle
		}
		description := input.Description
		if description == "" {
			description = defaultGalleryDescription
		}

		images = append(images, &models.GalleryImage{
			ID:          uuid.New(),
			Title:       title,
			Description: description,
			ImageURL:    input.ImageURL,
			OwnerEmail:  ownerEmail,
			CreatedAt:   now,
		})
	}

	if err := s.galleryRepo.CreateBatch(ctx, images); err != nil {
		return nil, fmt.Errorf("failed to add gallery images: %w", err)
	}

	logger.Gallery("add_images", "Gallery images added", map[string]interface{}{
		"owner": ownerEmail,
		"count": len(images),
	})

	responses := make([]dto.GalleryImageResponse, 0, len(images))
	for _, image := range images {
		responses = append(responses, *dto.GalleryImageToResponse(image))
	}
	return responses, nil
}

func (s *GalleryServiceImpl) ListImages(ctx context.Context, ownerEmail string) ([]dto.GalleryImageResponse, error) {
	images, err := s.galleryRepo.GetByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return dto.GalleryImagesToResponses(images), nil
}

func (s *GalleryServiceImpl) DeleteImage(ctx context.Context, ownerEmail, imageURL string) error {
	deleted, err := s.galleryRepo.DeleteByImageURL(ctx, ownerEmail, imageURL)
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	if deleted == 0 {
		return ErrGalleryImageNotFound
	}

	logger.Gallery("delete_image", "Gallery image deleted", map[string]interface{}{
		"owner": ownerEmail,
	})

	return nil
}

func (s *GalleryServiceImpl) ListImageURLsByEmail(ctx context.Context, email string) (*dto.PublicGalleryResponse, error) {
	images, err := s.galleryRepo.GetByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}

	urls := make([]string, 0, len(images))
	for _, image := range images {
		urls = append(urls, image.ImageURL)
	}

	return &dto.PublicGalleryResponse{ImageURLs: urls}, nil
}
