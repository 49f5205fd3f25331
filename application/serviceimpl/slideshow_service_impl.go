package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phototagger/domain/dto"
	"phototagger/domain/models"
	"phototagger/domain/repositories"
	"phototagger/domain/services"
	"phototagger/pkg/logger"
)

var (
	// ErrSlideshowNotFound is returned when no slideshow matches the handle.
	ErrSlideshowNotFound = errors.New("slideshow not found")

	// ErrUnresolvablePhoto is returned when any requested photo ID cannot
	// be resolved to a display URL. Creation is all-or-nothing.
	ErrUnresolvablePhoto = errors.New("one or more photo IDs could not be resolved")
)

// Slideshow URLs use the 500x500 rendition.
const slideshowRendition = "=w500-h500"

var whitespacePattern = regexp.MustCompile(`\s+`)

type SlideshowServiceImpl struct {
	slideshowRepo repositories.SlideshowRepository
	library       services.PhotoLibrary
}

func NewSlideshowService(
	slideshowRepo repositories.SlideshowRepository,
	library services.PhotoLibrary,
) services.SlideshowService {
	return &SlideshowServiceImpl{
		slideshowRepo: slideshowRepo,
		library:       library,
	}
}

// GenerateSlideshowID builds the public handle: lowercased name with
// whitespace collapsed to hyphens, plus an 8-hex-char suffix.
func GenerateSlideshowID(name string) string {
	slug := whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%s", slug, suffix)
}

func (s *SlideshowServiceImpl) CreateSlideshow(ctx context.Context, ownerEmail, accessToken string, req dto.CreateSlideshowRequest) (*dto.SlideshowResponse, error) {
	// Resolve every ID before anything is stored.
	photoURLs := make([]string, 0, len(req.PhotoIDs))
	for _, photoID := range req.PhotoIDs {
		item, err := s.library.GetMediaItem(ctx, accessToken, photoID)
		if err != nil {
			logger.SlideshowError("resolve_photo", "Failed to resolve photo URL", err, map[string]interface{}{
				"owner":    ownerEmail,
				"photo_id": photoID,
			})
			return nil, fmt.Errorf("%w: %s", ErrUnresolvablePhoto, photoID)
		}
		if item.BaseURL == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvablePhoto, photoID)
		}
		photoURLs = append(photoURLs, item.BaseURL+slideshowRendition)
	}

	slideshow := &models.Slideshow{
		ID:          uuid.New(),
		SlideshowID: GenerateSlideshowID(req.Name),
		Name:        req.Name,
		PhotoIDs:    models.StringSlice(req.PhotoIDs),
		PhotoURLs:   models.StringSlice(photoURLs),
		OwnerEmail:  ownerEmail,
		CreatedAt:   time.Now(),
	}

	if err := s.slideshowRepo.Create(ctx, slideshow); err != nil {
		return nil, fmt.Errorf("failed to create slideshow: %w", err)
	}

	logger.Slideshow("create", "Slideshow created", map[string]interface{}{
		"owner":        ownerEmail,
		"slideshow_id": slideshow.SlideshowID,
		"photos":       len(photoURLs),
	})

	return dto.SlideshowToSlideshowResponse(slideshow), nil
}

func (s *SlideshowServiceImpl) ListSlideshows(ctx context.Context, ownerEmail string) ([]dto.SlideshowResponse, error) {
	slideshows, err := s.slideshowRepo.GetByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list slideshows: %w", err)
	}
	return dto.SlideshowsToSlideshowResponses(slideshows), nil
}

func (s *SlideshowServiceImpl) GetSlideshow(ctx context.Context, slideshowID string) (*dto.SlideshowResponse, error) {
	slideshow, err := s.slideshowRepo.GetBySlideshowID(ctx, slideshowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlideshowNotFound
		}
		return nil, fmt.Errorf("failed to load slideshow: %w", err)
	}
	return dto.SlideshowToSlideshowResponse(slideshow), nil
}

func (s *SlideshowServiceImpl) DeleteSlideshow(ctx context.Context, ownerEmail, slideshowID string) error {
	deleted, err := s.slideshowRepo.DeleteBySlideshowID(ctx, slideshowID, ownerEmail)
	if err != nil {
		return fmt.Errorf("failed to delete slideshow: %w", err)
	}
	if deleted == 0 {
		return ErrSlideshowNotFound
	}

	logger.Slideshow("delete", "Slideshow deleted", map[string]interface{}{
		"owner":        ownerEmail,
		"slideshow_id": slideshowID,
	})

	return nil
}
