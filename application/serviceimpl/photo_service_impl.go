package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phototagger/domain/dto"
	"phototagger/domain/models"
	"phototagger/domain/repositories"
	"phototagger/domain/services"
	"phototagger/pkg/logger"
)

// ErrPhotoNotFound is returned when no metadata record matches the request
// for the calling owner.
var ErrPhotoNotFound = errors.New("photo record not found")

const defaultPhotoDescription = "Uploaded via PhotoTagger"

type PhotoServiceImpl struct {
	photoRepo repositories.PhotoRepository
	library   services.PhotoLibrary
}

func NewPhotoService(
	photoRepo repositories.PhotoRepository,
	library services.PhotoLibrary,
) services.PhotoService {
	return &PhotoServiceImpl{
		photoRepo: photoRepo,
		library:   library,
	}
}

func (s *PhotoServiceImpl) SyncPhotos(ctx context.Context, ownerEmail, accessToken string, filter services.MediaFilter) (*dto.SyncPhotosResponse, error) {
	items, err := s.library.ListMediaItems(ctx, accessToken, filter)
	if err != nil {
		logger.SyncError("fetch_remote", "Failed to fetch media items", err, map[string]interface{}{
			"owner": ownerEmail,
		})
		return nil, fmt.Errorf("failed to fetch media items: %w", err)
	}

	response := &dto.SyncPhotosResponse{
		Photos:  make([]dto.PhotoItem, 0, len(items)),
		Results: make([]dto.SyncItemResult, 0, len(items)),
	}

	for _, item := range items {
		result := dto.SyncItemResult{
			GooglePhotoID: item.ID,
			Filename:      item.Filename,
		}

		tags := []string{}
		existing, err := s.photoRepo.GetByGooglePhotoID(ctx, item.ID)
		switch {
		case err == nil:
			result.Outcome = dto.SyncOutcomeSkipped
			tags = existing.CustomTags
		case errors.Is(err, gorm.ErrRecordNotFound):
			record := &models.Photo{
				ID:            uuid.New(),
				GooglePhotoID: item.ID,
				Filename:      item.Filename,
				Size:          item.Size,
				MimeType:      item.MimeType,
				UploadedAt:    item.CreationTime,
				Description:   defaultPhotoDescription,
				CustomTags:    models.StringSlice{},
				Status:        models.PhotoStatusUploaded,
				OwnerEmail:    ownerEmail,
			}
			createErr := s.photoRepo.Create(ctx, record)
			switch {
			case createErr == nil:
				result.Outcome = dto.SyncOutcomeSynced
			case errors.Is(createErr, gorm.ErrDuplicatedKey):
				// Concurrent sync won the race; the record exists.
				result.Outcome = dto.SyncOutcomeSkipped
			default:
				result.Outcome = dto.SyncOutcomeFailed
				result.Reason = createErr.Error()
			}
		default:
			result.Outcome = dto.SyncOutcomeFailed
			result.Reason = err.Error()
		}

		response.Results = append(response.Results, result)
		response.Photos = append(response.Photos, dto.PhotoItem{
			ID:           item.ID,
			Filename:     item.Filename,
			BaseURL:      item.BaseURL,
			MimeType:     item.MimeType,
			Size:         item.Size,
			CreationTime: item.CreationTime,
			CustomTags:   tags,
		})
	}

	logger.Sync("sync_photos", "Synced media items", map[string]interface{}{
		"owner": ownerEmail,
		"total": len(items),
	})

	return response, nil
}

func (s *PhotoServiceImpl) GetPhoto(ctx context.Context, ownerEmail, accessToken, googlePhotoID string) (*dto.PhotoItem, error) {
	record, err := s.photoRepo.GetByGooglePhotoIDAndOwner(ctx, googlePhotoID, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to load photo record: %w", err)
	}

	item, err := s.library.GetMediaItem(ctx, accessToken, googlePhotoID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media item: %w", err)
	}

	return &dto.PhotoItem{
		ID:           item.ID,
		Filename:     record.Filename,
		BaseURL:      item.BaseURL,
		MimeType:     record.MimeType,
		Size:         record.Size,
		CreationTime: record.UploadedAt,
		CustomTags:   record.CustomTags,
	}, nil
}

func (s *PhotoServiceImpl) UploadPhotos(ctx context.Context, ownerEmail, accessToken string, files []services.UploadFile) ([]dto.UploadItemResult, error) {
	results := make([]dto.UploadItemResult, 0, len(files))

	for _, file := range files {
		result := dto.UploadItemResult{Filename: file.Filename}

		item, err := s.library.UploadMedia(ctx, accessToken, file.Filename, defaultPhotoDescription, file.Data)
		if err != nil {
			logger.PhotosError("upload", "Upload failed", err, map[string]interface{}{
				"owner":    ownerEmail,
				"filename": file.Filename,
			})
			result.Outcome = dto.SyncOutcomeFailed
			result.Reason = err.Error()
			results = append(results, result)
			continue
		}

		result.GooglePhotoID = item.ID

		record := &models.Photo{
			ID:            uuid.New(),
			GooglePhotoID: item.ID,
			Filename:      file.Filename,
			Size:          int64(len(file.Data)),
			MimeType:      file.MimeType,
			UploadedAt:    time.Now(),
			Description:   defaultPhotoDescription,
			CustomTags:    dedupeTags(file.Tags),
			Status:        models.PhotoStatusUploaded,
			OwnerEmail:    ownerEmail,
		}

		createErr := s.photoRepo.Create(ctx, record)
		switch {
		case createErr == nil:
			result.Outcome = dto.SyncOutcomeSynced
		case errors.Is(createErr, gorm.ErrDuplicatedKey):
			result.Outcome = dto.SyncOutcomeSkipped
		default:
			result.Outcome = dto.SyncOutcomeFailed
			result.Reason = createErr.Error()
		}

		results = append(results, result)
	}

	return results, nil
}

func (s *PhotoServiceImpl) DeletePhoto(ctx context.Context, ownerEmail, accessToken, googlePhotoID string) error {
	record, err := s.photoRepo.GetByGooglePhotoIDAndOwner(ctx, googlePhotoID, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to load photo record: %w", err)
	}

	if err := s.library.DeleteMedia(ctx, accessToken, googlePhotoID); err != nil {
		return fmt.Errorf("failed to delete remote photo: %w", err)
	}

	if err := s.photoRepo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete photo record: %w", err)
	}

	logger.Photos("delete", "Photo deleted", map[string]interface{}{
		"owner":           ownerEmail,
		"google_photo_id": googlePhotoID,
	})

	return nil
}

func (s *PhotoServiceImpl) AddTag(ctx context.Context, ownerEmail string, req dto.TagRequest) (*dto.PhotoRecordResponse, error) {
	record, err := s.photoRepo.GetByGooglePhotoIDAndOwner(ctx, req.GooglePhotoID, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to load photo record: %w", err)
	}

	if !record.HasTag(req.TagName) {
		record.AddTag(req.TagName)
		if err := s.photoRepo.UpdateTags(ctx, record.ID, record.CustomTags); err != nil {
			return nil, fmt.Errorf("failed to update tags: %w", err)
		}
	}

	logger.Tags("add_tag", "Tag added", map[string]interface{}{
		"owner":           ownerEmail,
		"google_photo_id": req.GooglePhotoID,
		"tag":             req.TagName,
	})

	return dto.PhotoToPhotoRecordResponse(record), nil
}

func (s *PhotoServiceImpl) RemoveTag(ctx context.Context, ownerEmail string, req dto.TagRequest) (*dto.PhotoRecordResponse, error) {
	record, err := s.photoRepo.GetByGooglePhotoIDAndOwner(ctx, req.GooglePhotoID, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to load photo record: %w", err)
	}

	if record.HasTag(req.TagName) {
		record.RemoveTag(req.TagName)
		if err := s.photoRepo.UpdateTags(ctx, record.ID, record.CustomTags); err != nil {
			return nil, fmt.Errorf("failed to update tags: %w", err)
		}
	}

	// Removing an absent tag is a no-op; the unchanged record is returned.
	return dto.PhotoToPhotoRecordResponse(record), nil
}

func (s *PhotoServiceImpl) SearchPhotos(ctx context.Context, ownerEmail, accessToken, searchTerm string) ([]dto.SearchPhotoResult, error) {
	// Validate the pattern before handing it to Postgres.
	if _, err := regexp.Compile("(?i)" + searchTerm); err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}

	records, err := s.photoRepo.SearchByOwner(ctx, ownerEmail, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("failed to search photos: %w", err)
	}

	if len(records) == 0 {
		return []dto.SearchPhotoResult{}, nil
	}

	// Join matches with a fresh remote fetch so the URLs are live.
	items, err := s.library.ListMediaItems(ctx, accessToken, services.MediaFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media items: %w", err)
	}

	urlByID := make(map[string]string, len(items))
	for _, item := range items {
		urlByID[item.ID] = item.BaseURL
	}

	results := make([]dto.SearchPhotoResult, 0, len(records))
	for _, record := range records {
		result := dto.SearchPhotoResult{
			GooglePhotoID: record.GooglePhotoID,
			Filename:      record.Filename,
			CustomTags:    record.CustomTags,
		}
		if baseURL, ok := urlByID[record.GooglePhotoID]; ok {
			result.BaseURL = baseURL + "=w500-h500"
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *PhotoServiceImpl) GetProfile(ctx context.Context, accessToken string) (*services.PersonProfile, error) {
	profile, err := s.library.GetProfile(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, nil
}

func dedupeTags(tags []string) models.StringSlice {
	seen := make(map[string]struct{}, len(tags))
	out := models.StringSlice{}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
