package services

import (
	"context"

	"phototagger/domain/dto"
)

// UploadFile is one file in an upload batch with its initial tags.
type UploadFile struct {
	Filename string
	MimeType string
	Data     []byte
	Tags     []string
}

// PhotoService covers remote fetching, metadata reconciliation, and tag
// management. All operations are scoped to the calling owner; the access
// token is the caller's already-refreshed Google credential.
type PhotoService interface {
	// SyncPhotos fetches the owner's remote media items, applies the
	// filter, and reconciles them into local metadata records.
	SyncPhotos(ctx context.Context, ownerEmail, accessToken string, filter MediaFilter) (*dto.SyncPhotosResponse, error)

	// GetPhoto returns the remote item joined with the stored record.
	GetPhoto(ctx context.Context, ownerEmail, accessToken, googlePhotoID string) (*dto.PhotoItem, error)

	// UploadPhotos uploads the files one by one and persists a record for
	// each success. Per-file failures are reported, not fatal.
	UploadPhotos(ctx context.Context, ownerEmail, accessToken string, files []UploadFile) ([]dto.UploadItemResult, error)

	// DeletePhoto removes the remote file and the local record.
	DeletePhoto(ctx context.Context, ownerEmail, accessToken, googlePhotoID string) error

	// AddTag unions the tag into the photo's tag set.
	AddTag(ctx context.Context, ownerEmail string, req dto.TagRequest) (*dto.PhotoRecordResponse, error)

	// RemoveTag removes an exact tag. Removing an absent tag is a no-op.
	RemoveTag(ctx context.Context, ownerEmail string, req dto.TagRequest) (*dto.PhotoRecordResponse, error)

	// SearchPhotos regex-matches the owner's records and joins matches
	// with fresh remote URLs.
	SearchPhotos(ctx context.Context, ownerEmail, accessToken, searchTerm string) ([]dto.SearchPhotoResult, error)

	// GetProfile returns the owner's People profile.
	GetProfile(ctx context.Context, accessToken string) (*PersonProfile, error)
}
