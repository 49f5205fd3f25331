package services

import (
	"context"
	"time"
)

// MediaItem is the normalized projection of a Google Photos media item.
type MediaItem struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	BaseURL      string    `json:"baseUrl"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	CreationTime time.Time `json:"creationTime"`
	Location     string    `json:"location,omitempty"`
}

// MediaFilter narrows a media item listing. Zero value means no filtering.
// Date bounds are inclusive; Location is a case-insensitive substring match.
type MediaFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Location string
}

// PersonProfile is the projection of the authenticated user's People record.
type PersonProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Birthday string `json:"birthday,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// PhotoLibrary proxies the Google Photos Library, People, and Drive APIs.
// Every call authenticates with the caller's access token; there is no
// shared client state between users.
type PhotoLibrary interface {
	// ListMediaItems pages through mediaItems:search and returns the
	// filtered result. Any page failure fails the whole listing.
	ListMediaItems(ctx context.Context, accessToken string, filter MediaFilter) ([]MediaItem, error)

	// GetMediaItem fetches a single media item by its Google Photos ID.
	GetMediaItem(ctx context.Context, accessToken, mediaItemID string) (*MediaItem, error)

	// UploadMedia uploads raw bytes and creates the media item.
	UploadMedia(ctx context.Context, accessToken, filename, description string, data []byte) (*MediaItem, error)

	// DeleteMedia removes the backing file through the Drive API.
	DeleteMedia(ctx context.Context, accessToken, mediaItemID string) error

	// GetProfile fetches the authenticated user's People profile.
	GetProfile(ctx context.Context, accessToken string) (*PersonProfile, error)
}
