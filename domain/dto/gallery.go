package dto

import "time"

// GalleryImageInput is one entry in a bulk gallery add. Title and
// description fall back to defaults when omitted.
type GalleryImageInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
}

// AddGalleryImagesRequest bulk-adds curated image references.
type AddGalleryImagesRequest struct {
	Photos []GalleryImageInput `json:"photos" validate:"required,min=1,dive"`
}

// DeleteGalleryImageRequest removes one entry by its exact URL.
type DeleteGalleryImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}

// GalleryImageResponse is a stored gallery entry as returned to clients.
type GalleryImageResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PublicGalleryResponse is the URL-only listing used by the embed widget.
type PublicGalleryResponse struct {
	ImageURLs []string `json:"imageUrls"`
}
