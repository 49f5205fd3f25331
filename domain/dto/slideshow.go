package dto

import "time"

// CreateSlideshowRequest names a slideshow and the media items it contains.
type CreateSlideshowRequest struct {
	Name     string   `json:"name" validate:"required,min=1"`
	PhotoIDs []string `json:"photoIds" validate:"required,min=1,dive,required"`
}

// SlideshowResponse is the stored slideshow as returned to clients.
type SlideshowResponse struct {
	SlideshowID string    `json:"slideshowId"`
	Name        string    `json:"name"`
	PhotoIDs    []string  `json:"photoIds"`
	PhotoURLs   []string  `json:"photoUrls"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MinimalSlideshowResponse is the embed projection: photo URLs only.
type MinimalSlideshowResponse struct {
	PhotoURLs []string `json:"photoUrls"`
}
