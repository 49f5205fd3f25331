package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is a curated external image reference for the public gallery.
type GalleryImage struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	Title       string `gorm:"default:'Untitled'"`
	Description string `gorm:"default:'No description provided'"`
	ImageURL    string `gorm:"index;not null"`

	OwnerEmail string `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
