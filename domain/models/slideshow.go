package models

import (
	"time"

	"github.com/google/uuid"
)

// Slideshow is a named, ordered collection of resolved photo URLs.
// SlideshowID is the public handle used by the embed widget.
type Slideshow struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	// Lowercased, hyphenated name plus an 8-hex-char suffix
	SlideshowID string `gorm:"uniqueIndex;not null"`

	Name      string      `gorm:"not null"`
	PhotoIDs  StringSlice `gorm:"type:jsonb;default:'[]'"`
	PhotoURLs StringSlice `gorm:"type:jsonb;default:'[]'"`

	OwnerEmail string `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Slideshow) TableName() string {
	return "slideshows"
}
