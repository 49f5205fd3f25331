package models

import (
	"time"

	"github.com/google/uuid"
)

type PhotoStatus string

const (
	PhotoStatusUploaded PhotoStatus = "Uploaded"
	PhotoStatusFailed   PhotoStatus = "Failed"
)

// Photo is the local metadata record for a Google Photos media item.
// The binary lives in Google Photos; this row carries what Google won't
// store for us (custom tags, upload status, ownership).
type Photo struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	// Google Photos media item ID
	GooglePhotoID string `gorm:"uniqueIndex;not null"`

	Filename   string `gorm:"index"`
	Size       int64  `gorm:"default:0"`
	MimeType   string
	UploadedAt time.Time

	Description string      `gorm:"default:'Uploaded via PhotoTagger'"`
	CustomTags  StringSlice `gorm:"type:jsonb;default:'[]'"`
	Status      PhotoStatus `gorm:"default:'Uploaded'"`

	OwnerEmail string `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Photo) TableName() string {
	return "photos"
}

// HasTag reports whether the photo already carries the given tag (exact match).
func (p *Photo) HasTag(tag string) bool {
	for _, t := range p.CustomTags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends the tag if absent (set semantics).
func (p *Photo) AddTag(tag string) {
	if !p.HasTag(tag) {
		p.CustomTags = append(p.CustomTags, tag)
	}
}

// RemoveTag removes the tag if present. Removing an absent tag is a no-op.
func (p *Photo) RemoveTag(tag string) {
	out := p.CustomTags[:0]
	for _, t := range p.CustomTags {
		if t != tag {
			out = append(out, t)
		}
	}
	p.CustomTags = out
}
