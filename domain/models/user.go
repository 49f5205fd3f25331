package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email      string    `gorm:"uniqueIndex;not null"`
	Name       string
	Avatar     string
	Provider   string `gorm:"default:'google'"`
	ProviderID string // OAuth provider's user ID
	LastLogin  *time.Time

	// Google credential for the Photos/People/Drive proxy calls.
	// Resolved per request, never shared across users.
	GoogleAccessToken  string
	GoogleRefreshToken string
	GoogleTokenExpiry  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
