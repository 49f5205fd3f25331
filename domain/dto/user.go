package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is the authenticated user as returned to clients.
// Google tokens are never serialized.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Avatar    string     `json:"avatar,omitempty"`
	Provider  string     `json:"provider"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
