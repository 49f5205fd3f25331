package services

import (
	"context"

	"phototagger/domain/models"
)

type GoogleUserInfo struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

type AuthService interface {
	// GetGoogleAuthURL returns the Google OAuth authorization URL for the
	// given anti-CSRF state.
	GetGoogleAuthURL(state string) string

	// HandleGoogleCallback exchanges the code, upserts the user with the
	// Google tokens attached, and issues a session token.
	HandleGoogleCallback(ctx context.Context, code string) (token string, user *models.User, err error)

	// GetCurrentUser returns the authenticated user for a session token.
	GetCurrentUser(ctx context.Context, token string) (*models.User, error)
}
