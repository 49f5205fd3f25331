package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"phototagger/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByProviderID(ctx context.Context, provider, providerID string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, user *models.User) error
	UpdateGoogleTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiry *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
