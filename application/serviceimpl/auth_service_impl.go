package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"phototagger/domain/models"
	"phototagger/domain/repositories"
	"phototagger/domain/services"
	"phototagger/infrastructure/oauth"
	"phototagger/pkg/logger"
)

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	googleOAuth *oauth.GoogleOAuth
	jwtSecret   string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	googleOAuth *oauth.GoogleOAuth,
	jwtSecret string,
) services.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		googleOAuth: googleOAuth,
		jwtSecret:   jwtSecret,
	}
}

func (s *AuthServiceImpl) GetGoogleAuthURL(state string) string {
	return s.googleOAuth.GetAuthURL(state)
}

func (s *AuthServiceImpl) HandleGoogleCallback(ctx context.Context, code string) (string, *models.User, error) {
	// Exchange code for tokens
	tokenResp, err := s.googleOAuth.ExchangeCode(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	// Get user info from Google
	userInfo, err := s.googleOAuth.GetUserInfo(ctx, tokenResp.AccessToken)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get user info: %w", err)
	}

	// Find or create user
	user, err := s.findOrCreateGoogleUser(ctx, userInfo)
	if err != nil {
		return "", nil, fmt.Errorf("failed to find or create user: %w", err)
	}

	// Store the Google credential on the user row. Tokens are per user;
	// there is no shared OAuth client state.
	now := time.Now()
	user.LastLogin = &now
	user.GoogleAccessToken = tokenResp.AccessToken
	if tokenResp.RefreshToken != "" {
		user.GoogleRefreshToken = tokenResp.RefreshToken
	}
	expiry := now.Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	user.GoogleTokenExpiry = &expiry
	user.UpdatedAt = now

	if err := s.userRepo.Update(ctx, user.ID, user); err != nil {
		logger.AuthError("store_tokens", "Failed to persist Google tokens", err, map[string]interface{}{
			"user_id": user.ID.String(),
		})
		return "", nil, fmt.Errorf("failed to store tokens: %w", err)
	}

	// Generate JWT token
	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Auth("login", "User logged in via Google", map[string]interface{}{
		"user_id": user.ID.String(),
		"email":   user.Email,
	})

	return token, user, nil
}

func (s *AuthServiceImpl) GetCurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userIDStr, ok := claims["user_id"].(string)
		if !ok {
			return nil, fmt.Errorf("invalid token claims")
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID in token")
		}

		return s.userRepo.GetByID(ctx, userID)
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthServiceImpl) findOrCreateGoogleUser(ctx context.Context, info *oauth.GoogleUserInfo) (*models.User, error) {
	// Try to find existing user by provider ID
	user, err := s.userRepo.GetByProviderID(ctx, "google", info.ID)
	if err == nil {
		updated := false
		if user.Avatar != info.Picture && info.Picture != "" {
			user.Avatar = info.Picture
			updated = true
		}
		if user.Name != info.Name && info.Name != "" {
			user.Name = info.Name
			updated = true
		}
		if updated {
			user.UpdatedAt = time.Now()
			s.userRepo.Update(ctx, user.ID, user)
		}
		return user, nil
	}

	// Try to find existing user by email
	user, err = s.userRepo.GetByEmail(ctx, info.Email)
	if err == nil {
		// Link Google account to existing user
		user.Provider = "google"
		user.ProviderID = info.ID
		if user.Avatar == "" && info.Picture != "" {
			user.Avatar = info.Picture
		}
		user.UpdatedAt = time.Now()
		if err := s.userRepo.Update(ctx, user.ID, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	// Create new user
	now := time.Now()
	newUser := &models.User{
		ID:         uuid.New(),
		Email:      info.Email,
		Name:       info.Name,
		Avatar:     info.Picture,
		Provider:   "google",
		ProviderID: info.ID,
		LastLogin:  &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

func (s *AuthServiceImpl) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"name":    user.Name,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
