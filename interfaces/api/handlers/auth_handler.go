package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"phototagger/domain/dto"
	"phototagger/domain/services"
	"phototagger/infrastructure/redis"
	"phototagger/pkg/config"
	"phototagger/pkg/logger"
	"phototagger/pkg/utils"
)

const oauthStateTTL = 10 * time.Minute

type AuthHandler struct {
	authService services.AuthService
	stateStore  redis.StateStore
	frontendURL string
}

func NewAuthHandler(authService services.AuthService, stateStore redis.StateStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		stateStore:  stateStore,
		frontendURL: cfg.Frontend.URL,
	}
}

// GoogleLogin redirects to Google OAuth
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	logger.Auth("LOGIN_START", "User initiating Google OAuth login", map[string]interface{}{
		"ip":         c.IP(),
		"user_agent": c.Get("User-Agent"),
	})

	// Single-use state for CSRF protection
	state, err := h.stateStore.Issue(c.Context(), oauthStateTTL)
	if err != nil {
		logger.AuthError("LOGIN_ERROR", "Failed to generate state", err, nil)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate state", err)
	}

	// Get the redirect URL from query param (for frontend redirect after login)
	redirectURL := c.Query("redirect", "/")
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_redirect",
		Value:    redirectURL,
		Expires:  time.Now().Add(oauthStateTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	authURL := h.authService.GetGoogleAuthURL(state)

	return c.Redirect(authURL)
}

// GoogleCallback handles the OAuth callback from Google
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	logger.Auth("CALLBACK_START", "Received OAuth callback from Google", map[string]interface{}{
		"ip": c.IP(),
	})

	// Verify and consume the state
	state := c.Query("state")
	if state == "" {
		return c.Redirect(h.frontendURL + "/?error=invalid_state")
	}
	if err := h.stateStore.Consume(c.Context(), state); err != nil {
		logger.AuthError("CALLBACK_ERROR", "Invalid or reused state parameter", err, nil)
		return c.Redirect(h.frontendURL + "/?error=invalid_state")
	}

	// Check for error from Google
	if errMsg := c.Query("error"); errMsg != "" {
		logger.AuthError("CALLBACK_ERROR", "Google returned error", nil, map[string]interface{}{
			"google_error": errMsg,
		})
		return c.Redirect(fmt.Sprintf("%s/?error=%s", h.frontendURL, errMsg))
	}

	// Get authorization code
	code := c.Query("code")
	if code == "" {
		logger.AuthError("CALLBACK_ERROR", "Missing authorization code", nil, nil)
		return c.Redirect(h.frontendURL + "/?error=missing_code")
	}

	// Exchange code for token and get user
	token, user, err := h.authService.HandleGoogleCallback(c.Context(), code)
	if err != nil {
		logger.AuthError("CALLBACK_ERROR", "Failed to exchange code", err, nil)
		return c.Redirect(fmt.Sprintf("%s/?error=auth_failed", h.frontendURL))
	}

	logger.Auth("CALLBACK_SUCCESS", "User authenticated successfully", map[string]interface{}{
		"user_id":    user.ID.String(),
		"user_email": user.Email,
	})

	// Get redirect URL
	redirectURL := c.Cookies("oauth_redirect", "/")
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_redirect",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	// Set auth token in cookie
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour), // 7 days
		HTTPOnly: true,
		SameSite: "Lax",
	})

	// Redirect to frontend with token (for SPA)
	frontendURL := fmt.Sprintf("%s/auth/callback?token=%s&redirect=%s", h.frontendURL, token, redirectURL)

	return c.Redirect(frontendURL)
}

// GetCurrentUser returns the current authenticated user
func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	if _, err := utils.GetUserFromContext(c); err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	token := utils.ExtractTokenFromHeader(c.Get("Authorization"))
	user, err := h.authService.GetCurrentUser(c.Context(), token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get user", err)
	}

	return utils.SuccessResponse(c, "User retrieved successfully", dto.UserToUserResponse(user))
}

// Logout clears the auth cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return utils.SuccessResponse(c, "Logged out successfully", nil)
}
