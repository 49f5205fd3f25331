package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"phototagger/domain/repositories"
	"phototagger/infrastructure/googlephotos"
	"phototagger/pkg/logger"
	"phototagger/pkg/utils"
)

// refreshWindow is how close to expiry a token may get before it is
// refreshed ahead of the proxied call.
const refreshWindow = 5 * time.Minute

// GoogleTokenKey is the locals key holding the fresh access token.
const GoogleTokenKey = "googleAccessToken"

// NeedsRefresh reports whether a token with the given expiry must be
// refreshed before use. A missing expiry is treated as stale.
func NeedsRefresh(expiry *time.Time, now time.Time) bool {
	if expiry == nil {
		return true
	}
	return expiry.Sub(now) < refreshWindow
}

// GoogleTokenGuard keeps the caller's Google credential fresh. It runs after
// Protected(), loads the stored per-user tokens, refreshes them when they
// are within the refresh window, and halts with 401 when refresh fails.
// The usable access token is placed in locals for handlers.
func GoogleTokenGuard(userRepo repositories.UserRepository, photosClient *googlephotos.PhotosClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		user, err := userRepo.GetByID(c.Context(), userCtx.ID)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not found")
		}

		if user.GoogleAccessToken == "" && user.GoogleRefreshToken == "" {
			return utils.UnauthorizedResponse(c, "Google account not connected")
		}

		if !NeedsRefresh(user.GoogleTokenExpiry, time.Now()) {
			c.Locals(GoogleTokenKey, user.GoogleAccessToken)
			return c.Next()
		}

		if user.GoogleRefreshToken == "" {
			return utils.UnauthorizedResponse(c, "Google session expired, please sign in again")
		}

		tokenInfo, err := photosClient.RefreshToken(c.Context(), user.GoogleRefreshToken)
		if err != nil {
			logger.AuthError("refresh_token", "Google token refresh failed", err, map[string]interface{}{
				"user_id": user.ID.String(),
			})
			return utils.UnauthorizedResponse(c, "Failed to refresh Google credentials")
		}

		expiry := tokenInfo.Expiry
		if err := userRepo.UpdateGoogleTokens(c.Context(), user.ID, tokenInfo.AccessToken, tokenInfo.RefreshToken, &expiry); err != nil {
			logger.AuthError("refresh_token", "Failed to persist refreshed tokens", err, map[string]interface{}{
				"user_id": user.ID.String(),
			})
			return utils.UnauthorizedResponse(c, "Failed to refresh Google credentials")
		}

		logger.Auth("refresh_token", "Google token refreshed", map[string]interface{}{
			"user_id": user.ID.String(),
		})

		c.Locals(GoogleTokenKey, tokenInfo.AccessToken)
		return c.Next()
	}
}

// GoogleTokenFromContext returns the fresh access token set by the guard.
func GoogleTokenFromContext(c *fiber.Ctx) string {
	if token, ok := c.Locals(GoogleTokenKey).(string); ok {
		return token
	}
	return ""
}
