package routes

import (
	"github.com/gofiber/fiber/v2"

	"phototagger/domain/repositories"
	"phototagger/infrastructure/googlephotos"
	"phototagger/interfaces/api/handlers"
	"phototagger/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, userRepo repositories.UserRepository, photosClient *googlephotos.PhotosClient) {
	// Setup health and root routes
	SetupHealthRoutes(app, h.Health)

	// API version group
	api := app.Group("/api/v1")

	// Routes that call Google need a fresh access token on every request
	tokenGuard := middleware.GoogleTokenGuard(userRepo, photosClient)

	// Setup all route groups
	SetupAuthRoutes(api, h)
	SetupPhotoRoutes(api, h, tokenGuard)
	SetupSlideshowRoutes(api, h, tokenGuard)
	SetupGalleryRoutes(api, h)
	SetupLogRoutes(api, h)
}
