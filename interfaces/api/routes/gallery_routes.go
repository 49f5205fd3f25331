package routes

import (
	"github.com/gofiber/fiber/v2"

	"phototagger/interfaces/api/handlers"
	"phototagger/interfaces/api/middleware"
)

func SetupGalleryRoutes(router fiber.Router, h *handlers.Handlers) {
	gallery := router.Group("/gallery")

	// Public URL-only listing for the embed widget
	gallery.Get("/email/:email", h.Gallery.ListImagesByEmail)

	gallery.Post("/", middleware.Protected(), h.Gallery.AddImages)
	gallery.Get("/", middleware.Protected(), h.Gallery.ListImages)
	gallery.Delete("/", middleware.Protected(), h.Gallery.DeleteImage)
}
