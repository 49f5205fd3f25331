package routes

import (
	"github.com/gofiber/fiber/v2"

	"phototagger/interfaces/api/handlers"
	"phototagger/interfaces/api/middleware"
)

func SetupSlideshowRoutes(router fiber.Router, h *handlers.Handlers, tokenGuard fiber.Handler) {
	slideshows := router.Group("/slideshows")

	// Public lookup so embeds can load a slideshow by its handle.
	// Must be registered before the protected group below would shadow it.
	slideshows.Get("/:slideshowId", h.Slideshow.GetSlideshow)

	// Creation resolves photo URLs against Google, so it needs the guard
	slideshows.Post("/", middleware.Protected(), tokenGuard, h.Slideshow.CreateSlideshow)
	slideshows.Get("/", middleware.Protected(), h.Slideshow.ListSlideshows)
	slideshows.Delete("/:slideshowId", middleware.Protected(), h.Slideshow.DeleteSlideshow)
}
