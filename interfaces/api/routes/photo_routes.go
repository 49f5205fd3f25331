package routes

import (
	"github.com/gofiber/fiber/v2"

	"phototagger/interfaces/api/handlers"
	"phototagger/interfaces/api/middleware"
)

func SetupPhotoRoutes(router fiber.Router, h *handlers.Handlers, tokenGuard fiber.Handler) {
	photos := router.Group("/photos", middleware.Protected(), tokenGuard)

	photos.Get("/", h.Photo.SyncPhotos)
	photos.Post("/", h.Photo.UploadPhotos)
	photos.Post("/search", h.Photo.SearchPhotos)

	// Tag operations address photos by their Google photo ID in the body
	photos.Post("/tags", h.Photo.AddTag)
	photos.Delete("/tags", h.Photo.RemoveTag)

	photos.Get("/:photoId", h.Photo.GetPhoto)
	photos.Delete("/:photoId", h.Photo.DeletePhoto)

	// People API profile for the signed-in account
	router.Get("/profile", middleware.Protected(), tokenGuard, h.Photo.GetProfile)
}
