package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"phototagger/application/serviceimpl"
	"phototagger/domain/dto"
	"phototagger/domain/services"
	"phototagger/pkg/utils"
)

type GalleryHandler struct {
	galleryService services.GalleryService
}

func NewGalleryHandler(galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// AddImages bulk-adds curated image references
// POST /api/v1/gallery
func (h *GalleryHandler) AddImages(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.AddGalleryImagesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	images, err := h.galleryService.AddImages(c.Context(), user.Email, req)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add gallery images", err)
	}

	return utils.CreatedResponse(c, "Gallery images added successfully", images)
}

// ListImages returns the user's gallery entries
// GET /api/v1/gallery
func (h *GalleryHandler) ListImages(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	images, err := h.galleryService.ListImages(c.Context(), user.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list gallery images", err)
	}

	return utils.SuccessResponse(c, "Gallery images retrieved successfully", images)
}

// DeleteImage removes one entry by exact URL
// DELETE /api/v1/gallery
func (h *GalleryHandler) DeleteImage(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.DeleteGalleryImageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := h.galleryService.DeleteImage(c.Context(), user.Email, req.ImageURL); err != nil {
		if errors.Is(err, serviceimpl.ErrGalleryImageNotFound) {
			return utils.NotFoundResponse(c, "Gallery image not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete gallery image", err)
	}

	return utils.SuccessResponse(c, "Gallery image deleted successfully", nil)
}

// ListImagesByEmail is the public URL-only listing for the embed widget
// GET /api/v1/gallery/email/:email
func (h *GalleryHandler) ListImagesByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email is required", nil)
	}

	response, err := h.galleryService.ListImageURLsByEmail(c.Context(), email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list gallery images", err)
	}

	return c.JSON(response)
}
