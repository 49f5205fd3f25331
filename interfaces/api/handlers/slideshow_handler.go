package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"phototagger/application/serviceimpl"
	"phototagger/domain/dto"
	"phototagger/domain/services"
	"phototagger/interfaces/api/middleware"
	"phototagger/pkg/utils"
)

type SlideshowHandler struct {
	slideshowService services.SlideshowService
}

func NewSlideshowHandler(slideshowService services.SlideshowService) *SlideshowHandler {
	return &SlideshowHandler{slideshowService: slideshowService}
}

// CreateSlideshow creates a slideshow from photo IDs (all-or-nothing)
// POST /api/v1/slideshows
func (h *SlideshowHandler) CreateSlideshow(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.CreateSlideshowRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	accessToken := middleware.GoogleTokenFromContext(c)
	slideshow, err := h.slideshowService.CreateSlideshow(c.Context(), user.Email, accessToken, req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrUnresolvablePhoto) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not resolve all photo URLs", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create slideshow", err)
	}

	return utils.CreatedResponse(c, "Slideshow created successfully", slideshow)
}

// ListSlideshows returns the user's slideshows
// GET /api/v1/slideshows
func (h *SlideshowHandler) ListSlideshows(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	slideshows, err := h.slideshowService.ListSlideshows(c.Context(), user.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list slideshows", err)
	}

	return utils.SuccessResponse(c, "Slideshows retrieved successfully", slideshows)
}

// GetSlideshow returns one slideshow by its public handle. Unauthenticated
// so the embed widget can load it; minimal=true returns only the URLs.
// GET /api/v1/slideshows/:slideshowId?minimal=true
func (h *SlideshowHandler) GetSlideshow(c *fiber.Ctx) error {
	slideshowID := c.Params("slideshowId")

	slideshow, err := h.slideshowService.GetSlideshow(c.Context(), slideshowID)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrSlideshowNotFound) {
			return utils.NotFoundResponse(c, "Slideshow not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get slideshow", err)
	}

	if c.Query("minimal") == "true" {
		return c.JSON(dto.MinimalSlideshowResponse{PhotoURLs: slideshow.PhotoURLs})
	}

	return utils.SuccessResponse(c, "Slideshow retrieved successfully", slideshow)
}

// DeleteSlideshow removes the user's slideshow
// DELETE /api/v1/slideshows/:slideshowId
func (h *SlideshowHandler) DeleteSlideshow(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	slideshowID := c.Params("slideshowId")
	if err := h.slideshowService.DeleteSlideshow(c.Context(), user.Email, slideshowID); err != nil {
		if errors.Is(err, serviceimpl.ErrSlideshowNotFound) {
			return utils.NotFoundResponse(c, "Slideshow not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete slideshow", err)
	}

	return utils.SuccessResponse(c, "Slideshow deleted successfully", nil)
}
