package handlers

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"phototagger/application/serviceimpl"
	"phototagger/domain/dto"
	"phototagger/domain/services"
	"phototagger/interfaces/api/middleware"
	"phototagger/pkg/logger"
	"phototagger/pkg/utils"
)

var validate = validator.New()

type PhotoHandler struct {
	photoService services.PhotoService
}

func NewPhotoHandler(photoService services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// parseDateBound accepts a date-only or RFC3339 value. Date-only bounds
// widen to the start or end of the day so both ends stay inclusive.
func parseDateBound(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// SyncPhotos fetches the user's Google Photos and reconciles local metadata
// GET /api/v1/photos?fromDate=&toDate=&location=
func (h *PhotoHandler) SyncPhotos(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	fromDate, err := parseDateBound(c.Query("fromDate"), false)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid fromDate", err)
	}
	toDate, err := parseDateBound(c.Query("toDate"), true)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid toDate", err)
	}

	filter := services.MediaFilter{
		FromDate: fromDate,
		ToDate:   toDate,
		Location: c.Query("location"),
	}

	accessToken := middleware.GoogleTokenFromContext(c)
	response, err := h.photoService.SyncPhotos(c.Context(), user.Email, accessToken, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to sync photos", err)
	}

	return utils.SuccessResponse(c, "Photos synced successfully", response)
}

// GetPhoto returns one photo with its stored tags
// GET /api/v1/photos/:photoId
func (h *PhotoHandler) GetPhoto(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	photoID := c.Params("photoId")
	accessToken := middleware.GoogleTokenFromContext(c)

	photo, err := h.photoService.GetPhoto(c.Context(), user.Email, accessToken, photoID)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrPhotoNotFound) {
			return utils.NotFoundResponse(c, "Photo not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get photo", err)
	}

	return utils.SuccessResponse(c, "Photo retrieved successfully", photo)
}

// UploadPhotos uploads files with per-file tags
// POST /api/v1/photos (multipart: photos[], tags[])
func (h *PhotoHandler) UploadPhotos(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid multipart form", err)
	}

	fileHeaders := form.File["photos"]
	if len(fileHeaders) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No files provided", nil)
	}

	// tags[i] applies to photos[i]; a tags entry holds comma-separated tags
	tags := form.Value["tags"]
	if len(tags) > 0 && len(tags) != len(fileHeaders) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tag count does not match file count", nil)
	}

	files := make([]services.UploadFile, 0, len(fileHeaders))
	for i, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to open uploaded file", err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
		}

		var fileTags []string
		if len(tags) > i {
			fileTags = splitTags(tags[i])
		}

		files = append(files, services.UploadFile{
			Filename: header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Data:     data,
			Tags:     fileTags,
		})
	}

	accessToken := middleware.GoogleTokenFromContext(c)
	results, err := h.photoService.UploadPhotos(c.Context(), user.Email, accessToken, files)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to upload photos", err)
	}

	logger.Photos("upload", "Upload batch processed", map[string]interface{}{
		"owner": user.Email,
		"count": len(results),
	})

	return utils.SuccessResponse(c, "Upload processed", results)
}

// DeletePhoto removes the remote file and the local record
// DELETE /api/v1/photos/:photoId
func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	photoID := c.Params("photoId")
	accessToken := middleware.GoogleTokenFromContext(c)

	if err := h.photoService.DeletePhoto(c.Context(), user.Email, accessToken, photoID); err != nil {
		if errors.Is(err, serviceimpl.ErrPhotoNotFound) {
			return utils.NotFoundResponse(c, "Photo not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete photo", err)
	}

	return utils.SuccessResponse(c, "Photo deleted successfully", nil)
}

// AddTag adds a tag to a photo (set semantics)
// POST /api/v1/photos/tags
func (h *PhotoHandler) AddTag(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.TagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	record, err := h.photoService.AddTag(c.Context(), user.Email, req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrPhotoNotFound) {
			return utils.NotFoundResponse(c, "Photo not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to add tag", err)
	}

	return utils.SuccessResponse(c, "Tag added successfully", record)
}

// RemoveTag removes a tag from a photo
// DELETE /api/v1/photos/tags
func (h *PhotoHandler) RemoveTag(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.TagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	record, err := h.photoService.RemoveTag(c.Context(), user.Email, req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrPhotoNotFound) {
			return utils.NotFoundResponse(c, "Photo not found")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove tag", err)
	}

	return utils.SuccessResponse(c, "Tag removed successfully", record)
}

// SearchPhotos regex-searches filenames and tags
// POST /api/v1/photos/search
func (h *PhotoHandler) SearchPhotos(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.SearchPhotosRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	accessToken := middleware.GoogleTokenFromContext(c)
	results, err := h.photoService.SearchPhotos(c.Context(), user.Email, accessToken, req.SearchTerm)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search photos", err)
	}

	return utils.SuccessResponse(c, "Search completed", results)
}

// GetProfile returns the user's Google People profile
// GET /api/v1/profile
func (h *PhotoHandler) GetProfile(c *fiber.Ctx) error {
	if _, err := utils.GetUserFromContext(c); err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	accessToken := middleware.GoogleTokenFromContext(c)
	profile, err := h.photoService.GetProfile(c.Context(), accessToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get profile", err)
	}

	return utils.SuccessResponse(c, "Profile retrieved successfully", profile)
}

func splitTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
