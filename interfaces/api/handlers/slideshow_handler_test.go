package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phototagger/application/serviceimpl"
	"phototagger/domain/dto"
)

type fakeSlideshowService struct {
	slideshows map[string]*dto.SlideshowResponse
}

func (s *fakeSlideshowService) CreateSlideshow(ctx context.Context, ownerEmail, accessToken string, req dto.CreateSlideshowRequest) (*dto.SlideshowResponse, error) {
	return nil, nil
}

func (s *fakeSlideshowService) ListSlideshows(ctx context.Context, ownerEmail string) ([]dto.SlideshowResponse, error) {
	return nil, nil
}

func (s *fakeSlideshowService) GetSlideshow(ctx context.Context, slideshowID string) (*dto.SlideshowResponse, error) {
	if slideshow, ok := s.slideshows[slideshowID]; ok {
		return slideshow, nil
	}
	return nil, serviceimpl.ErrSlideshowNotFound
}

func (s *fakeSlideshowService) DeleteSlideshow(ctx context.Context, ownerEmail, slideshowID string) error {
	return nil
}

func newSlideshowTestApp(svc *fakeSlideshowService) *fiber.App {
	app := fiber.New()
	handler := NewSlideshowHandler(svc)
	app.Get("/api/v1/slideshows/:slideshowId", handler.GetSlideshow)
	return app
}

func TestGetSlideshow_MinimalProjection(t *testing.T) {
	svc := &fakeSlideshowService{slideshows: map[string]*dto.SlideshowResponse{
		"summer-trip-abcd1234": {
			SlideshowID: "summer-trip-abcd1234",
			Name:        "Summer Trip",
			PhotoIDs:    []string{"p1", "p2"},
			PhotoURLs:   []string{"https://example.com/1", "https://example.com/2"},
		},
	}}
	app := newSlideshowTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/slideshows/summer-trip-abcd1234?minimal=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The embed widget depends on this exact shape: photo URLs only,
	// no response envelope.
	assert.JSONEq(t, `{"photoUrls":["https://example.com/1","https://example.com/2"]}`, string(body))
}

func TestGetSlideshow_FullResponse(t *testing.T) {
	svc := &fakeSlideshowService{slideshows: map[string]*dto.SlideshowResponse{
		"summer-trip-abcd1234": {
			SlideshowID: "summer-trip-abcd1234",
			Name:        "Summer Trip",
			PhotoIDs:    []string{"p1"},
			PhotoURLs:   []string{"https://example.com/1"},
		},
	}}
	app := newSlideshowTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/slideshows/summer-trip-abcd1234", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool                   `json:"success"`
		Data    *dto.SlideshowResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Data)
	assert.Equal(t, "summer-trip-abcd1234", envelope.Data.SlideshowID)
	assert.Equal(t, []string{"https://example.com/1"}, envelope.Data.PhotoURLs)
}

func TestGetSlideshow_UnknownHandle(t *testing.T) {
	app := newSlideshowTestApp(&fakeSlideshowService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/slideshows/missing?minimal=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
