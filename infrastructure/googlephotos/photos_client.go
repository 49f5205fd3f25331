package googlephotos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"phototagger/domain/services"
	"phototagger/pkg/config"
)

const (
	photosBaseURL     = "https://photoslibrary.googleapis.com/v1"
	peopleProfileURL  = "https://people.googleapis.com/v1/people/me?personFields=names,emailAddresses,birthdays,photos"
	searchPageSize    = 100
	scopePhotosRead   = "https://www.googleapis.com/auth/photoslibrary.readonly"
	scopePhotosAppend = "https://www.googleapis.com/auth/photoslibrary.appendonly"
)

// PhotosClient talks to the Google Photos Library, People, and Drive APIs
// with per-call credentials.
type PhotosClient struct {
	config     *oauth2.Config
	httpClient *http.Client
}

// TokenInfo represents OAuth token information
type TokenInfo struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
}

// NewPhotosClient creates a new Google Photos client
func NewPhotosClient(cfg config.GoogleOAuthConfig) *PhotosClient {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			scopePhotosRead,
			scopePhotosAppend,
			drive.DriveScope,
		},
		Endpoint: google.Endpoint,
	}

	return &PhotosClient{
		config:     oauthConfig,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// RefreshToken refreshes the access token using the refresh token
func (c *PhotosClient) RefreshToken(ctx context.Context, refreshToken string) (*TokenInfo, error) {
	token := &oauth2.Token{
		RefreshToken: refreshToken,
	}

	tokenSource := c.config.TokenSource(ctx, token)
	newToken, err := tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	return &TokenInfo{
		AccessToken:  newToken.AccessToken,
		RefreshToken: newToken.RefreshToken,
		TokenType:    newToken.TokenType,
		Expiry:       newToken.Expiry,
	}, nil
}

// Wire types for the Photos Library API

type mediaMetadata struct {
	CreationTime string `json:"creationTime"`
	Width        string `json:"width"`
	Height       string `json:"height"`
	SizeBytes    string `json:"sizeBytes"`
}

type mediaLocation struct {
	Description string `json:"description"`
}

type mediaItem struct {
	ID            string         `json:"id"`
	Filename      string         `json:"filename"`
	BaseURL       string         `json:"baseUrl"`
	MimeType      string         `json:"mimeType"`
	Description   string         `json:"description"`
	MediaMetadata *mediaMetadata `json:"mediaMetadata"`
	Location      *mediaLocation `json:"location"`
}

type searchRequest struct {
	PageSize  int            `json:"pageSize"`
	PageToken string         `json:"pageToken,omitempty"`
	Filters   *searchFilters `json:"filters,omitempty"`
}

type searchFilters struct {
	DateFilter *dateFilter `json:"dateFilter,omitempty"`
}

type dateFilter struct {
	Ranges []dateRange `json:"ranges"`
}

type dateRange struct {
	StartDate apiDate `json:"startDate"`
	EndDate   apiDate `json:"endDate"`
}

type apiDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type searchResponse struct {
	MediaItems    []mediaItem `json:"mediaItems"`
	NextPageToken string      `json:"nextPageToken"`
}

// buildSearchRequest builds one search page request. The date filter is only
// attached when at least one bound is set; an open bound widens to the
// epoch or the far future so the API range stays valid.
func buildSearchRequest(filter services.MediaFilter, pageToken string) searchRequest {
	req := searchRequest{
		PageSize:  searchPageSize,
		PageToken: pageToken,
	}

	if filter.FromDate == nil && filter.ToDate == nil {
		return req
	}

	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)
	if filter.FromDate != nil {
		start = *filter.FromDate
	}
	if filter.ToDate != nil {
		end = *filter.ToDate
	}

	req.Filters = &searchFilters{
		DateFilter: &dateFilter{
			Ranges: []dateRange{{
				StartDate: apiDate{Year: start.Year(), Month: int(start.Month()), Day: start.Day()},
				EndDate:   apiDate{Year: end.Year(), Month: int(end.Month()), Day: end.Day()},
			}},
		},
	}

	return req
}

// toMediaItem converts the wire item to the normalized projection.
// Items without a parseable creation time are rejected.
func toMediaItem(item mediaItem) (services.MediaItem, bool) {
	if item.MediaMetadata == nil || item.MediaMetadata.CreationTime == "" {
		return services.MediaItem{}, false
	}

	creationTime, err := time.Parse(time.RFC3339, item.MediaMetadata.CreationTime)
	if err != nil {
		return services.MediaItem{}, false
	}

	size := int64(0)
	if item.MediaMetadata.SizeBytes != "" {
		if parsed, err := strconv.ParseInt(item.MediaMetadata.SizeBytes, 10, 64); err == nil {
			size = parsed
		}
	}

	location := ""
	if item.Location != nil {
		location = item.Location.Description
	}

	return services.MediaItem{
		ID:           item.ID,
		Filename:     item.Filename,
		BaseURL:      item.BaseURL,
		MimeType:     item.MimeType,
		Size:         size,
		CreationTime: creationTime,
		Location:     location,
	}, true
}

// FilterMediaItems applies the client-side post-filter: inclusive date
// bounds and a case-insensitive location substring match. The server-side
// date filter has day granularity, so the bounds are re-checked here.
func FilterMediaItems(items []services.MediaItem, filter services.MediaFilter) []services.MediaItem {
	filtered := make([]services.MediaItem, 0, len(items))
	location := strings.ToLower(filter.Location)

	for _, item := range items {
		if filter.FromDate != nil && item.CreationTime.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && item.CreationTime.After(*filter.ToDate) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(item.Location), location) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

// ListMediaItems pages through mediaItems:search and returns the filtered
// items. Any page failure fails the whole listing.
func (c *PhotosClient) ListMediaItems(ctx context.Context, accessToken string, filter services.MediaFilter) ([]services.MediaItem, error) {
	var items []services.MediaItem
	pageToken := ""

	for {
		reqBody := buildSearchRequest(filter, pageToken)
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal search request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "POST", photosBaseURL+"/mediaItems:search", bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create search request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to search media items: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read search response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("media items search failed (%d): %s", resp.StatusCode, string(body))
		}

		var result searchResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("failed to parse search response: %w", err)
		}

		for _, raw := range result.MediaItems {
			if item, ok := toMediaItem(raw); ok {
				items = append(items, item)
			}
		}

		pageToken = result.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return FilterMediaItems(items, filter), nil
}

// GetMediaItem fetches a single media item by its Google Photos ID
func (c *PhotosClient) GetMediaItem(ctx context.Context, accessToken, mediaItemID string) (*services.MediaItem, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", photosBaseURL+"/mediaItems/"+mediaItemID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create media item request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get media item: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read media item response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media item fetch failed (%d): %s", resp.StatusCode, string(body))
	}

	var raw mediaItem
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse media item response: %w", err)
	}

	item, ok := toMediaItem(raw)
	if !ok {
		// Item exists but lacks a creation time; keep what we can.
		item = services.MediaItem{
			ID:       raw.ID,
			Filename: raw.Filename,
			BaseURL:  raw.BaseURL,
			MimeType: raw.MimeType,
		}
	}

	return &item, nil
}

type batchCreateRequest struct {
	NewMediaItems []newMediaItem `json:"newMediaItems"`
}

type newMediaItem struct {
	Description     string          `json:"description,omitempty"`
	SimpleMediaItem simpleMediaItem `json:"simpleMediaItem"`
}

type simpleMediaItem struct {
	FileName    string `json:"fileName"`
	UploadToken string `json:"uploadToken"`
}

type batchCreateResponse struct {
	NewMediaItemResults []struct {
		Status struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		} `json:"status"`
		MediaItem *mediaItem `json:"mediaItem"`
	} `json:"newMediaItemResults"`
}

// UploadMedia uploads raw bytes then creates the media item
func (c *PhotosClient) UploadMedia(ctx context.Context, accessToken, filename, description string, data []byte) (*services.MediaItem, error) {
	uploadToken, err := c.uploadBytes(ctx, accessToken, filename, data)
	if err != nil {
		return nil, err
	}

	reqBody := batchCreateRequest{
		NewMediaItems: []newMediaItem{{
			Description: description,
			SimpleMediaItem: simpleMediaItem{
				FileName:    filename,
				UploadToken: uploadToken,
			},
		}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", photosBaseURL+"/mediaItems:batchCreate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create batch create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create media item: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch create response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media item creation failed (%d): %s", resp.StatusCode, string(body))
	}

	var result batchCreateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse batch create response: %w", err)
	}
	if len(result.NewMediaItemResults) == 0 || result.NewMediaItemResults[0].MediaItem == nil {
		return nil, fmt.Errorf("media item creation returned no result")
	}

	first := result.NewMediaItemResults[0]
	item, ok := toMediaItem(*first.MediaItem)
	if !ok {
		item = services.MediaItem{
			ID:           first.MediaItem.ID,
			Filename:     first.MediaItem.Filename,
			BaseURL:      first.MediaItem.BaseURL,
			MimeType:     first.MediaItem.MimeType,
			CreationTime: time.Now(),
		}
	}

	return &item, nil
}

// uploadBytes pushes the raw bytes and returns the upload token
func (c *PhotosClient) uploadBytes(ctx context.Context, accessToken, filename string, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", photosBaseURL+"/uploads", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Goog-Upload-File-Name", filename)
	req.Header.Set("X-Goog-Upload-Protocol", "raw")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload bytes: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload failed (%d): %s", resp.StatusCode, string(body))
	}

	return string(body), nil
}

// DeleteMedia removes the backing file through the Drive API. The Photos
// Library API has no delete endpoint.
func (c *PhotosClient) DeleteMedia(ctx context.Context, accessToken, mediaItemID string) error {
	token := &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}

	client := c.config.Client(ctx, token)
	srv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("failed to create drive service: %w", err)
	}

	if err := srv.Files.Delete(mediaItemID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete media item: %w", err)
	}

	return nil
}

// People API wire types

type personResponse struct {
	Names []struct {
		DisplayName string `json:"displayName"`
		Metadata    struct {
			Primary bool `json:"primary"`
		} `json:"metadata"`
	} `json:"names"`
	EmailAddresses []struct {
		Value    string `json:"value"`
		Metadata struct {
			Primary bool `json:"primary"`
		} `json:"metadata"`
	} `json:"emailAddresses"`
	Birthdays []struct {
		Date *struct {
			Year  int `json:"year"`
			Month int `json:"month"`
			Day   int `json:"day"`
		} `json:"date"`
	} `json:"birthdays"`
	Photos []struct {
		URL string `json:"url"`
	} `json:"photos"`
}

// GetProfile fetches the authenticated user's People profile
func (c *PhotosClient) GetProfile(ctx context.Context, accessToken string) (*services.PersonProfile, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", peopleProfileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile fetch failed (%d): %s", resp.StatusCode, string(body))
	}

	var person personResponse
	if err := json.Unmarshal(body, &person); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	profile := &services.PersonProfile{}
	for _, name := range person.Names {
		if name.Metadata.Primary || profile.Name == "" {
			profile.Name = name.DisplayName
		}
	}
	for _, email := range person.EmailAddresses {
		if email.Metadata.Primary || profile.Email == "" {
			profile.Email = email.Value
		}
	}
	for _, birthday := range person.Birthdays {
		if birthday.Date != nil {
			profile.Birthday = fmt.Sprintf("%04d-%02d-%02d", birthday.Date.Year, birthday.Date.Month, birthday.Date.Day)
			break
		}
	}
	if len(person.Photos) > 0 {
		profile.PhotoURL = person.Photos[0].URL
	}

	return profile, nil
}

// ValidateConfig checks if the configuration is valid
func (c *PhotosClient) ValidateConfig() error {
	if c.config.ClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is not configured")
	}
	if c.config.ClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_SECRET is not configured")
	}
	return nil
}
