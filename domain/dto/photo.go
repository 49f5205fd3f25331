package dto

import "time"

// SyncOutcome classifies what happened to one item during a batch operation.
type SyncOutcome string

const (
	SyncOutcomeSynced  SyncOutcome = "synced"  // new local record created
	SyncOutcomeSkipped SyncOutcome = "skipped" // record already existed
	SyncOutcomeFailed  SyncOutcome = "failed"  // persistence failed, see Reason
)

// SyncItemResult is the per-item outcome of a sync batch. Failures are
// reported here instead of being silently dropped.
type SyncItemResult struct {
	GooglePhotoID string      `json:"googlePhotoId"`
	Filename      string      `json:"filename"`
	Outcome       SyncOutcome `json:"outcome"`
	Reason        string      `json:"reason,omitempty"`
}

// PhotoItem is the wire projection of a remote media item plus local tags.
type PhotoItem struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	BaseURL      string    `json:"baseUrl"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	CreationTime time.Time `json:"creationTime"`
	CustomTags   []string  `json:"customTags"`
}

// SyncPhotosResponse carries the fetched items and the reconciliation results.
type SyncPhotosResponse struct {
	Photos  []PhotoItem      `json:"photos"`
	Results []SyncItemResult `json:"results"`
}

// TagRequest adds or removes one tag on one photo.
type TagRequest struct {
	TagName       string `json:"tagName" validate:"required,min=1"`
	GooglePhotoID string `json:"googlePhotoId" validate:"required"`
}

// SearchPhotosRequest is a local regex search over filenames and tags.
type SearchPhotosRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required,min=1"`
}

// SearchPhotoResult is a matched photo joined with its live base URL.
type SearchPhotoResult struct {
	GooglePhotoID string   `json:"googlePhotoId"`
	Filename      string   `json:"filename"`
	BaseURL       string   `json:"baseUrl,omitempty"`
	CustomTags    []string `json:"customTags"`
}

// UploadItemResult is the per-file outcome of an upload batch.
type UploadItemResult struct {
	Filename      string      `json:"filename"`
	GooglePhotoID string      `json:"googlePhotoId,omitempty"`
	Outcome       SyncOutcome `json:"outcome"`
	Reason        string      `json:"reason,omitempty"`
}

// PhotoRecordResponse is the stored metadata record as returned to clients.
type PhotoRecordResponse struct {
	GooglePhotoID string    `json:"googlePhotoId"`
	Filename      string    `json:"filename"`
	Size          int64     `json:"size"`
	MimeType      string    `json:"mimeType"`
	UploadedAt    time.Time `json:"uploadedAt"`
	Description   string    `json:"description"`
	CustomTags    []string  `json:"customTags"`
	Status        string    `json:"status"`
}
