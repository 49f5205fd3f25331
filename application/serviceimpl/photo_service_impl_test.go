package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"phototagger/domain/dto"
	"phototagger/domain/models"
	"phototagger/domain/services"
)

// fakePhotoRepo keeps records in memory keyed by Google photo ID.
type fakePhotoRepo struct {
	photos    map[string]*models.Photo
	createErr error
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: make(map[string]*models.Photo)}
}

func (r *fakePhotoRepo) Create(ctx context.Context, photo *models.Photo) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.photos[photo.GooglePhotoID]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.photos[photo.GooglePhotoID] = photo
	return nil
}

func (r *fakePhotoRepo) GetByGooglePhotoID(ctx context.Context, googlePhotoID string) (*models.Photo, error) {
	if photo, ok := r.photos[googlePhotoID]; ok {
		return photo, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePhotoRepo) GetByGooglePhotoIDAndOwner(ctx context.Context, googlePhotoID, ownerEmail string) (*models.Photo, error) {
	if photo, ok := r.photos[googlePhotoID]; ok && photo.OwnerEmail == ownerEmail {
		return photo, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePhotoRepo) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error {
	for _, photo := range r.photos {
		if photo.ID == id {
			photo.CustomTags = models.StringSlice(tags)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePhotoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for key, photo := range r.photos {
		if photo.ID == id {
			delete(r.photos, key)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePhotoRepo) SearchByOwner(ctx context.Context, ownerEmail, pattern string) ([]models.Photo, error) {
	var out []models.Photo
	for _, photo := range r.photos {
		if photo.OwnerEmail == ownerEmail {
			out = append(out, *photo)
		}
	}
	return out, nil
}

// fakeLibrary serves canned media items.
type fakeLibrary struct {
	items      []services.MediaItem
	listErr    error
	getErr     error
	uploadErr  error
	deleteErr  error
	deletedIDs []string
}

func (l *fakeLibrary) ListMediaItems(ctx context.Context, accessToken string, filter services.MediaFilter) ([]services.MediaItem, error) {
	if l.listErr != nil {
		return nil, l.listErr
	}
	return l.items, nil
}

func (l *fakeLibrary) GetMediaItem(ctx context.Context, accessToken, mediaItemID string) (*services.MediaItem, error) {
	if l.getErr != nil {
		return nil, l.getErr
	}
	for _, item := range l.items {
		if item.ID == mediaItemID {
			found := item
			return &found, nil
		}
	}
	return nil, errors.New("media item not found")
}

func (l *fakeLibrary) UploadMedia(ctx context.Context, accessToken, filename, description string, data []byte) (*services.MediaItem, error) {
	if l.uploadErr != nil {
		return nil, l.uploadErr
	}
	return &services.MediaItem{
		ID:           "uploaded-" + filename,
		Filename:     filename,
		CreationTime: time.Now(),
	}, nil
}

func (l *fakeLibrary) DeleteMedia(ctx context.Context, accessToken, mediaItemID string) error {
	if l.deleteErr != nil {
		return l.deleteErr
	}
	l.deletedIDs = append(l.deletedIDs, mediaItemID)
	return nil
}

func (l *fakeLibrary) GetProfile(ctx context.Context, accessToken string) (*services.PersonProfile, error) {
	return &services.PersonProfile{Name: "Test User", Email: "user@example.com"}, nil
}

const testOwner = "user@example.com"

func mediaItemFixture(id string) services.MediaItem {
	return services.MediaItem{
		ID:           id,
		Filename:     id + ".jpg",
		BaseURL:      "https://lh3.googleusercontent.com/" + id,
		MimeType:     "image/jpeg",
		Size:         1024,
		CreationTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestSyncPhotos_CreatesNewRecords(t *testing.T) {
	repo := newFakePhotoRepo()
	library := &fakeLibrary{items: []services.MediaItem{mediaItemFixture("p1"), mediaItemFixture("p2")}}
	svc := NewPhotoService(repo, library)

	resp, err := svc.SyncPhotos(context.Background(), testOwner, "token", services.MediaFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	for _, result := range resp.Results {
		assert.Equal(t, dto.SyncOutcomeSynced, result.Outcome)
	}
	assert.Len(t, repo.photos, 2)
	assert.Equal(t, testOwner, repo.photos["p1"].OwnerEmail)
	assert.Equal(t, models.PhotoStatusUploaded, repo.photos["p1"].Status)
}

func TestSyncPhotos_SkipsExistingAndKeepsTags(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.photos["p1"] = &models.Photo{
		ID:            uuid.New(),
		GooglePhotoID: "p1",
		CustomTags:    models.StringSlice{"beach"},
		OwnerEmail:    testOwner,
	}
	library := &fakeLibrary{items: []services.MediaItem{mediaItemFixture("p1"), mediaItemFixture("p2")}}
	svc := NewPhotoService(repo, library)

	resp, err := svc.SyncPhotos(context.Background(), testOwner, "token", services.MediaFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, dto.SyncOutcomeSkipped, resp.Results[0].Outcome)
	assert.Equal(t, dto.SyncOutcomeSynced, resp.Results[1].Outcome)

	// The existing record's tags surface in the photo listing
	assert.Equal(t, []string{"beach"}, resp.Photos[0].CustomTags)
	assert.Empty(t, resp.Photos[1].CustomTags)
}

func TestSyncPhotos_DuplicateKeyOnInsertIsSkipped(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.createErr = gorm.ErrDuplicatedKey
	library := &fakeLibrary{items: []services.MediaItem{mediaItemFixture("p1")}}
	svc := NewPhotoService(repo, library)

	resp, err := svc.SyncPhotos(context.Background(), testOwner, "token", services.MediaFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, dto.SyncOutcomeSkipped, resp.Results[0].Outcome)
	assert.Empty(t, resp.Results[0].Reason)
}

func TestSyncPhotos_PersistenceFailureIsReportedPerItem(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.createErr = errors.New("disk full")
	library := &fakeLibrary{items: []services.MediaItem{mediaItemFixture("p1")}}
	svc := NewPhotoService(repo, library)

	resp, err := svc.SyncPhotos(context.Background(), testOwner, "token", services.MediaFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, dto.SyncOutcomeFailed, resp.Results[0].Outcome)
	assert.Contains(t, resp.Results[0].Reason, "disk full")
}

func TestSyncPhotos_RemoteFailureAbortsSync(t *testing.T) {
	repo := newFakePhotoRepo()
	library := &fakeLibrary{listErr: errors.New("upstream 500")}
	svc := NewPhotoService(repo, library)

	_, err := svc.SyncPhotos(context.Background(), testOwner, "token", services.MediaFilter{})
	assert.Error(t, err)
	assert.Empty(t, repo.photos)
}

func TestAddTag_SetSemantics(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.photos["p1"] = &models.Photo{
		ID:            uuid.New(),
		GooglePhotoID: "p1",
		CustomTags:    models.StringSlice{"beach"},
		OwnerEmail:    testOwner,
	}
	svc := NewPhotoService(repo, &fakeLibrary{})

	record, err := svc.AddTag(context.Background(), testOwner, dto.TagRequest{TagName: "sunset", GooglePhotoID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"beach", "sunset"}, record.CustomTags)

	// Re-adding the same tag leaves the set unchanged
	record, err = svc.AddTag(context.Background(), testOwner, dto.TagRequest{TagName: "sunset", GooglePhotoID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"beach", "sunset"}, record.CustomTags)
}

func TestAddTag_UnknownPhoto(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo(), &fakeLibrary{})

	_, err := svc.AddTag(context.Background(), testOwner, dto.TagRequest{TagName: "x", GooglePhotoID: "missing"})
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestAddTag_OtherOwnersPhotoIsInvisible(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.photos["p1"] = &models.Photo{
		ID:            uuid.New(),
		GooglePhotoID: "p1",
		OwnerEmail:    "someone-else@example.com",
	}
	svc := NewPhotoService(repo, &fakeLibrary{})

	_, err := svc.AddTag(context.Background(), testOwner, dto.TagRequest{TagName: "x", GooglePhotoID: "p1"})
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestRemoveTag(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.photos["p1"] = &models.Photo{
		ID:            uuid.New(),
		GooglePhotoID: "p1",
		CustomTags:    models.StringSlice{"beach", "sunset"},
		OwnerEmail:    testOwner,
	}
	svc := NewPhotoService(repo, &fakeLibrary{})

	record, err := svc.RemoveTag(context.Background(), testOwner, dto.TagRequest{TagName: "beach", GooglePhotoID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sunset"}, record.CustomTags)

	// Removing an absent tag is a no-op and still returns the record
	record, err = svc.RemoveTag(context.Background(), testOwner, dto.TagRequest{TagName: "beach", GooglePhotoID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sunset"}, record.CustomTags)
}

func TestDeletePhoto(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.photos["p1"] = &models.Photo{
		ID:            uuid.New(),
		GooglePhotoID: "p1",
		OwnerEmail:    testOwner,
	}
	library := &fakeLibrary{}
	svc := NewPhotoService(repo, library)

	require.NoError(t, svc.DeletePhoto(context.Background(), testOwner, "token", "p1"))
	assert.Equal(t, []string{"p1"}, library.deletedIDs)
	assert.Empty(t, repo.photos)
}

func TestDeletePhoto_RemoteFailureKeepsRecord(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.photos["p1"] = &models.Photo{
		ID:            uuid.New(),
		GooglePhotoID: "p1",
		OwnerEmail:    testOwner,
	}
	library := &fakeLibrary{deleteErr: errors.New("drive unavailable")}
	svc := NewPhotoService(repo, library)

	err := svc.DeletePhoto(context.Background(), testOwner, "token", "p1")
	assert.Error(t, err)
	assert.Len(t, repo.photos, 1)
}

func TestUploadPhotos_PerFileOutcomes(t *testing.T) {
	repo := newFakePhotoRepo()
	library := &fakeLibrary{}
	svc := NewPhotoService(repo, library)

	files := []services.UploadFile{
		{Filename: "a.jpg", MimeType: "image/jpeg", Data: []byte("aaa"), Tags: []string{"beach", "beach", "sunset"}},
		{Filename: "b.jpg", MimeType: "image/jpeg", Data: []byte("bbb")},
	}

	results, err := svc.UploadPhotos(context.Background(), testOwner, "token", files)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, dto.SyncOutcomeSynced, results[0].Outcome)
	assert.Equal(t, "uploaded-a.jpg", results[0].GooglePhotoID)

	// Tags are deduped on the stored record
	assert.Equal(t, models.StringSlice{"beach", "sunset"}, repo.photos["uploaded-a.jpg"].CustomTags)
}

func TestUploadPhotos_FailuresDoNotAbortBatch(t *testing.T) {
	repo := newFakePhotoRepo()
	library := &fakeLibrary{uploadErr: errors.New("quota exceeded")}
	svc := NewPhotoService(repo, library)

	results, err := svc.UploadPhotos(context.Background(), testOwner, "token", []services.UploadFile{
		{Filename: "a.jpg", Data: []byte("aaa")},
		{Filename: "b.jpg", Data: []byte("bbb")},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, result := range results {
		assert.Equal(t, dto.SyncOutcomeFailed, result.Outcome)
		assert.Contains(t, result.Reason, "quota exceeded")
	}
	assert.Empty(t, repo.photos)
}

func TestSearchPhotos_JoinsLiveURLs(t *testing.T) {
	repo := newFakePhotoRepo()
	repo.photos["p1"] = &models.Photo{
		ID:            uuid.New(),
		GooglePhotoID: "p1",
		Filename:      "p1.jpg",
		CustomTags:    models.StringSlice{"beach"},
		OwnerEmail:    testOwner,
	}
	repo.photos["p2"] = &models.Photo{
		ID:            uuid.New(),
		GooglePhotoID: "p2",
		Filename:      "p2.jpg",
		OwnerEmail:    testOwner,
	}
	// Only p1 is still present remotely
	library := &fakeLibrary{items: []services.MediaItem{mediaItemFixture("p1")}}
	svc := NewPhotoService(repo, library)

	results, err := svc.SearchPhotos(context.Background(), testOwner, "token", "p")
	require.NoError(t, err)
	require.Len(t, results, 2)

	byID := make(map[string]dto.SearchPhotoResult)
	for _, result := range results {
		byID[result.GooglePhotoID] = result
	}
	assert.Equal(t, "https://lh3.googleusercontent.com/p1=w500-h500", byID["p1"].BaseURL)
	assert.Empty(t, byID["p2"].BaseURL)
}

func TestSearchPhotos_InvalidPattern(t *testing.T) {
	svc := NewPhotoService(newFakePhotoRepo(), &fakeLibrary{})

	_, err := svc.SearchPhotos(context.Background(), testOwner, "token", "([unclosed")
	assert.Error(t, err)
}

func TestSearchPhotos_NoMatchesSkipsRemoteFetch(t *testing.T) {
	library := &fakeLibrary{listErr: errors.New("should not be called")}
	svc := NewPhotoService(newFakePhotoRepo(), library)

	results, err := svc.SearchPhotos(context.Background(), testOwner, "token", "anything")
	require.NoError(t, err)
	assert.Empty(t, results)
}
