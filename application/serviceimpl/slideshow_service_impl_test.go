package serviceimpl

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"phototagger/domain/dto"
	"phototagger/domain/models"
	"phototagger/domain/services"
)

type fakeSlideshowRepo struct {
	slideshows map[string]*models.Slideshow
	createErr  error
}

func newFakeSlideshowRepo() *fakeSlideshowRepo {
	return &fakeSlideshowRepo{slideshows: make(map[string]*models.Slideshow)}
}

func (r *fakeSlideshowRepo) Create(ctx context.Context, slideshow *models.Slideshow) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.slideshows[slideshow.SlideshowID] = slideshow
	return nil
}

func (r *fakeSlideshowRepo) GetBySlideshowID(ctx context.Context, slideshowID string) (*models.Slideshow, error) {
	if slideshow, ok := r.slideshows[slideshowID]; ok {
		return slideshow, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSlideshowRepo) GetByOwner(ctx context.Context, ownerEmail string) ([]models.Slideshow, error) {
	var out []models.Slideshow
	for _, slideshow := range r.slideshows {
		if slideshow.OwnerEmail == ownerEmail {
			out = append(out, *slideshow)
		}
	}
	return out, nil
}

func (r *fakeSlideshowRepo) DeleteBySlideshowID(ctx context.Context, slideshowID, ownerEmail string) (int64, error) {
	if slideshow, ok := r.slideshows[slideshowID]; ok && slideshow.OwnerEmail == ownerEmail {
		delete(r.slideshows, slideshowID)
		return 1, nil
	}
	return 0, nil
}

func TestGenerateSlideshowID(t *testing.T) {
	pattern := regexp.MustCompile(`^summer-trip-[0-9a-f]{8}$`)

	got := GenerateSlideshowID("  Summer   Trip ")
	assert.True(t, pattern.MatchString(got), "unexpected handle: %s", got)

	// Handles are unique per call
	assert.NotEqual(t, got, GenerateSlideshowID("Summer Trip"))
}

func TestCreateSlideshow(t *testing.T) {
	repo := newFakeSlideshowRepo()
	library := &fakeLibrary{items: []services.MediaItem{mediaItemFixture("p1"), mediaItemFixture("p2")}}
	svc := NewSlideshowService(repo, library)

	resp, err := svc.CreateSlideshow(context.Background(), testOwner, "token", dto.CreateSlideshowRequest{
		Name:     "Summer Trip",
		PhotoIDs: []string{"p1", "p2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Summer Trip", resp.Name)
	assert.Equal(t, []string{"p1", "p2"}, resp.PhotoIDs)
	assert.Equal(t, []string{
		"https://lh3.googleusercontent.com/p1=w500-h500",
		"https://lh3.googleusercontent.com/p2=w500-h500",
	}, resp.PhotoURLs)
	assert.Len(t, repo.slideshows, 1)
}

func TestCreateSlideshow_AllOrNothing(t *testing.T) {
	repo := newFakeSlideshowRepo()
	// p2 is unknown to the library
	library := &fakeLibrary{items: []services.MediaItem{mediaItemFixture("p1")}}
	svc := NewSlideshowService(repo, library)

	_, err := svc.CreateSlideshow(context.Background(), testOwner, "token", dto.CreateSlideshowRequest{
		Name:     "Broken",
		PhotoIDs: []string{"p1", "p2"},
	})
	assert.ErrorIs(t, err, ErrUnresolvablePhoto)
	assert.Empty(t, repo.slideshows, "nothing should be stored when any ID fails")
}

func TestCreateSlideshow_EmptyBaseURLIsUnresolvable(t *testing.T) {
	repo := newFakeSlideshowRepo()
	library := &fakeLibrary{items: []services.MediaItem{{ID: "p1", Filename: "p1.jpg"}}}
	svc := NewSlideshowService(repo, library)

	_, err := svc.CreateSlideshow(context.Background(), testOwner, "token", dto.CreateSlideshowRequest{
		Name:     "No URL",
		PhotoIDs: []string{"p1"},
	})
	assert.ErrorIs(t, err, ErrUnresolvablePhoto)
}

func TestGetSlideshow(t *testing.T) {
	repo := newFakeSlideshowRepo()
	repo.slideshows["trip-abcd1234"] = &models.Slideshow{
		SlideshowID: "trip-abcd1234",
		Name:        "Trip",
		PhotoURLs:   models.StringSlice{"https://example.com/1"},
		OwnerEmail:  testOwner,
	}
	svc := NewSlideshowService(repo, &fakeLibrary{})

	resp, err := svc.GetSlideshow(context.Background(), "trip-abcd1234")
	require.NoError(t, err)
	assert.Equal(t, "Trip", resp.Name)

	_, err = svc.GetSlideshow(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSlideshowNotFound)
}

func TestDeleteSlideshow(t *testing.T) {
	repo := newFakeSlideshowRepo()
	repo.slideshows["trip-abcd1234"] = &models.Slideshow{
		SlideshowID: "trip-abcd1234",
		OwnerEmail:  testOwner,
	}
	svc := NewSlideshowService(repo, &fakeLibrary{})

	require.NoError(t, svc.DeleteSlideshow(context.Background(), testOwner, "trip-abcd1234"))
	assert.Empty(t, repo.slideshows)

	err := svc.DeleteSlideshow(context.Background(), testOwner, "trip-abcd1234")
	assert.ErrorIs(t, err, ErrSlideshowNotFound)
}

func TestDeleteSlideshow_OtherOwner(t *testing.T) {
	repo := newFakeSlideshowRepo()
	repo.slideshows["trip-abcd1234"] = &models.Slideshow{
		SlideshowID: "trip-abcd1234",
		OwnerEmail:  "someone-else@example.com",
	}
	svc := NewSlideshowService(repo, &fakeLibrary{})

	err := svc.DeleteSlideshow(context.Background(), testOwner, "trip-abcd1234")
	assert.ErrorIs(t, err, ErrSlideshowNotFound)
	assert.Len(t, repo.slideshows, 1)
}

func TestCreateSlideshow_StoreFailure(t *testing.T) {
	repo := newFakeSlideshowRepo()
	repo.createErr = errors.New("db down")
	library := &fakeLibrary{items: []services.MediaItem{mediaItemFixture("p1")}}
	svc := NewSlideshowService(repo, library)

	_, err := svc.CreateSlideshow(context.Background(), testOwner, "token", dto.CreateSlideshowRequest{
		Name:     "Trip",
		PhotoIDs: []string{"p1"},
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnresolvablePhoto)
}
