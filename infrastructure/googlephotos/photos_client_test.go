package googlephotos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phototagger/domain/services"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildSearchRequest(t *testing.T) {
	t.Run("no filter omits the date filter payload", func(t *testing.T) {
		req := buildSearchRequest(services.MediaFilter{}, "")
		assert.Equal(t, searchPageSize, req.PageSize)
		assert.Nil(t, req.Filters)
	})

	t.Run("page token is carried through", func(t *testing.T) {
		req := buildSearchRequest(services.MediaFilter{}, "next-page")
		assert.Equal(t, "next-page", req.PageToken)
	})

	t.Run("both bounds set", func(t *testing.T) {
		filter := services.MediaFilter{
			FromDate: datePtr(2024, time.March, 10),
			ToDate:   datePtr(2024, time.April, 20),
		}
		req := buildSearchRequest(filter, "")
		require.NotNil(t, req.Filters)
		require.Len(t, req.Filters.DateFilter.Ranges, 1)

		r := req.Filters.DateFilter.Ranges[0]
		assert.Equal(t, apiDate{Year: 2024, Month: 3, Day: 10}, r.StartDate)
		assert.Equal(t, apiDate{Year: 2024, Month: 4, Day: 20}, r.EndDate)
	})

	t.Run("open start bound widens to the epoch", func(t *testing.T) {
		filter := services.MediaFilter{ToDate: datePtr(2024, time.April, 20)}
		req := buildSearchRequest(filter, "")
		require.NotNil(t, req.Filters)

		r := req.Filters.DateFilter.Ranges[0]
		assert.Equal(t, apiDate{Year: 1970, Month: 1, Day: 1}, r.StartDate)
		assert.Equal(t, apiDate{Year: 2024, Month: 4, Day: 20}, r.EndDate)
	})

	t.Run("open end bound widens to the far future", func(t *testing.T) {
		filter := services.MediaFilter{FromDate: datePtr(2024, time.March, 10)}
		req := buildSearchRequest(filter, "")
		require.NotNil(t, req.Filters)

		r := req.Filters.DateFilter.Ranges[0]
		assert.Equal(t, apiDate{Year: 2024, Month: 3, Day: 10}, r.StartDate)
		assert.Equal(t, apiDate{Year: 2100, Month: 1, Day: 1}, r.EndDate)
	})
}

func TestToMediaItem(t *testing.T) {
	valid := mediaItem{
		ID:       "photo-1",
		Filename: "sunset.jpg",
		BaseURL:  "https://lh3.googleusercontent.com/abc",
		MimeType: "image/jpeg",
		MediaMetadata: &mediaMetadata{
			CreationTime: "2024-03-10T15:04:05Z",
			SizeBytes:    "2048",
		},
		Location: &mediaLocation{Description: "Lisbon, Portugal"},
	}

	t.Run("valid item", func(t *testing.T) {
		item, ok := toMediaItem(valid)
		require.True(t, ok)
		assert.Equal(t, "photo-1", item.ID)
		assert.Equal(t, "sunset.jpg", item.Filename)
		assert.Equal(t, int64(2048), item.Size)
		assert.Equal(t, "Lisbon, Portugal", item.Location)
		assert.Equal(t, time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC), item.CreationTime)
	})

	t.Run("missing metadata is rejected", func(t *testing.T) {
		item := valid
		item.MediaMetadata = nil
		_, ok := toMediaItem(item)
		assert.False(t, ok)
	})

	t.Run("empty creation time is rejected", func(t *testing.T) {
		item := valid
		item.MediaMetadata = &mediaMetadata{CreationTime: ""}
		_, ok := toMediaItem(item)
		assert.False(t, ok)
	})

	t.Run("unparseable creation time is rejected", func(t *testing.T) {
		item := valid
		item.MediaMetadata = &mediaMetadata{CreationTime: "last tuesday"}
		_, ok := toMediaItem(item)
		assert.False(t, ok)
	})

	t.Run("bad size defaults to zero", func(t *testing.T) {
		item := valid
		item.MediaMetadata = &mediaMetadata{
			CreationTime: "2024-03-10T15:04:05Z",
			SizeBytes:    "huge",
		}
		got, ok := toMediaItem(item)
		require.True(t, ok)
		assert.Equal(t, int64(0), got.Size)
	})

	t.Run("missing location is empty", func(t *testing.T) {
		item := valid
		item.Location = nil
		got, ok := toMediaItem(item)
		require.True(t, ok)
		assert.Equal(t, "", got.Location)
	})
}

func TestFilterMediaItems(t *testing.T) {
	items := []services.MediaItem{
		{ID: "a", CreationTime: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), Location: "Lisbon, Portugal"},
		{ID: "b", CreationTime: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), Location: "Porto"},
		{ID: "c", CreationTime: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC), Location: ""},
	}

	ids := func(filtered []services.MediaItem) []string {
		out := make([]string, 0, len(filtered))
		for _, item := range filtered {
			out = append(out, item.ID)
		}
		return out
	}

	t.Run("no filter keeps everything", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, ids(FilterMediaItems(items, services.MediaFilter{})))
	})

	t.Run("from date is inclusive", func(t *testing.T) {
		filter := services.MediaFilter{FromDate: datePtr(2024, time.March, 15)}
		got := FilterMediaItems(items, filter)
		assert.Equal(t, []string{"b", "c"}, ids(got))
	})

	t.Run("to date excludes later items", func(t *testing.T) {
		to := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
		filter := services.MediaFilter{ToDate: &to}
		got := FilterMediaItems(items, filter)
		assert.Equal(t, []string{"a", "b"}, ids(got))
	})

	t.Run("location match is case-insensitive substring", func(t *testing.T) {
		filter := services.MediaFilter{Location: "lisbon"}
		got := FilterMediaItems(items, filter)
		assert.Equal(t, []string{"a"}, ids(got))
	})

	t.Run("location filter drops items without location", func(t *testing.T) {
		filter := services.MediaFilter{Location: "por"}
		got := FilterMediaItems(items, filter)
		assert.Equal(t, []string{"a", "b"}, ids(got))
	})

	t.Run("combined filters", func(t *testing.T) {
		filter := services.MediaFilter{
			FromDate: datePtr(2024, time.March, 10),
			Location: "porto",
		}
		got := FilterMediaItems(items, filter)
		assert.Equal(t, []string{"b"}, ids(got))
	})
}
