package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateBound(t *testing.T) {
	t.Run("empty value returns nil", func(t *testing.T) {
		got, err := parseDateBound("", false)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("rfc3339 is taken as-is", func(t *testing.T) {
		got, err := parseDateBound("2024-03-10T15:04:05Z", true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC), *got)
	})

	t.Run("date-only start of day", func(t *testing.T) {
		got, err := parseDateBound("2024-03-10", false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("date-only end of day", func(t *testing.T) {
		got, err := parseDateBound("2024-03-10", true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), *got)
	})

	t.Run("garbage errors", func(t *testing.T) {
		_, err := parseDateBound("not-a-date", false)
		assert.Error(t, err)
	})
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple", "beach,sunset", []string{"beach", "sunset"}},
		{"whitespace trimmed", " beach , sunset ", []string{"beach", "sunset"}},
		{"empty entries dropped", "beach,,sunset,", []string{"beach", "sunset"}},
		{"empty string", "", nil},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTags(tt.raw))
		})
	}
}
