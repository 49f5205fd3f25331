package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoHasTag(t *testing.T) {
	photo := &Photo{CustomTags: StringSlice{"beach", "sunset"}}

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{"present", "beach", true},
		{"absent", "mountain", false},
		{"case_sensitive", "Beach", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, photo.HasTag(tt.tag))
		})
	}
}

func TestPhotoAddTag(t *testing.T) {
	photo := &Photo{CustomTags: StringSlice{"beach"}}

	photo.AddTag("sunset")
	assert.Equal(t, StringSlice{"beach", "sunset"}, photo.CustomTags)

	// Adding an existing tag is a no-op
	photo.AddTag("beach")
	assert.Equal(t, StringSlice{"beach", "sunset"}, photo.CustomTags)
}

func TestPhotoRemoveTag(t *testing.T) {
	photo := &Photo{CustomTags: StringSlice{"beach", "sunset", "family"}}

	photo.RemoveTag("sunset")
	assert.Equal(t, StringSlice{"beach", "family"}, photo.CustomTags)

	// Removing an absent tag is a no-op
	photo.RemoveTag("mountain")
	assert.Equal(t, StringSlice{"beach", "family"}, photo.CustomTags)

	photo.RemoveTag("beach")
	photo.RemoveTag("family")
	assert.Empty(t, photo.CustomTags)
}

func TestStringSliceValue(t *testing.T) {
	tests := []struct {
		name  string
		slice StringSlice
		want  string
	}{
		{"nil", nil, "[]"},
		{"empty", StringSlice{}, "[]"},
		{"values", StringSlice{"a", "b"}, `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.slice.Value()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringSliceScan(t *testing.T) {
	var s StringSlice
	assert.NoError(t, s.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringSlice{"a", "b"}, s)

	var fromString StringSlice
	assert.NoError(t, fromString.Scan(`["x"]`))
	assert.Equal(t, StringSlice{"x"}, fromString)

	var fromNil StringSlice
	assert.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)

	var bad StringSlice
	assert.Error(t, bad.Scan(42))
}
