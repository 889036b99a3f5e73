package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		filename  string
		mediaType string
		ok        bool
	}{
		{"photo.jpg", "image", true},
		{"photo.JPEG", "image", true},
		{"banner.webp", "image", true},
		{"clip.mp4", "video", true},
		{"clip.MOV", "video", true},
		{"notes.pdf", "", false},
		{"script.sh", "", false},
		{"noextension", "", false},
	}
	for _, tt := range tests {
		mediaType, ok := allowedFile(tt.filename)
		assert.Equal(t, tt.ok, ok, tt.filename)
		assert.Equal(t, tt.mediaType, mediaType, tt.filename)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "summer-fest_2026.jpg", sanitizeFilename("summer-fest_2026.jpg"))
	assert.Equal(t, "f_te.png", sanitizeFilename("fête.png"))
	assert.Equal(t, "passwd", sanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "file", sanitizeFilename(""))
}

func TestParseContentDate(t *testing.T) {
	parsed, ok := parseContentDate("2026-03-14")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), parsed)

	parsed, ok = parseContentDate("2026-03-14T18:30")
	require.True(t, ok)
	assert.Equal(t, 18, parsed.Hour())

	_, ok = parseContentDate("March 14th")
	assert.False(t, ok)

	_, ok = parseContentDate("  ")
	assert.False(t, ok)
}
