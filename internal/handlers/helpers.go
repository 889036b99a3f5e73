package handlers

import (
	"path/filepath"
	"strings"
	"time"
)

// contentDateLayouts are the timestamp formats accepted from dashboard
// forms, most specific first.
var contentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseContentDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range contentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var videoExtensions = map[string]bool{"mp4": true, "mov": true, "webm": true}
var imageExtensions = map[string]bool{"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true}

// allowedFile reports whether the upload extension is in the whitelist and
// returns the derived media type.
func allowedFile(filename string) (mediaType string, ok bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch {
	case videoExtensions[ext]:
		return "video", true
	case imageExtensions[ext]:
		return "image", true
	default:
		return "", false
	}
}

// sanitizeFilename keeps the base name and replaces anything outside a
// conservative character set, mirroring the original upload handling.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == "/" {
		return "file"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
