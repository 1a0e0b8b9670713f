package services

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/ayushkamni/desi-premium/internal/models"
)

// Extension allowlist with the MIME types each extension may legitimately
// carry. A file is accepted only when extension and MIME agree.
var allowedMIMEs = map[string]map[string]bool{
	".jpeg": {"image/jpeg": true},
	".jpg":  {"image/jpeg": true},
	".png":  {"image/png": true},
	".gif":  {"image/gif": true},
	".mp4":  {"video/mp4": true},
	".mov":  {"video/quicktime": true},
	".avi":  {"video/x-msvideo": true, "video/avi": true, "video/msvideo": true},
	".pdf":  {"application/pdf": true},
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".wmv": true,
	".flv": true, ".webm": true, ".mkv": true, ".m4v": true,
}

// ValidateFile rejects oversized files and anything outside the allowlist
// before the bytes are forwarded anywhere.
func ValidateFile(name, contentType string, size, maxSize int64) error {
	if size > maxSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(name))
	mimes, ok := allowedMIMEs[ext]
	if !ok {
		return ErrUnsupportedType
	}
	ct := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		ct = parsed
	}
	if !mimes[strings.ToLower(ct)] {
		return ErrUnsupportedType
	}
	return nil
}

// Classify buckets a staged file as video or image. Anything ambiguous falls
// back to image.
func Classify(name, contentType string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if videoExts[ext] || strings.HasPrefix(contentType, "video/") {
		return models.MediaTypeVideo
	}
	return models.MediaTypeImage
}
