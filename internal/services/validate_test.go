package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayushkamni/desi-premium/internal/models"
)

func TestValidateFile(t *testing.T) {
	const max = int64(100)

	tests := []struct {
		name        string
		fileName    string
		contentType string
		size        int64
		wantErr     error
	}{
		{"mp4 ok", "clip.mp4", "video/mp4", 50, nil},
		{"jpg ok", "photo.jpg", "image/jpeg", 50, nil},
		{"jpeg ok", "photo.jpeg", "image/jpeg", 50, nil},
		{"png ok", "photo.PNG", "image/png", 50, nil},
		{"gif ok", "anim.gif", "image/gif", 50, nil},
		{"mov ok", "clip.mov", "video/quicktime", 50, nil},
		{"avi variant ok", "clip.avi", "video/avi", 50, nil},
		{"pdf ok", "doc.pdf", "application/pdf", 50, nil},
		{"mime params stripped", "photo.jpg", "image/jpeg; charset=binary", 50, nil},
		{"too large", "clip.mp4", "video/mp4", 101, ErrFileTooLarge},
		{"unknown extension", "script.exe", "application/octet-stream", 50, ErrUnsupportedType},
		{"extension mime mismatch", "clip.mp4", "image/jpeg", 50, ErrUnsupportedType},
		{"renamed binary", "photo.jpg", "application/octet-stream", 50, ErrUnsupportedType},
		{"no extension", "README", "image/jpeg", 50, ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.fileName, tt.contentType, tt.size, max)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, models.MediaTypeVideo, Classify("clip.mp4", "video/mp4"))
	assert.Equal(t, models.MediaTypeVideo, Classify("clip.MOV", "video/quicktime"))
	assert.Equal(t, models.MediaTypeVideo, Classify("noext", "video/webm"))
	assert.Equal(t, models.MediaTypeImage, Classify("photo.jpg", "image/jpeg"))
	assert.Equal(t, models.MediaTypeImage, Classify("doc.pdf", "application/pdf"))
}
