package repository

import (
	"context"

	"github.com/ayushkamni/desi-premium/internal/models"
)

// MediaUpdate carries a partial update: nil fields are left untouched in the
// stored document. Tags replaces the whole list when set (order preserved,
// duplicates kept).
type MediaUpdate struct {
	Title        *string
	Description  *string
	MediaURL     *string
	ThumbnailURL *string
	Category     *string
	Type         *string
	Tags         *[]string
}

func (u MediaUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.MediaURL == nil &&
		u.ThumbnailURL == nil && u.Category == nil && u.Type == nil && u.Tags == nil
}

type MediaRepository interface {
	Insert(ctx context.Context, m *models.MediaItem) error
	FindByID(ctx context.Context, id string) (*models.MediaItem, error)
	// List returns items newest first.
	List(ctx context.Context) ([]models.MediaItem, error)
	Update(ctx context.Context, id string, upd MediaUpdate) (*models.MediaItem, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
