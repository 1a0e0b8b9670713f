package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryFree    = "free"
	CategoryPremium = "premium"
)

const (
	MediaTypeVideo = "video"
	MediaTypeImage = "image"
	MediaTypeLink  = "link"
)

// MediaItem is one catalog entry. MediaURL is never empty on a persisted
// item; the bytes behind it live on the external media host, this record
// only keeps the reference.
type MediaItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	MediaURL     string             `bson:"media_url" json:"mediaUrl"`
	ThumbnailURL string             `bson:"thumbnail_url,omitempty" json:"thumbnailUrl,omitempty"`
	Category     string             `bson:"category" json:"category"`
	Type         string             `bson:"type" json:"type"`
	Tags         []string           `bson:"tags" json:"tags"`
	Views        int64              `bson:"views" json:"views"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

func ValidCategory(c string) bool {
	return c == CategoryFree || c == CategoryPremium
}

func ValidMediaType(t string) bool {
	return t == MediaTypeVideo || t == MediaTypeImage || t == MediaTypeLink
}
