package entity

import "time"

// NewsItem is a single published entry of a NewsSource.
// GUID is meant to be unique per source, but nothing enforces it.
type NewsItem struct {
	ID          int64      `json:"id"`
	SourceID    int64      `json:"source_id" validate:"gt=0"`
	Title       string     `json:"title" validate:"required,max=500"`
	Description *string    `json:"description"`
	Content     *string    `json:"content"`
	Link        *string    `json:"link" validate:"omitempty,max=1000"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,max=500"`
	GUID        string     `json:"guid" validate:"required,max=500"`
	PublishedAt time.Time  `json:"published_at" validate:"required"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
