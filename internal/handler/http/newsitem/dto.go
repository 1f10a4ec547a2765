// Package newsitem serves the news service's /news endpoints.
package newsitem

import (
	"time"

	"newsblog/internal/domain/entity"
)

type DTO struct {
	ID          int64      `json:"id" example:"1"`
	SourceID    int64      `json:"source_id" example:"1"`
	Title       string     `json:"title" example:"Central bank keeps the key rate"`
	Description *string    `json:"description"`
	Content     *string    `json:"content"`
	Link        *string    `json:"link" example:"https://lenta.ru/news/2024/01/01/rate/"`
	ImageURL    *string    `json:"image_url"`
	GUID        string     `json:"guid" example:"https://lenta.ru/news/2024/01/01/rate/"`
	PublishedAt time.Time  `json:"published_at" example:"2024-01-01T10:00:00Z"`
	CreatedAt   time.Time  `json:"created_at" example:"2024-01-01T10:05:00Z"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// CreateRequest carries every NewsItem field except the generated ones.
type CreateRequest struct {
	SourceID    int64     `json:"source_id" example:"1"`
	Title       string    `json:"title" example:"Central bank keeps the key rate"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Link        *string   `json:"link"`
	ImageURL    *string   `json:"image_url"`
	GUID        string    `json:"guid" example:"urn:lenta:1"`
	PublishedAt time.Time `json:"published_at" example:"2024-01-01T10:00:00Z"`
}

func toDTO(n *entity.NewsItem) DTO {
	return DTO{
		ID:          n.ID,
		SourceID:    n.SourceID,
		Title:       n.Title,
		Description: n.Description,
		Content:     n.Content,
		Link:        n.Link,
		ImageURL:    n.ImageURL,
		GUID:        n.GUID,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
