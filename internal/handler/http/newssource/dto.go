// Package newssource serves the news service's /sources endpoints.
package newssource

import (
	"time"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type DTO struct {
	ID           int64      `json:"id" example:"1"`
	Name         string     `json:"name" example:"Lenta.ru"`
	URL          string     `json:"url" example:"https://lenta.ru/rss/news"`
	Description  *string    `json:"description"`
	IsActive     bool       `json:"is_active" example:"true"`
	Country      string     `json:"country" example:"rus"`
	CreatedAt    time.Time  `json:"created_at" example:"2024-01-01T00:00:00Z"`
	LastParsedAt *time.Time `json:"last_parsed_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// WithCountDTO is a source in the listing, with the number of its items.
type WithCountDTO struct {
	DTO
	NewsCount int64 `json:"news_count" example:"42"`
}

type CreateRequest struct {
	Name        string  `json:"name" example:"Lenta.ru"`
	URL         string  `json:"url" example:"https://lenta.ru/rss/news"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active" example:"true"`
	Country     string  `json:"country" example:"rus"`
}

func toDTO(s *entity.NewsSource) DTO {
	return DTO{
		ID:           s.ID,
		Name:         s.Name,
		URL:          s.URL,
		Description:  s.Description,
		IsActive:     s.IsActive,
		Country:      s.Country,
		CreatedAt:    s.CreatedAt,
		LastParsedAt: s.LastParsedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toWithCountDTO(s repository.NewsSourceWithCount) WithCountDTO {
	return WithCountDTO{DTO: toDTO(s.Source), NewsCount: s.NewsCount}
}
