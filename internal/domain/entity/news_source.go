package entity

import "time"

// DefaultCountry is assigned to a NewsSource created without a country.
const DefaultCountry = "rus"

// NewsSource is a publisher whose items are aggregated by the news service.
// LastParsedAt and UpdatedAt are only written by the feed ingest, never by the HTTP API.
type NewsSource struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name" validate:"required,max=255"`
	URL          string     `json:"url" validate:"required,max=500"`
	Description  *string    `json:"description"`
	IsActive     bool       `json:"is_active"`
	Country      string     `json:"country" validate:"max=10"`
	CreatedAt    time.Time  `json:"created_at"`
	LastParsedAt *time.Time `json:"last_parsed_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
