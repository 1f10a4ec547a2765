package repository

import (
	"context"
	"time"

	"newsblog/internal/domain/entity"
)

// NewsItemFilters restricts published_at. Nil bounds are open.
type NewsItemFilters struct {
	From *time.Time
	To   *time.Time
}

type NewsItemRepository interface {
	// ListPaginated returns items ordered by published_at DESC, then id ASC.
	ListPaginated(ctx context.Context, filters NewsItemFilters, offset, limit int) ([]*entity.NewsItem, error)
	// Create assigns item.ID and item.CreatedAt.
	Create(ctx context.Context, item *entity.NewsItem) error
	Count(ctx context.Context) (int64, error)
	// ExistingGUIDs reports which of guids are already stored for the source.
	ExistingGUIDs(ctx context.Context, sourceID int64, guids []string) (map[string]bool, error)
}
