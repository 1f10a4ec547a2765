package repository

import (
	"context"
	"time"

	"newsblog/internal/domain/entity"
)

// NewsSourceWithCount pairs a source with the number of items referencing it.
type NewsSourceWithCount struct {
	Source    *entity.NewsSource
	NewsCount int64
}

type NewsSourceRepository interface {
	Get(ctx context.Context, id int64) (*entity.NewsSource, error)
	// ListWithCounts returns every source, including those without items, ordered by id.
	ListWithCounts(ctx context.Context) ([]NewsSourceWithCount, error)
	ListActive(ctx context.Context) ([]*entity.NewsSource, error)
	// Create assigns source.ID and source.CreatedAt.
	Create(ctx context.Context, source *entity.NewsSource) error
	// TouchParsedAt stamps last_parsed_at and updated_at.
	TouchParsedAt(ctx context.Context, id int64, t time.Time) error
}
