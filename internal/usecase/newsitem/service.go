// Package newsitem provides the news item use cases: period-filtered paginated
// listing and creation.
package newsitem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsblog/internal/common/pagination"
	"newsblog/internal/domain/entity"
	"newsblog/internal/domain/period"
	"newsblog/internal/repository"
)

// MaxPageSize is the largest accepted ListInput.Size.
const MaxPageSize = pagination.MaxPageSize

// ErrInvalidListParams guards List against out-of-range paging. It is not a
// ValidationError: the HTTP layer checks bounds first, so reaching it is a bug.
var ErrInvalidListParams = errors.New("invalid list parameters")

type ListInput struct {
	Page   int
	Size   int
	Period string
}

type CreateInput struct {
	SourceID    int64
	Title       string
	Description *string
	Content     *string
	Link        *string
	ImageURL    *string
	GUID        string
	PublishedAt time.Time
}

type Service struct {
	Repo repository.NewsItemRepository
	// Now defaults to time.Now.
	Now func() time.Time
	// Location decides calendar days for period tokens. Nil keeps Now's zone.
	Location *time.Location
}

func (s *Service) now() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now()
	if s.Location != nil {
		t = t.In(s.Location)
	}
	return t
}

// List returns items newest first (ties by id ascending). Unknown period
// tokens apply no filter.
func (s *Service) List(ctx context.Context, in ListInput) ([]*entity.NewsItem, error) {
	if in.Page < 1 || in.Size < 1 || in.Size > MaxPageSize {
		return nil, fmt.Errorf("%w: page=%d size=%d", ErrInvalidListParams, in.Page, in.Size)
	}

	offset, ok := pagination.CalculateOffset(in.Page, in.Size)
	if !ok {
		return []*entity.NewsItem{}, nil
	}

	rng := period.Resolve(in.Period, s.now())
	filters := repository.NewsItemFilters{From: rng.From, To: rng.To}

	items, err := s.Repo.ListPaginated(ctx, filters, offset, in.Size)
	if err != nil {
		return nil, fmt.Errorf("list news items: %w", err)
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.NewsItem, error) {
	item := &entity.NewsItem{
		SourceID:    in.SourceID,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Link:        in.Link,
		ImageURL:    in.ImageURL,
		GUID:        in.GUID,
		PublishedAt: in.PublishedAt,
	}
	if err := entity.Validate(item); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create news item: %w", err)
	}
	return item, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count news items: %w", err)
	}
	return n, nil
}
