// Package newssource provides the news source use cases.
package newssource

import (
	"context"
	"fmt"
	"strings"

	"newsblog/internal/domain/entity"
	"newsblog/internal/observability/metrics"
	"newsblog/internal/repository"
)

// CreateInput mirrors the create payload. A nil IsActive means true and an
// empty Country means entity.DefaultCountry.
type CreateInput struct {
	Name        string
	URL         string
	Description *string
	IsActive    *bool
	Country     string
}

type Service struct {
	Repo repository.NewsSourceRepository
}

// ListWithCounts returns every source with the number of its news items,
// ordered by id. The listing also refreshes the store-size gauges.
func (s *Service) ListWithCounts(ctx context.Context) ([]repository.NewsSourceWithCount, error) {
	out, err := s.Repo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources with counts: %w", err)
	}
	var items int64
	for _, sc := range out {
		items += sc.NewsCount
	}
	metrics.UpdateStoreTotals(int64(len(out)), items)
	return out, nil
}

func (s *Service) ListActive(ctx context.Context) ([]*entity.NewsSource, error) {
	out, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active sources: %w", err)
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.NewsSource, error) {
	src := &entity.NewsSource{
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
		IsActive:    true,
		Country:     in.Country,
	}
	if in.IsActive != nil {
		src.IsActive = *in.IsActive
	}
	if strings.TrimSpace(src.Country) == "" {
		src.Country = entity.DefaultCountry
	}

	if err := entity.Validate(src); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, src); err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	return src, nil
}
