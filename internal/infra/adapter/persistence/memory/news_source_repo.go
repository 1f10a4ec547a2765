package memory

import (
	"context"
	"fmt"
	"time"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type NewsSourceRepo struct{ store *NewsStore }

func NewNewsSourceRepo(store *NewsStore) repository.NewsSourceRepository {
	return &NewsSourceRepo{store: store}
}

func (repo *NewsSourceRepo) Get(_ context.Context, id int64) (*entity.NewsSource, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for i := range repo.store.sources {
		if repo.store.sources[i].ID == id {
			s := repo.store.sources[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (repo *NewsSourceRepo) ListWithCounts(_ context.Context) ([]repository.NewsSourceWithCount, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	counts := make(map[int64]int64, len(repo.store.sources))
	for i := range repo.store.items {
		counts[repo.store.items[i].SourceID]++
	}

	out := make([]repository.NewsSourceWithCount, 0, len(repo.store.sources))
	for i := range repo.store.sources {
		s := repo.store.sources[i]
		out = append(out, repository.NewsSourceWithCount{Source: &s, NewsCount: counts[s.ID]})
	}
	return out, nil
}

func (repo *NewsSourceRepo) ListActive(_ context.Context) ([]*entity.NewsSource, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	active := make([]*entity.NewsSource, 0, len(repo.store.sources))
	for i := range repo.store.sources {
		if repo.store.sources[i].IsActive {
			s := repo.store.sources[i]
			active = append(active, &s)
		}
	}
	return active, nil
}

func (repo *NewsSourceRepo) Create(_ context.Context, source *entity.NewsSource) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.lastSourceID++
	source.ID = repo.store.lastSourceID
	source.CreatedAt = repo.store.now()
	repo.store.sources = append(repo.store.sources, *source)
	return nil
}

func (repo *NewsSourceRepo) TouchParsedAt(_ context.Context, id int64, t time.Time) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for i := range repo.store.sources {
		if repo.store.sources[i].ID == id {
			parsed, updated := t, t
			repo.store.sources[i].LastParsedAt = &parsed
			repo.store.sources[i].UpdatedAt = &updated
			return nil
		}
	}
	return fmt.Errorf("TouchParsedAt: source %d: %w", id, entity.ErrNotFound)
}
