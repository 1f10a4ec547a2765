package memory

import (
	"context"
	"fmt"
	"sort"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type NewsItemRepo struct{ store *NewsStore }

func NewNewsItemRepo(store *NewsStore) repository.NewsItemRepository {
	return &NewsItemRepo{store: store}
}

func (repo *NewsItemRepo) ListPaginated(
	_ context.Context,
	filters repository.NewsItemFilters,
	offset, limit int,
) ([]*entity.NewsItem, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("ListPaginated: negative offset %d or limit %d", offset, limit)
	}

	repo.store.mu.RLock()
	matched := make([]*entity.NewsItem, 0, len(repo.store.items))
	for i := range repo.store.items {
		it := repo.store.items[i]
		if filters.From != nil && it.PublishedAt.Before(*filters.From) {
			continue
		}
		if filters.To != nil && it.PublishedAt.After(*filters.To) {
			continue
		}
		matched = append(matched, &it)
	}
	repo.store.mu.RUnlock()

	// items are kept in insertion order, so a stable sort keeps id order on ties
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishedAt.After(matched[j].PublishedAt)
	})

	if offset >= len(matched) {
		return []*entity.NewsItem{}, nil
	}
	end := len(matched)
	if limit < end-offset {
		end = offset + limit
	}
	return matched[offset:end], nil
}

// Create does not check that the source exists.
func (repo *NewsItemRepo) Create(_ context.Context, item *entity.NewsItem) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.lastItemID++
	item.ID = repo.store.lastItemID
	item.CreatedAt = repo.store.now()
	repo.store.items = append(repo.store.items, *item)
	return nil
}

func (repo *NewsItemRepo) Count(_ context.Context) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()
	return int64(len(repo.store.items)), nil
}

func (repo *NewsItemRepo) ExistingGUIDs(_ context.Context, sourceID int64, guids []string) (map[string]bool, error) {
	want := make(map[string]bool, len(guids))
	for _, g := range guids {
		want[g] = true
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	found := make(map[string]bool, len(guids))
	for i := range repo.store.items {
		it := &repo.store.items[i]
		if it.SourceID == sourceID && want[it.GUID] {
			found[it.GUID] = true
		}
	}
	return found, nil
}
