package memory_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsblog/internal/domain/entity"
	"newsblog/internal/infra/adapter/persistence/memory"
	"newsblog/internal/repository"
)

var fixedNow = time.Date(2024, time.May, 16, 12, 0, 0, 0, time.UTC)

func newNewsRepos() (repository.NewsSourceRepository, repository.NewsItemRepository) {
	store := memory.NewNewsStore(func() time.Time { return fixedNow })
	return memory.NewNewsSourceRepo(store), memory.NewNewsItemRepo(store)
}

func item(sourceID int64, guid string, published time.Time) *entity.NewsItem {
	return &entity.NewsItem{SourceID: sourceID, Title: guid, GUID: guid, PublishedAt: published}
}

func TestNewsSourceRepo_CreateStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	sources, _ := newNewsRepos()

	src := &entity.NewsSource{Name: "Lenta", URL: "https://lenta.ru/rss", IsActive: true, Country: "rus"}
	require.NoError(t, sources.Create(ctx, src))

	assert.Equal(t, int64(1), src.ID)
	assert.Equal(t, fixedNow, src.CreatedAt)
	assert.Nil(t, src.LastParsedAt)
}

func TestNewsSourceRepo_ListWithCountsIncludesEmptySources(t *testing.T) {
	ctx := context.Background()
	sources, items := newNewsRepos()

	require.NoError(t, sources.Create(ctx, &entity.NewsSource{Name: "A", URL: "a", IsActive: true}))
	require.NoError(t, sources.Create(ctx, &entity.NewsSource{Name: "B", URL: "b", IsActive: true}))
	require.NoError(t, items.Create(ctx, item(1, "g1", fixedNow)))
	require.NoError(t, items.Create(ctx, item(1, "g2", fixedNow)))

	got, err := sources.ListWithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Source.Name)
	assert.Equal(t, int64(2), got[0].NewsCount)
	assert.Equal(t, "B", got[1].Source.Name)
	assert.Equal(t, int64(0), got[1].NewsCount)
}

func TestNewsSourceRepo_ListActiveAndTouch(t *testing.T) {
	ctx := context.Background()
	sources, _ := newNewsRepos()

	require.NoError(t, sources.Create(ctx, &entity.NewsSource{Name: "on", URL: "a", IsActive: true}))
	require.NoError(t, sources.Create(ctx, &entity.NewsSource{Name: "off", URL: "b", IsActive: false}))

	active, err := sources.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "on", active[0].Name)

	parsed := fixedNow.Add(time.Hour)
	require.NoError(t, sources.TouchParsedAt(ctx, 1, parsed))
	got, err := sources.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got.LastParsedAt)
	assert.Equal(t, parsed, *got.LastParsedAt)
	assert.Equal(t, parsed, *got.UpdatedAt)

	err = sources.TouchParsedAt(ctx, 9, parsed)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestNewsItemRepo_ListPaginatedOrdering(t *testing.T) {
	ctx := context.Background()
	_, items := newNewsRepos()

	base := fixedNow.Add(-48 * time.Hour)
	// ranks by published_at desc: g5, g4, (g2, g3 tie in insertion order), g1
	require.NoError(t, items.Create(ctx, item(1, "g1", base)))
	require.NoError(t, items.Create(ctx, item(1, "g2", base.Add(time.Hour))))
	require.NoError(t, items.Create(ctx, item(1, "g3", base.Add(time.Hour))))
	require.NoError(t, items.Create(ctx, item(1, "g4", base.Add(2*time.Hour))))
	require.NoError(t, items.Create(ctx, item(1, "g5", base.Add(3*time.Hour))))

	guids := func(list []*entity.NewsItem) []string {
		out := make([]string, 0, len(list))
		for _, it := range list {
			out = append(out, it.GUID)
		}
		return out
	}

	page1, err := items.ListPaginated(ctx, repository.NewsItemFilters{}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"g5", "g4"}, guids(page1))

	page2, err := items.ListPaginated(ctx, repository.NewsItemFilters{}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"g2", "g3"}, guids(page2))

	page3, err := items.ListPaginated(ctx, repository.NewsItemFilters{}, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, guids(page3))

	beyond, err := items.ListPaginated(ctx, repository.NewsItemFilters{}, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestNewsItemRepo_ListPaginatedBounds(t *testing.T) {
	ctx := context.Background()
	_, items := newNewsRepos()
	require.NoError(t, items.Create(ctx, item(1, "g1", fixedNow)))
	require.NoError(t, items.Create(ctx, item(1, "g2", fixedNow)))

	_, err := items.ListPaginated(ctx, repository.NewsItemFilters{}, -20, 20)
	require.Error(t, err)

	got, err := items.ListPaginated(ctx, repository.NewsItemFilters{}, 1, math.MaxInt)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "g2", got[0].GUID)
}

func TestNewsItemRepo_ListPaginatedFilters(t *testing.T) {
	ctx := context.Background()
	_, items := newNewsRepos()

	require.NoError(t, items.Create(ctx, item(1, "old", fixedNow.AddDate(0, 0, -8))))
	require.NoError(t, items.Create(ctx, item(1, "recent", fixedNow.AddDate(0, 0, -6))))

	from := fixedNow.AddDate(0, 0, -7)
	got, err := items.ListPaginated(ctx, repository.NewsItemFilters{From: &from}, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "recent", got[0].GUID)

	to := fixedNow.AddDate(0, 0, -7)
	got, err = items.ListPaginated(ctx, repository.NewsItemFilters{To: &to}, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].GUID)
}

func TestNewsItemRepo_ExistingGUIDs(t *testing.T) {
	ctx := context.Background()
	_, items := newNewsRepos()

	require.NoError(t, items.Create(ctx, item(1, "a", fixedNow)))
	require.NoError(t, items.Create(ctx, item(2, "b", fixedNow)))

	got, err := items.ExistingGUIDs(ctx, 1, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": true}, got)
}
