package newsitem_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsblog/internal/common/pagination"
	"newsblog/internal/domain/entity"
	"newsblog/internal/handler/http/newsitem"
	"newsblog/internal/infra/adapter/persistence/memory"
	"newsblog/internal/repository"
	newsUC "newsblog/internal/usecase/newsitem"
)

var fixedNow = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC) // Thursday

type fixture struct {
	mux *http.ServeMux
	svc *newsUC.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewNewsStore(func() time.Time { return fixedNow })
	svc := &newsUC.Service{
		Repo:     memory.NewNewsItemRepo(store),
		Now:      func() time.Time { return fixedNow },
		Location: time.UTC,
	}
	mux := http.NewServeMux()
	newsitem.Register(mux, svc, pagination.DefaultConfig())
	return fixture{mux: mux, svc: svc}
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func (f fixture) seed(t *testing.T, published ...time.Time) {
	t.Helper()
	for i, p := range published {
		_, err := f.svc.Create(context.Background(), newsUC.CreateInput{
			SourceID:    1,
			Title:       fmt.Sprintf("item %d", i+1),
			GUID:        fmt.Sprintf("guid-%d", i+1),
			PublishedAt: p,
		})
		require.NoError(t, err)
	}
}

func titles(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var items []newsitem.DTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

type failingRepo struct{}

func (failingRepo) ListPaginated(context.Context, repository.NewsItemFilters, int, int) ([]*entity.NewsItem, error) {
	return nil, errors.New("db down")
}
func (failingRepo) Create(context.Context, *entity.NewsItem) error { return errors.New("db down") }
func (failingRepo) Count(context.Context) (int64, error)           { return 0, errors.New("db down") }
func (failingRepo) ExistingGUIDs(context.Context, int64, []string) (map[string]bool, error) {
	return nil, errors.New("db down")
}

func TestStorageErrors(t *testing.T) {
	mux := http.NewServeMux()
	newsitem.Register(mux, &newsUC.Service{Repo: failingRepo{}}, pagination.DefaultConfig())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/news",
		strings.NewReader(`{"source_id":1,"title":"t","guid":"g","published_at":"2024-03-14T09:00:00Z"}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
