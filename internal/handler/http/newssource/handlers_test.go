package newssource_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsblog/internal/handler/http/newssource"
	"newsblog/internal/infra/adapter/persistence/memory"
	newsUC "newsblog/internal/usecase/newsitem"
	srcUC "newsblog/internal/usecase/newssource"
)

var fixedNow = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*http.ServeMux, *newsUC.Service) {
	t.Helper()
	store := memory.NewNewsStore(func() time.Time { return fixedNow })
	mux := http.NewServeMux()
	newssource.Register(mux, &srcUC.Service{Repo: memory.NewNewsSourceRepo(store)})
	return mux, &newsUC.Service{Repo: memory.NewNewsItemRepo(store)}
}

func post(mux http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sources", strings.NewReader(body)))
	return rec
}
