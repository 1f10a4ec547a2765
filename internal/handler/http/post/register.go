package post

import (
	"net/http"

	postUC "newsblog/internal/usecase/post"
)

// Register mounts the greeting, the /posts routes and /search.
func Register(mux *http.ServeMux, svc *postUC.Service) {
	mux.Handle("GET /{$}", HomeHandler{})
	mux.Handle("GET /posts", ListHandler{svc})
	mux.Handle("GET /posts/{id}", GetHandler{svc})
	mux.Handle("POST /posts", CreateHandler{svc})
	mux.Handle("GET /search", SearchHandler{svc})
}
