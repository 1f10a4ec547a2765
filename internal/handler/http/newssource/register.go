package newssource

import (
	"net/http"

	srcUC "newsblog/internal/usecase/newssource"
)

func Register(mux *http.ServeMux, svc *srcUC.Service) {
	mux.Handle("GET /sources", ListHandler{svc})
	mux.Handle("POST /sources", CreateHandler{svc})
}
