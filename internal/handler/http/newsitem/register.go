package newsitem

import (
	"net/http"

	"newsblog/internal/common/pagination"
	newsUC "newsblog/internal/usecase/newsitem"
)

// Register mounts GET and POST /news. paginationCfg supplies the page/size
// defaults and bounds for listing.
func Register(mux *http.ServeMux, svc *newsUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET /news", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("POST /news", CreateHandler{Svc: svc})
}
