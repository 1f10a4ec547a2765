package user

import (
	"net/http"

	userUC "newsblog/internal/usecase/user"
)

func Register(mux *http.ServeMux, svc *userUC.Service) {
	mux.Handle("GET /users", ListHandler{svc})
	mux.Handle("GET /users/{id}", GetHandler{svc})
	mux.Handle("POST /users", CreateHandler{svc})
}
