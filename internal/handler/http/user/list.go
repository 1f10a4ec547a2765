package user

import (
	"net/http"

	"newsblog/internal/handler/http/respond"
	userUC "newsblog/internal/usecase/user"
)

type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} map[string]string
// @Router       /users [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, out)
}
