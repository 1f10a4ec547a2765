package user

import (
	"net/http"

	"newsblog/internal/handler/http/pathutil"
	"newsblog/internal/handler/http/respond"
	userUC "newsblog/internal/usecase/user"
)

type GetHandler struct{ Svc *userUC.Service }

// ServeHTTP godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID (1-99)"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string "user not found"
// @Router       /users/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	u, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}
