package post

import (
	"net/http"

	"newsblog/internal/handler/http/pathutil"
	"newsblog/internal/handler/http/respond"
	postUC "newsblog/internal/usecase/post"
)

type GetHandler struct{ Svc *postUC.Service }

// ServeHTTP godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID (1-99)"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string "post not found"
// @Router       /posts/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := h.Svc.Get(r.Context(), "id", id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}
