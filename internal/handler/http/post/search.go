package post

import (
	"net/http"

	"newsblog/internal/handler/http/pathutil"
	"newsblog/internal/handler/http/respond"
	postUC "newsblog/internal/usecase/post"
)

type SearchHandler struct{ Svc *postUC.Service }

// ServeHTTP godoc
// @Summary      Find a post by id
// @Description  Without post_id the answer is 404.
// @Tags         posts
// @Produce      json
// @Param        post_id query int false "Post ID (1-99)"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok, err := pathutil.QueryID(r, "post_id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if !ok {
		respond.Error(w, http.StatusNotFound, "post_id not provided")
		return
	}
	p, err := h.Svc.Get(r.Context(), "post_id", id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}
