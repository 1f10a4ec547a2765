package post

import (
	"net/http"

	"newsblog/internal/handler/http/respond"
	postUC "newsblog/internal/usecase/post"
)

type ListHandler struct{ Svc *postUC.Service }

// ServeHTTP godoc
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} map[string]string
// @Router       /posts [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Svc.List(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(posts))
}
