package post

import (
	"net/http"

	"newsblog/internal/handler/http/respond"
	postUC "newsblog/internal/usecase/post"
)

type CreateHandler struct{ Svc *postUC.Service }

// ServeHTTP godoc
// @Summary      Create a post
// @Description  author_id is not checked against users by the in-memory backend.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body CreateRequest true "Post"
// @Success      201 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /posts [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := h.Svc.Create(r.Context(), postUC.CreateInput{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(p))
}
