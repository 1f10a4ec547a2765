package newsitem

import (
	"net/http"

	"newsblog/internal/handler/http/respond"
	newsUC "newsblog/internal/usecase/newsitem"
)

type CreateHandler struct{ Svc *newsUC.Service }

// ServeHTTP godoc
// @Summary      Create a news item
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        item body CreateRequest true "News item"
// @Success      201 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /news [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	item, err := h.Svc.Create(r.Context(), newsUC.CreateInput{
		SourceID:    req.SourceID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
		GUID:        req.GUID,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(item))
}
