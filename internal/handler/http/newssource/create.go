package newssource

import (
	"net/http"

	"newsblog/internal/handler/http/respond"
	srcUC "newsblog/internal/usecase/newssource"
)

type CreateHandler struct{ Svc *srcUC.Service }

// ServeHTTP godoc
// @Summary      Create a source
// @Description  is_active defaults to true and country to "rus".
// @Tags         sources
// @Accept       json
// @Produce      json
// @Param        source body CreateRequest true "News source"
// @Success      201 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /sources [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	src, err := h.Svc.Create(r.Context(), srcUC.CreateInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		IsActive:    req.IsActive,
		Country:     req.Country,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(src))
}
