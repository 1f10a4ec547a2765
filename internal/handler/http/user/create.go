package user

import (
	"net/http"

	"newsblog/internal/handler/http/respond"
	userUC "newsblog/internal/usecase/user"
)

type CreateHandler struct{ Svc *userUC.Service }

// ServeHTTP godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body CreateRequest true "User"
// @Success      201 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /users [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	u, err := h.Svc.Create(r.Context(), userUC.CreateInput{
		Name:    req.Name,
		Surname: req.Surname,
		Age:     req.Age,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(u))
}
