package post

import (
	"net/http"

	"newsblog/internal/handler/http/respond"
)

// HomeHandler answers the greeting at GET /.
type HomeHandler struct{}

// ServeHTTP godoc
// @Summary      Greeting
// @Tags         posts
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func (HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"hello": "world"})
}
