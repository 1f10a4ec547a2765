package newssource

import (
	"net/http"

	"newsblog/internal/handler/http/respond"
	srcUC "newsblog/internal/usecase/newssource"
)

type ListHandler struct{ Svc *srcUC.Service }

// ServeHTTP godoc
// @Summary      List sources
// @Description  Every source with news_count, including sources without items.
// @Tags         sources
// @Produce      json
// @Success      200 {array}  WithCountDTO
// @Failure      500 {object} map[string]string
// @Router       /sources [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListWithCounts(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	out := make([]WithCountDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toWithCountDTO(s))
	}
	respond.JSON(w, http.StatusOK, out)
}
