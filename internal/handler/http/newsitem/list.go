package newsitem

import (
	"log/slog"
	"net/http"
	"time"

	"newsblog/internal/common/pagination"
	"newsblog/internal/handler/http/respond"
	"newsblog/internal/observability/logging"
	newsUC "newsblog/internal/usecase/newsitem"
)

type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP godoc
// @Summary      List news
// @Description  Newest first. period is one of today, yesterday, last_7_days, last_week; other values apply no filter.
// @Tags         news
// @Produce      json
// @Param        page   query int    false "Page number (1-based)" default(1) minimum(1)
// @Param        size   query int    false "Items per page" default(20) minimum(1) maximum(100)
// @Param        period query string false "Publication period" Enums(today, yesterday, last_7_days, last_week)
// @Success      200 {array}  DTO
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.FromContext(ctx)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		pagination.RecordError("validation")
		pagination.RecordRequest(http.StatusBadRequest, params.Page)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	period := r.URL.Query().Get("period")

	items, err := h.Svc.List(ctx, newsUC.ListInput{Page: params.Page, Size: params.Size, Period: period})
	if err != nil {
		pagination.RecordError("database")
		pagination.RecordRequest(http.StatusInternalServerError, params.Page)
		respond.DomainError(w, err)
		return
	}

	out := make([]DTO, 0, len(items))
	for _, it := range items {
		out = append(out, toDTO(it))
	}

	duration := time.Since(start)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	logger.Debug("news page served",
		slog.Int("page", params.Page),
		slog.Int("size", params.Size),
		slog.String("period", period),
		slog.Int("returned_count", len(out)),
		slog.Int64("duration_ms", duration.Milliseconds()))

	respond.JSON(w, http.StatusOK, out)
}
