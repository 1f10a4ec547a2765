// Package respond writes JSON responses and maps domain errors to HTTP status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsblog/internal/domain/entity"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes {"error": msg} with the given status code.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"error": msg})
}

// SafeError writes err with the given status code. 5xx bodies are always the
// generic "internal server error"; the real error is logged with secrets masked.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	if code >= http.StatusInternalServerError {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.Any("error", SanitizeError(err)))
		Error(w, code, "internal server error")
		return
	}
	Error(w, code, err.Error())
}

// StatusFor classifies an error returned by a use case.
func StatusFor(err error) int {
	var verr *entity.ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DomainError writes err with the status chosen by StatusFor. Validation
// errors return their message without the wrapping context.
func DomainError(w http.ResponseWriter, err error) {
	code := StatusFor(err)
	var verr *entity.ValidationError
	if code == http.StatusBadRequest && errors.As(err, &verr) {
		Error(w, code, verr.Error())
		return
	}
	if code == http.StatusNotFound {
		var nf *entity.NotFoundError
		if errors.As(err, &nf) {
			Error(w, code, nf.Error())
			return
		}
	}
	SafeError(w, code, err)
}
