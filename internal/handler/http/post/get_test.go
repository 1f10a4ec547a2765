package post_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_Errors(t *testing.T) {
	mux, _ := newMux(t)
	tests := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{"not found", "/posts/7", http.StatusNotFound, `{"error":"post not found"}`},
		{"zero", "/posts/0", http.StatusBadRequest, `{"error":"validation error on field 'id': must be between 1 and 99"}`},
		{"negative", "/posts/-4", http.StatusBadRequest, `{"error":"validation error on field 'id': must be between 1 and 99"}`},
		{"too large", "/posts/100", http.StatusBadRequest, `{"error":"validation error on field 'id': must be between 1 and 99"}`},
		{"not a number", "/posts/x", http.StatusBadRequest, `{"error":"invalid id"}`},
		{"search without id", "/search", http.StatusNotFound, `{"error":"post_id not provided"}`},
		{"search not found", "/search?post_id=3", http.StatusNotFound, `{"error":"post not found"}`},
		{"search out of range", "/search?post_id=100", http.StatusBadRequest, `{"error":"validation error on field 'post_id': must be between 1 and 99"}`},
		{"search not a number", "/search?post_id=abc", http.StatusBadRequest, `{"error":"invalid id"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(mux, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
