package newssource_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsblog/internal/handler/http/newssource"
)

func TestCreate_Defaults(t *testing.T) {
	mux, _ := setup(t)
	rec := post(mux, `{"name":"Lenta.ru","url":"https://lenta.ru/rss/news"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got newssource.DTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(1), got.ID)
	assert.True(t, got.IsActive)
	assert.Equal(t, "rus", got.Country)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.LastParsedAt)
	assert.True(t, got.CreatedAt.Equal(fixedNow))
}

func TestCreate_Explicit(t *testing.T) {
	mux, _ := setup(t)
	rec := post(mux, `{"name":"BBC","url":"https://feeds.bbci.co.uk/news/rss.xml","description":"UK","is_active":false,"country":"gbr"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got newssource.DTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.False(t, got.IsActive)
	assert.Equal(t, "gbr", got.Country)
	require.NotNil(t, got.Description)
	assert.Equal(t, "UK", *got.Description)
}

func TestCreate_Invalid(t *testing.T) {
	mux, _ := setup(t)
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"url":"https://x"}`},
		{"missing url", `{"name":"x"}`},
		{"name too long", `{"name":"` + strings.Repeat("n", 256) + `","url":"https://x"}`},
		{"country too long", `{"name":"x","url":"https://x","country":"` + strings.Repeat("c", 11) + `"}`},
		{"malformed", `[`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, post(mux, tt.body).Code)
		})
	}
}
