package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_Defaults(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, 0, rw.BytesWritten())
	assert.False(t, rw.Written())
}

func TestWrap_ReusesExisting(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Same(t, rw, Wrap(rw))
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.StatusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, rw.Written())
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	n, err := rw.Write([]byte(`{"hello":`))
	assert.NoError(t, err)
	assert.Equal(t, 9, n)
	_, _ = rw.Write([]byte(`"world"}`))

	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, 17, rw.BytesWritten())
	assert.Equal(t, `{"hello":"world"}`, rec.Body.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)
	rw.Flush()
	assert.True(t, rec.Flushed)
	assert.True(t, rw.Written())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Equal(t, http.ResponseWriter(rec), Wrap(rec).Unwrap())
}
