package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{"required field", "name", "is required", "validation error on field 'name': is required"},
		{"length", "title", "must be at most 100 characters", "validation error on field 'title': must be at most 100 characters"},
		{"empty field name", "", "x", "validation error on field '': x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_IsValidationFailed(t *testing.T) {
	var err error = &ValidationError{Field: "age", Message: "must be at most 119"}
	wrapped := fmt.Errorf("create user: %w", err)

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))

	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "age", ve.Field)
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("get post: %w", &NotFoundError{Resource: "post"})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "get post: post not found", err.Error())
}

func TestValidateLookupID(t *testing.T) {
	for _, id := range []int64{1, 50, 99} {
		assert.NoError(t, ValidateLookupID("id", id), "id=%d", id)
	}
	for _, id := range []int64{-1, 0, 100, 1000} {
		err := ValidateLookupID("post_id", id)
		var ve *ValidationError
		if assert.ErrorAs(t, err, &ve, "id=%d", id) {
			assert.Equal(t, "post_id", ve.Field)
		}
	}
}
