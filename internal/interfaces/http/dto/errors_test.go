package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"INVALID_DOC_TYPE", http.StatusBadRequest},
		{"INVALID_TEMPLATE", http.StatusBadRequest},
		{"INVALID_DATA", http.StatusUnprocessableEntity},
		{"NEGATIVE_AMOUNT", http.StatusUnprocessableEntity},
		{"MISSING_PARTY", http.StatusUnprocessableEntity},
		{"RENDER_FAILED", http.StatusInternalServerError},
		{"SOMETHING_NOVEL", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "type", Message: "Unknown document type"},
		{Field: "name_en", Message: "This field is required"},
	}

	resp := NewValidationErrorResponse("Request validation failed", "req-123", details)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 2)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]int{1, 2, 3}, 7, 1, 3)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)

	resp = NewSuccessResponseWithMeta(nil, 6, 1, 3)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}
