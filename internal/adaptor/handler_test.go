package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bistro-boss/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &usecase.ValidationError{Fields: map[string]string{"email": "required"}}, http.StatusBadRequest, "Validation failed"},
		{"invalid id", fmt.Errorf("%w: %q", usecase.ErrInvalidID, "x"), http.StatusBadRequest, "Invalid id"},
		{"empty patch", usecase.ErrNothingToUpdate, http.StatusBadRequest, "No fields to update"},
		{"not owner", fmt.Errorf("check: %w", usecase.ErrNotOwner), http.StatusUnauthorized, "unauthorize access"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tt.err, "test")

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message":"`+tt.message+`"`)
		})
	}
}

func TestDecodeBody(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	assert.True(t, decodeBody(zap.NewNop(), rec, req, &dst))
	assert.Equal(t, "x", dst.Name)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.False(t, decodeBody(zap.NewNop(), rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Request body is required")

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	assert.False(t, decodeBody(zap.NewNop(), rec, req, &dst))
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}
