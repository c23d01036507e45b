package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"movie-dialogue-api/backend/internal/service"
	apperrors "movie-dialogue-api/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"character", fmt.Errorf("get: %w", service.ErrCharacterNotFound), http.StatusNotFound, apperrors.CodeCharacterNotFound},
		{"movie", service.ErrMovieNotFound, http.StatusNotFound, apperrors.CodeMovieNotFound},
		{"sort", service.ErrInvalidSort, http.StatusBadRequest, apperrors.CodeInvalidSort},
		{"limit", service.ErrInvalidLimit, http.StatusBadRequest, apperrors.CodeInvalidParameter},
		{"duplicate", service.ErrDuplicateCharacters, http.StatusBadRequest, apperrors.CodeDuplicateCharacters},
		{"mismatch", service.ErrLineCharacterMismatch, http.StatusBadRequest, apperrors.CodeLineCharacterMismatch},
		{"breaker open", service.ErrUnavailable, http.StatusServiceUnavailable, apperrors.CodeStoreUnavailable},
		{"store timeout", fmt.Errorf("%w: %w", service.ErrUpstream, context.DeadlineExceeded), http.StatusServiceUnavailable, apperrors.CodeStoreUnavailable},
		{"store failure", fmt.Errorf("%w: %w", service.ErrUpstream, errors.New("connection reset")), http.StatusInternalServerError, apperrors.CodeStoreError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := TranslateError(tt.err)
			assert.Equal(t, tt.status, appErr.StatusCode)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestTranslateErrorKeepsAppErrors(t *testing.T) {
	in := apperrors.NewForbiddenError(apperrors.CodeForbidden, "no")
	assert.Same(t, in, TranslateError(fmt.Errorf("wrapped: %w", in)))
}

func TestTranslateErrorHidesStoreDetails(t *testing.T) {
	appErr := TranslateError(fmt.Errorf("%w: %w", service.ErrUpstream, errors.New("pq: password authentication failed")))
	assert.NotContains(t, appErr.Message, "password")
	assert.Nil(t, appErr.Details)
}
