package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"movie-dialogue-api/backend/internal/service"
	apperrors "movie-dialogue-api/backend/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// domainErrors maps service errors to their HTTP form. Order matters: the first match wins.
var domainErrors = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{service.ErrCharacterNotFound, http.StatusNotFound, apperrors.CodeCharacterNotFound, "Character not found"},
	{service.ErrMovieNotFound, http.StatusNotFound, apperrors.CodeMovieNotFound, "Movie not found"},
	{service.ErrLineNotFound, http.StatusNotFound, apperrors.CodeLineNotFound, "Line not found"},
	{service.ErrConversationNotFound, http.StatusNotFound, apperrors.CodeConversationNotFound, "Conversation not found"},
	{service.ErrInvalidSort, http.StatusBadRequest, apperrors.CodeInvalidSort, "Unknown sort option"},
	{service.ErrInvalidLimit, http.StatusBadRequest, apperrors.CodeInvalidParameter, "Invalid limit"},
	{service.ErrInvalidOffset, http.StatusBadRequest, apperrors.CodeInvalidParameter, "Invalid offset"},
	{service.ErrDuplicateCharacters, http.StatusBadRequest, apperrors.CodeDuplicateCharacters, "A conversation needs two distinct characters"},
	{service.ErrCharactersNotInMovie, http.StatusBadRequest, apperrors.CodeCharactersNotInMovie, "Characters are not part of the referenced movie"},
	{service.ErrLineCharacterMismatch, http.StatusBadRequest, apperrors.CodeLineCharacterMismatch, "Every line must be spoken by one of the two characters"},
	{service.ErrInvalidArgument, http.StatusBadRequest, apperrors.CodeInvalidParameter, "Invalid request"},
	{service.ErrUnavailable, http.StatusServiceUnavailable, apperrors.CodeStoreUnavailable, "The data store is temporarily unavailable"},
	{context.DeadlineExceeded, http.StatusServiceUnavailable, apperrors.CodeStoreUnavailable, "The data store did not answer in time"},
	{service.ErrUpstream, http.StatusInternalServerError, apperrors.CodeStoreError, "The data store failed to complete the request"},
}

// TranslateError turns any error pushed by the handlers into an AppError
func TranslateError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, d := range domainErrors {
		if !errors.Is(err, d.err) {
			continue
		}
		out := apperrors.NewError(d.status, d.code, d.message)
		var domainErr *service.Error
		if d.status < http.StatusInternalServerError && errors.As(err, &domainErr) {
			out.Message = domainErr.Message
			if domainErr.Details != nil {
				out.Details = domainErr.Details
			}
		}
		return out
	}

	return apperrors.FromError(err)
}

// FieldError describes one rejected request field
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// bindingError reports a request that could not be bound, field by field when the validator rejected it
func bindingError(code, message string, err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = FieldError{Field: fieldPath(fe), Rule: fe.Tag(), Param: fe.Param()}
		}
		return apperrors.BadRequestWithDetails(code, message, fields)
	}
	return apperrors.BadRequestWithDetails(code, message, err.Error())
}

// fieldPath strips the top-level struct name from the validator namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
