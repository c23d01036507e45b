package service

import (
	"context"
	"errors"
	"fmt"

	"movie-dialogue-api/backend/internal/repository"
	"movie-dialogue-api/backend/pkg/resilience"
)

// Error kinds. Every error returned by a service wraps exactly one of them.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUpstream        = errors.New("store error")
)

var (
	ErrCharacterNotFound    = fmt.Errorf("character %w", ErrNotFound)
	ErrMovieNotFound        = fmt.Errorf("movie %w", ErrNotFound)
	ErrLineNotFound         = fmt.Errorf("line %w", ErrNotFound)
	ErrConversationNotFound = fmt.Errorf("conversation %w", ErrNotFound)

	ErrInvalidSort           = fmt.Errorf("%w: unknown sort option", ErrInvalidArgument)
	ErrInvalidLimit          = fmt.Errorf("%w: limit out of range", ErrInvalidArgument)
	ErrInvalidOffset         = fmt.Errorf("%w: offset out of range", ErrInvalidArgument)
	ErrDuplicateCharacters   = fmt.Errorf("%w: a conversation needs two distinct characters", ErrInvalidArgument)
	ErrCharactersNotInMovie  = fmt.Errorf("%w: characters are not part of the referenced movie", ErrInvalidArgument)
	ErrLineCharacterMismatch = fmt.Errorf("%w: line spoken by a character outside the conversation", ErrInvalidArgument)

	// ErrUnavailable means the store was not called because the circuit is open
	ErrUnavailable = fmt.Errorf("%w: %w", ErrUpstream, resilience.ErrCircuitOpen)
)

// Error is a domain error with a client-facing message and the values that caused it
type Error struct {
	Err     error
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, details map[string]any, format string, args ...any) *Error {
	return &Error{Err: kind, Message: fmt.Sprintf(format, args...), Details: details}
}

// IsOutcome reports errors that describe the request rather than a store failure.
// The circuit breaker does not count them.
func IsOutcome(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, context.Canceled)
}

// upstream wraps a store failure
func upstream(err error) error {
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

// lookupError maps a repository lookup failure to notFound or an upstream error
func lookupError(err error, notFound error, entity string, id int) error {
	if errors.Is(err, repository.ErrNotFound) {
		return newError(notFound, map[string]any{entity + "_id": id}, "%s %d not found", entity, id)
	}
	return upstream(err)
}
