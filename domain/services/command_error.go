package services

import (
	"errors"
	"fmt"

	"spectrum/domain/entities"
)

// CommandErrorKind is the coarse failure category reported to the front-end
type CommandErrorKind int

const (
	KindInvalidIdentifierFormat CommandErrorKind = iota + 1
	KindUpstreamUnavailable
	KindPlayerNotFound
	KindServiceUnavailable
	KindStoreUnavailable
)

// String returns the metric/log label for the kind
func (k CommandErrorKind) String() string {
	switch k {
	case KindInvalidIdentifierFormat:
		return "invalid_identifier"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindPlayerNotFound:
		return "player_not_found"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

// CommandError is the only error type the view methods return. Lookup adds
// ErrUnknownView for a view outside the four it dispatches.
// Err keeps the lower-level cause for logging; it is never shown to users.
type CommandError struct {
	Kind CommandErrorKind
	Err  error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

// Unwrap returns the underlying error
func (e *CommandError) Unwrap() error {
	return e.Err
}

// AsCommandError extracts a CommandError from err, if there is one
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}

// storeErrorKind maps record store failures
func storeErrorKind(err error) CommandErrorKind {
	if errors.Is(err, entities.ErrPlayerNotFound) {
		return KindPlayerNotFound
	}
	return KindStoreUnavailable
}

// liveErrorKind maps live session failures
func liveErrorKind(err error) CommandErrorKind {
	switch {
	case errors.Is(err, entities.ErrPlayerNotFound):
		return KindPlayerNotFound
	case errors.Is(err, entities.ErrInvalidIdentifierFormat):
		return KindInvalidIdentifierFormat
	default:
		return KindServiceUnavailable
	}
}
