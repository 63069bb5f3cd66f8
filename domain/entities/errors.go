package entities

import "errors"

// Lookup errors. Lower layers wrap these so callers can tell "not found"
// from "unavailable" with errors.Is.
var (
	// ErrInvalidIdentifierFormat is returned when a player identifier cannot be parsed
	ErrInvalidIdentifierFormat = errors.New("invalid identifier format")

	// ErrIdentityUnavailable is returned on transport or HTTP failure talking to the identity provider
	ErrIdentityUnavailable = errors.New("identity provider unavailable")

	// ErrIdentityNotFound is returned when the identity provider returns no players
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrPlayerNotFound is returned when the store or live service has no such player
	ErrPlayerNotFound = errors.New("player not found")

	// ErrStoreUnavailable is returned for any record store failure other than not found
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrServiceUnavailable is returned when the live session service cannot be reached
	ErrServiceUnavailable = errors.New("live session service unavailable")
)
