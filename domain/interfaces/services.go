package interfaces

import (
	"context"
	"time"

	"spectrum/domain/entities"
)

// IdentityProvider resolves platform ids to public profiles
type IdentityProvider interface {
	// Resolve returns entities.ErrIdentityUnavailable on transport or HTTP failure
	// and entities.ErrIdentityNotFound when the provider knows no such account
	Resolve(ctx context.Context, id entities.PlatformID) (*entities.Profile, error)
}

// LiveSession fetches in-session state from the running game server
type LiveSession interface {
	// Fetch returns entities.ErrPlayerNotFound for any non-success status and
	// entities.ErrServiceUnavailable when the server cannot be reached
	Fetch(ctx context.Context, numericID uint64) (*entities.SessionSnapshot, error)
}

// AuditPublisher records that a lookup took place
type AuditPublisher interface {
	PublishLookup(ctx context.Context, event entities.LookupAudited) error
}

// LookupMetrics records lookup outcomes and backend latency
type LookupMetrics interface {
	RecordLookup(ctx context.Context, view, outcome string)
	RecordBackendCall(ctx context.Context, backend string, duration time.Duration, err error)
}
