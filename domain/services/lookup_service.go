package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spectrum/domain/entities"
	"spectrum/domain/interfaces"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// View selects which aggregation a lookup performs
type View string

const (
	ViewBasic     View = "lookup"
	ViewInventory View = "inventory"
	ViewRecord    View = "record"
	ViewLive      View = "live"
)

// Backend labels used for latency metrics
const (
	BackendIdentity = "identity"
	BackendStore    = "store"
	BackendLive     = "live"
)

// LookupResult is the populated payload of a successful lookup.
// Only the fields belonging to View are set.
type LookupResult struct {
	View       View                       `json:"view"`
	Identifier string                     `json:"identifier"`
	Profile    *entities.Profile          `json:"profile,omitempty"`
	Economy    *entities.EconomyRecord    `json:"economy,omitempty"`
	Inventory  entities.InventorySnapshot `json:"inventory,omitempty"`
	Record     *entities.PlayerRecord     `json:"record,omitempty"`
	Session    *entities.SessionSnapshot  `json:"session,omitempty"`
}

// LookupService aggregates the identity provider, record store and live
// session service into per-view lookup results.
type LookupService struct {
	identity interfaces.IdentityProvider
	store    interfaces.RecordStore
	live     interfaces.LiveSession
	metrics  interfaces.LookupMetrics
}

// NewLookupService creates a lookup service. metrics may be nil.
func NewLookupService(identity interfaces.IdentityProvider, store interfaces.RecordStore, live interfaces.LiveSession, metrics interfaces.LookupMetrics) *LookupService {
	return &LookupService{
		identity: identity,
		store:    store,
		live:     live,
		metrics:  metrics,
	}
}

// ErrUnknownView is returned by Lookup for a view it does not serve.
// It is not a CommandError.
var ErrUnknownView = errors.New("unknown lookup view")

// Lookup dispatches to the view-specific lookup
func (s *LookupService) Lookup(ctx context.Context, view View, raw string) (*LookupResult, error) {
	switch view {
	case ViewBasic:
		return s.BasicLookup(ctx, raw)
	case ViewInventory:
		return s.InventoryLookup(ctx, raw)
	case ViewRecord:
		return s.RecordLookup(ctx, raw)
	case ViewLive:
		numericID, err := entities.ParseNumericID(raw)
		if err != nil {
			return nil, s.fail(ctx, ViewLive, raw, KindInvalidIdentifierFormat, err)
		}
		return s.LiveLookup(ctx, numericID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
}

// BasicLookup resolves the player's profile and economy record
func (s *LookupService) BasicLookup(ctx context.Context, raw string) (*LookupResult, error) {
	profile, err := s.resolveProfile(ctx, raw)
	if err != nil {
		return nil, s.fail(ctx, ViewBasic, raw, KindUpstreamUnavailable, err)
	}

	economy, err := s.getEconomy(ctx, raw)
	if err != nil {
		return nil, s.fail(ctx, ViewBasic, raw, storeErrorKind(err), err)
	}

	s.succeed(ctx, ViewBasic)
	return &LookupResult{
		View:       ViewBasic,
		Identifier: raw,
		Profile:    profile,
		Economy:    economy,
	}, nil
}

// InventoryLookup resolves the player's profile and inventory
func (s *LookupService) InventoryLookup(ctx context.Context, raw string) (*LookupResult, error) {
	profile, err := s.resolveProfile(ctx, raw)
	if err != nil {
		return nil, s.fail(ctx, ViewInventory, raw, KindUpstreamUnavailable, err)
	}

	start := time.Now()
	inventory, err := s.store.GetInventory(ctx, raw)
	s.observe(ctx, BackendStore, start, err)
	if err != nil {
		return nil, s.fail(ctx, ViewInventory, raw, storeErrorKind(err), err)
	}

	s.succeed(ctx, ViewInventory)
	return &LookupResult{
		View:       ViewInventory,
		Identifier: raw,
		Profile:    profile,
		Inventory:  inventory,
	}, nil
}

// RecordLookup resolves the player's profile and full moderation history.
// Bans and warnings are fetched concurrently; a failure of either query fails
// the view rather than being presented as a clean record.
func (s *LookupService) RecordLookup(ctx context.Context, raw string) (*LookupResult, error) {
	profile, err := s.resolveProfile(ctx, raw)
	if err != nil {
		return nil, s.fail(ctx, ViewRecord, raw, KindUpstreamUnavailable, err)
	}

	// The economy row confirms the player exists and gives the store key
	economy, err := s.getEconomy(ctx, raw)
	if err != nil {
		return nil, s.fail(ctx, ViewRecord, raw, storeErrorKind(err), err)
	}

	var (
		bans     []*entities.Ban
		warnings []*entities.Warning
		g        errgroup.Group
	)
	g.Go(func() error {
		start := time.Now()
		var err error
		bans, err = s.store.GetBans(ctx, economy.ID)
		s.observe(ctx, BackendStore, start, err)
		if err != nil {
			return fmt.Errorf("bans: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		var err error
		warnings, err = s.store.GetWarnings(ctx, economy.ID)
		s.observe(ctx, BackendStore, start, err)
		if err != nil {
			return fmt.Errorf("warnings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, ViewRecord, raw, KindStoreUnavailable, err)
	}

	s.succeed(ctx, ViewRecord)
	return &LookupResult{
		View:       ViewRecord,
		Identifier: raw,
		Profile:    profile,
		Record: &entities.PlayerRecord{
			Bans:     nonNil(bans),
			Warnings: nonNil(warnings),
		},
	}, nil
}

// LiveLookup fetches the player's state from the running game server.
// It does not consult the identity provider or the record store.
func (s *LookupService) LiveLookup(ctx context.Context, numericID uint64) (*LookupResult, error) {
	identifier := fmt.Sprintf("%d", numericID)

	start := time.Now()
	session, err := s.live.Fetch(ctx, numericID)
	s.observe(ctx, BackendLive, start, err)
	if err != nil {
		return nil, s.fail(ctx, ViewLive, identifier, liveErrorKind(err), err)
	}

	s.succeed(ctx, ViewLive)
	return &LookupResult{
		View:       ViewLive,
		Identifier: identifier,
		Session:    session,
	}, nil
}

// resolveProfile parses the identifier and resolves it with the identity provider
func (s *LookupService) resolveProfile(ctx context.Context, raw string) (*entities.Profile, error) {
	id, err := entities.ParsePlatformID(raw)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	profile, err := s.identity.Resolve(ctx, id)
	s.observe(ctx, BackendIdentity, start, err)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *LookupService) getEconomy(ctx context.Context, raw string) (*entities.EconomyRecord, error) {
	start := time.Now()
	economy, err := s.store.GetEconomy(ctx, raw)
	s.observe(ctx, BackendStore, start, err)
	return economy, err
}

// fail logs the underlying cause and returns the collapsed CommandError
func (s *LookupService) fail(ctx context.Context, view View, identifier string, kind CommandErrorKind, err error) *CommandError {
	log.WithFields(log.Fields{
		"view":       view,
		"identifier": identifier,
		"kind":       kind.String(),
		"request_id": RequestIDFrom(ctx),
		"error":      err,
	}).Warn("Lookup failed")

	if s.metrics != nil {
		s.metrics.RecordLookup(ctx, string(view), kind.String())
	}
	return &CommandError{Kind: kind, Err: err}
}

func (s *LookupService) succeed(ctx context.Context, view View) {
	if s.metrics != nil {
		s.metrics.RecordLookup(ctx, string(view), "success")
	}
}

func (s *LookupService) observe(ctx context.Context, backend string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.RecordBackendCall(ctx, backend, time.Since(start), err)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
