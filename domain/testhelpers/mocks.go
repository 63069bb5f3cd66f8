package testhelpers

import (
	"context"
	"time"

	"spectrum/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockRecordStore is a mock implementation of RecordStore
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) GetEconomy(ctx context.Context, id string) (*entities.EconomyRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EconomyRecord), args.Error(1)
}

func (m *MockRecordStore) GetInventory(ctx context.Context, id string) (entities.InventorySnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entities.InventorySnapshot), args.Error(1)
}

func (m *MockRecordStore) GetBans(ctx context.Context, id string) ([]*entities.Ban, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Ban), args.Error(1)
}

func (m *MockRecordStore) GetWarnings(ctx context.Context, id string) ([]*entities.Warning, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Warning), args.Error(1)
}

// MockIdentityProvider is a mock implementation of IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Resolve(ctx context.Context, id entities.PlatformID) (*entities.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

// MockLiveSession is a mock implementation of LiveSession
type MockLiveSession struct {
	mock.Mock
}

func (m *MockLiveSession) Fetch(ctx context.Context, numericID uint64) (*entities.SessionSnapshot, error) {
	args := m.Called(ctx, numericID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SessionSnapshot), args.Error(1)
}

// MockAuditPublisher is a mock implementation of AuditPublisher
type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) PublishLookup(ctx context.Context, event entities.LookupAudited) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockLookupMetrics is a mock implementation of LookupMetrics
type MockLookupMetrics struct {
	mock.Mock
}

func (m *MockLookupMetrics) RecordLookup(ctx context.Context, view, outcome string) {
	m.Called(ctx, view, outcome)
}

func (m *MockLookupMetrics) RecordBackendCall(ctx context.Context, backend string, duration time.Duration, err error) {
	m.Called(ctx, backend, duration, err)
}
