package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"spectrum/domain/entities"
	"spectrum/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testIdentifier = "steam:110000112345678"

var testPlatformID = entities.PlatformID{Platform: entities.PlatformSteam, NumericID: 0x110000112345678}

type lookupMocks struct {
	identity *testhelpers.MockIdentityProvider
	store    *testhelpers.MockRecordStore
	live     *testhelpers.MockLiveSession
}

func newTestLookupService() (*LookupService, *lookupMocks) {
	mocks := &lookupMocks{
		identity: new(testhelpers.MockIdentityProvider),
		store:    new(testhelpers.MockRecordStore),
		live:     new(testhelpers.MockLiveSession),
	}
	return NewLookupService(mocks.identity, mocks.store, mocks.live, nil), mocks
}

func testProfile() *entities.Profile {
	return &entities.Profile{
		CanonicalID: "76561198265685624",
		DisplayName: "Alice",
		AvatarURL:   "http://x/a.png",
	}
}

func testEconomy() *entities.EconomyRecord {
	return &entities.EconomyRecord{
		ID:          testIdentifier,
		BankBalance: 1000000,
		CleanCash:   500,
		DirtyCash:   0,
		StaffLevel:  0,
	}
}

func requireCommandError(t *testing.T, err error, kind CommandErrorKind) *CommandError {
	t.Helper()
	cmdErr, ok := AsCommandError(err)
	require.True(t, ok, "expected CommandError, got %v", err)
	assert.Equal(t, kind, cmdErr.Kind)
	return cmdErr
}

func TestLookupService_BasicLookup_Success(t *testing.T) {
	ctx := context.Background()
	service, mocks := newTestLookupService()

	mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
	mocks.store.On("GetEconomy", ctx, testIdentifier).Return(testEconomy(), nil)

	result, err := service.BasicLookup(ctx, testIdentifier)

	require.NoError(t, err)
	assert.Equal(t, ViewBasic, result.View)
	assert.Equal(t, testIdentifier, result.Identifier)
	assert.Equal(t, "Alice", result.Profile.DisplayName)
	assert.Equal(t, int32(1000000), result.Economy.BankBalance)
	assert.False(t, result.Economy.IsStaff())
	mocks.identity.AssertExpectations(t)
	mocks.store.AssertExpectations(t)
}

func TestLookupService_BasicLookup_InvalidIdentifier(t *testing.T) {
	testCases := []string{"", "xbox:1", "steam:zz", "110000112345678", " steam:110000112345678", "steam:110000112345678\n"}

	for _, raw := range testCases {
		t.Run(raw, func(t *testing.T) {
			service, mocks := newTestLookupService()

			result, err := service.BasicLookup(context.Background(), raw)

			assert.Nil(t, result)
			cmdErr := requireCommandError(t, err, KindUpstreamUnavailable)
			assert.ErrorIs(t, cmdErr, entities.ErrInvalidIdentifierFormat)
			mocks.identity.AssertNotCalled(t, "Resolve")
			mocks.store.AssertNotCalled(t, "GetEconomy")
		})
	}
}

func TestLookupService_BasicLookup_IdentityFailures(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"identity not found", entities.ErrIdentityNotFound},
		{"identity unavailable", fmt.Errorf("%w: connection refused", entities.ErrIdentityUnavailable)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			service, mocks := newTestLookupService()
			mocks.identity.On("Resolve", ctx, testPlatformID).Return(nil, tc.err)

			result, err := service.BasicLookup(ctx, testIdentifier)

			assert.Nil(t, result)
			cmdErr := requireCommandError(t, err, KindUpstreamUnavailable)
			assert.ErrorIs(t, cmdErr, tc.err)
			mocks.store.AssertNotCalled(t, "GetEconomy")
		})
	}
}

func TestLookupService_BasicLookup_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("player not found", func(t *testing.T) {
		service, mocks := newTestLookupService()
		mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
		mocks.store.On("GetEconomy", ctx, testIdentifier).Return(nil, entities.ErrPlayerNotFound)

		_, err := service.BasicLookup(ctx, testIdentifier)
		requireCommandError(t, err, KindPlayerNotFound)
	})

	t.Run("store unavailable", func(t *testing.T) {
		service, mocks := newTestLookupService()
		mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
		mocks.store.On("GetEconomy", ctx, testIdentifier).
			Return(nil, fmt.Errorf("%w: connection reset", entities.ErrStoreUnavailable))

		_, err := service.BasicLookup(ctx, testIdentifier)
		requireCommandError(t, err, KindStoreUnavailable)
	})
}

func TestLookupService_InventoryLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, mocks := newTestLookupService()
		inventory := entities.InventorySnapshot{"water": 4, "bandage": 2}
		mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
		mocks.store.On("GetInventory", ctx, testIdentifier).Return(inventory, nil)

		result, err := service.InventoryLookup(ctx, testIdentifier)

		require.NoError(t, err)
		assert.Equal(t, ViewInventory, result.View)
		assert.Equal(t, inventory, result.Inventory)
		assert.Nil(t, result.Economy)
		mocks.store.AssertNotCalled(t, "GetEconomy")
	})

	t.Run("player not found", func(t *testing.T) {
		service, mocks := newTestLookupService()
		mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
		mocks.store.On("GetInventory", ctx, testIdentifier).Return(nil, entities.ErrPlayerNotFound)

		_, err := service.InventoryLookup(ctx, testIdentifier)
		requireCommandError(t, err, KindPlayerNotFound)
	})

	t.Run("identity failure", func(t *testing.T) {
		service, mocks := newTestLookupService()
		mocks.identity.On("Resolve", ctx, testPlatformID).Return(nil, entities.ErrIdentityUnavailable)

		_, err := service.InventoryLookup(ctx, testIdentifier)
		requireCommandError(t, err, KindUpstreamUnavailable)
		mocks.store.AssertNotCalled(t, "GetInventory")
	})
}

func TestLookupService_RecordLookup_CleanRecord(t *testing.T) {
	ctx := context.Background()
	service, mocks := newTestLookupService()

	mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
	mocks.store.On("GetEconomy", ctx, testIdentifier).Return(testEconomy(), nil)
	mocks.store.On("GetBans", ctx, testIdentifier).Return([]*entities.Ban{}, nil)
	mocks.store.On("GetWarnings", ctx, testIdentifier).Return(nil, nil)

	result, err := service.RecordLookup(ctx, testIdentifier)

	require.NoError(t, err)
	require.NotNil(t, result.Record)
	assert.True(t, result.Record.IsClean())
	assert.NotNil(t, result.Record.Bans)
	assert.NotNil(t, result.Record.Warnings)
	mocks.store.AssertExpectations(t)
}

func TestLookupService_RecordLookup_Union(t *testing.T) {
	ctx := context.Background()
	service, mocks := newTestLookupService()

	bans := []*entities.Ban{
		{ID: 1, Expiry: 1700000000, Reason: "RDM", IssuingStaff: "mod1", Subject: testIdentifier, Active: false},
		{ID: 2, Expiry: 1800000000, Reason: "Cheating", IssuingStaff: "mod2", Subject: testIdentifier, Active: true},
	}
	warnings := []*entities.Warning{
		{ID: 7, Reason: "FailRP", IssuingStaff: "mod1", Subject: testIdentifier},
	}

	mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
	mocks.store.On("GetEconomy", ctx, testIdentifier).Return(testEconomy(), nil)
	mocks.store.On("GetBans", ctx, testIdentifier).Return(bans, nil)
	mocks.store.On("GetWarnings", ctx, testIdentifier).Return(warnings, nil)

	result, err := service.RecordLookup(ctx, testIdentifier)

	require.NoError(t, err)
	assert.Equal(t, bans, result.Record.Bans)
	assert.Equal(t, warnings, result.Record.Warnings)
	assert.Equal(t, 3, result.Record.Count())
}

func TestLookupService_RecordLookup_UsesStoreKeyFromEconomy(t *testing.T) {
	ctx := context.Background()
	service, mocks := newTestLookupService()

	economy := testEconomy()
	economy.ID = "steam:110000112345678 "

	mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
	mocks.store.On("GetEconomy", ctx, testIdentifier).Return(economy, nil)
	mocks.store.On("GetBans", ctx, economy.ID).Return([]*entities.Ban{}, nil)
	mocks.store.On("GetWarnings", ctx, economy.ID).Return([]*entities.Warning{}, nil)

	_, err := service.RecordLookup(ctx, testIdentifier)

	require.NoError(t, err)
	mocks.store.AssertExpectations(t)
}

func TestLookupService_RecordLookup_QueriesRunConcurrently(t *testing.T) {
	ctx := context.Background()
	service, mocks := newTestLookupService()

	warningsStarted := make(chan struct{})

	mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
	mocks.store.On("GetEconomy", ctx, testIdentifier).Return(testEconomy(), nil)
	mocks.store.On("GetBans", ctx, testIdentifier).Run(func(args mock.Arguments) {
		select {
		case <-warningsStarted:
		case <-time.After(2 * time.Second):
			t.Error("bans query did not overlap with warnings query")
		}
	}).Return([]*entities.Ban{}, nil)
	mocks.store.On("GetWarnings", ctx, testIdentifier).Run(func(args mock.Arguments) {
		close(warningsStarted)
	}).Return([]*entities.Warning{}, nil)

	_, err := service.RecordLookup(ctx, testIdentifier)
	require.NoError(t, err)
}

func TestLookupService_RecordLookup_QueryFailureIsNotCleanRecord(t *testing.T) {
	ctx := context.Background()
	storeErr := fmt.Errorf("%w: timeout", entities.ErrStoreUnavailable)

	testCases := []struct {
		name        string
		bansErr     error
		warningsErr error
	}{
		{"bans fail", storeErr, nil},
		{"warnings fail", nil, storeErr},
		{"both fail", storeErr, storeErr},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mocks := newTestLookupService()
			mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
			mocks.store.On("GetEconomy", ctx, testIdentifier).Return(testEconomy(), nil)

			if tc.bansErr != nil {
				mocks.store.On("GetBans", ctx, testIdentifier).Return(nil, tc.bansErr)
			} else {
				mocks.store.On("GetBans", ctx, testIdentifier).Return([]*entities.Ban{}, nil)
			}
			if tc.warningsErr != nil {
				mocks.store.On("GetWarnings", ctx, testIdentifier).Return(nil, tc.warningsErr)
			} else {
				mocks.store.On("GetWarnings", ctx, testIdentifier).Return([]*entities.Warning{}, nil)
			}

			result, err := service.RecordLookup(ctx, testIdentifier)

			assert.Nil(t, result)
			cmdErr := requireCommandError(t, err, KindStoreUnavailable)
			assert.ErrorIs(t, cmdErr, entities.ErrStoreUnavailable)
			// Both queries are always joined, even when one fails
			mocks.store.AssertExpectations(t)
		})
	}
}

func TestLookupService_PlayerNotFoundIsTheSameForAllIdentifierViews(t *testing.T) {
	ctx := context.Background()

	views := []View{ViewBasic, ViewInventory, ViewRecord}
	for _, view := range views {
		t.Run(string(view), func(t *testing.T) {
			service, mocks := newTestLookupService()
			mocks.identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
			mocks.store.On("GetEconomy", ctx, testIdentifier).Return(nil, entities.ErrPlayerNotFound)
			mocks.store.On("GetInventory", ctx, testIdentifier).Return(nil, entities.ErrPlayerNotFound)

			_, err := service.Lookup(ctx, view, testIdentifier)
			requireCommandError(t, err, KindPlayerNotFound)
			mocks.store.AssertNotCalled(t, "GetBans")
			mocks.store.AssertNotCalled(t, "GetWarnings")
		})
	}
}

func TestLookupService_LiveLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, mocks := newTestLookupService()
		session := &entities.SessionSnapshot{ID: "12", Online: true, Name: "Alice"}
		mocks.live.On("Fetch", ctx, uint64(12)).Return(session, nil)

		result, err := service.LiveLookup(ctx, 12)

		require.NoError(t, err)
		assert.Equal(t, ViewLive, result.View)
		assert.Equal(t, "12", result.Identifier)
		assert.Equal(t, session, result.Session)
		mocks.identity.AssertNotCalled(t, "Resolve")
		mocks.store.AssertNotCalled(t, "GetEconomy")
	})

	t.Run("player not found", func(t *testing.T) {
		service, mocks := newTestLookupService()
		mocks.live.On("Fetch", ctx, uint64(12)).Return(nil, entities.ErrPlayerNotFound)

		_, err := service.LiveLookup(ctx, 12)
		requireCommandError(t, err, KindPlayerNotFound)
	})

	t.Run("service unavailable", func(t *testing.T) {
		service, mocks := newTestLookupService()
		mocks.live.On("Fetch", ctx, uint64(12)).
			Return(nil, fmt.Errorf("%w: dial tcp: connection refused", entities.ErrServiceUnavailable))

		_, err := service.LiveLookup(ctx, 12)
		requireCommandError(t, err, KindServiceUnavailable)
	})
}

func TestLookupService_Lookup_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("live with steam identifier", func(t *testing.T) {
		service, mocks := newTestLookupService()
		mocks.live.On("Fetch", ctx, uint64(0x110000112345678)).Return(&entities.SessionSnapshot{}, nil)

		_, err := service.Lookup(ctx, ViewLive, testIdentifier)
		require.NoError(t, err)
	})

	t.Run("live with invalid identifier", func(t *testing.T) {
		service, mocks := newTestLookupService()

		_, err := service.Lookup(ctx, ViewLive, "not-a-number")
		requireCommandError(t, err, KindInvalidIdentifierFormat)
		mocks.live.AssertNotCalled(t, "Fetch")
	})

	t.Run("unknown view", func(t *testing.T) {
		service, _ := newTestLookupService()

		_, err := service.Lookup(ctx, View("bogus"), testIdentifier)
		assert.ErrorIs(t, err, ErrUnknownView)
		_, ok := AsCommandError(err)
		assert.False(t, ok)
	})
}

func TestLookupService_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	identity := new(testhelpers.MockIdentityProvider)
	store := new(testhelpers.MockRecordStore)
	metrics := new(testhelpers.MockLookupMetrics)
	service := NewLookupService(identity, store, new(testhelpers.MockLiveSession), metrics)

	identity.On("Resolve", ctx, testPlatformID).Return(testProfile(), nil)
	store.On("GetEconomy", ctx, testIdentifier).Return(nil, entities.ErrPlayerNotFound)
	metrics.On("RecordBackendCall", ctx, BackendIdentity, mock.AnythingOfType("time.Duration"), nil).Once()
	metrics.On("RecordBackendCall", ctx, BackendStore, mock.AnythingOfType("time.Duration"), entities.ErrPlayerNotFound).Once()
	metrics.On("RecordLookup", ctx, "lookup", "player_not_found").Once()

	_, err := service.BasicLookup(ctx, testIdentifier)

	require.Error(t, err)
	metrics.AssertExpectations(t)
}

func TestCommandError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&CommandError{Kind: KindStoreUnavailable, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store_unavailable: boom", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	cmdErr, ok := AsCommandError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindStoreUnavailable, cmdErr.Kind)
}

func TestRequestID_RoundTrip(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))

	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
}
