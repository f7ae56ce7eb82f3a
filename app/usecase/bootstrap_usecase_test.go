package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"account-service/app/domain"
	"account-service/app/driver/eventbus"
	"account-service/app/driver/memstore"
	"account-service/app/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testIdentity() domain.Identity {
	return domain.Identity{
		ID:    uuid.MustParse("4f9be571-0e27-4a42-9b25-7c8b9f30f6c4"),
		Email: "ada@example.com",
	}
}

func testKratosSession() *domain.KratosSession {
	return &domain.KratosSession{
		ID:        "kratos-session-1",
		Active:    true,
		ExpiresAt: time.Now().Add(time.Hour),
		Identity:  testIdentity(),
	}
}

func testProfile(t *testing.T) *domain.Profile {
	t.Helper()
	identity := testIdentity()
	profile, err := domain.NewProfile(identity.ID, identity.Email)
	require.NoError(t, err)
	return profile
}

type bootstrapFixture struct {
	gateway  *mocks.MockAuthGateway
	profiles *mocks.MockProfileUsecase
	store    *memstore.SessionStore
	bus      *eventbus.Bus
	usecase  *BootstrapUsecase
}

func newBootstrapFixture(t *testing.T, checkTimeout, retryDelay time.Duration) *bootstrapFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bootstrapFixture{
		gateway:  mocks.NewMockAuthGateway(ctrl),
		profiles: mocks.NewMockProfileUsecase(ctrl),
		store:    memstore.NewSessionStore(testLogger()),
		bus:      eventbus.New(testLogger()),
	}
	f.usecase = NewBootstrapUsecase(f.gateway, f.profiles, f.store, f.bus, checkTimeout, retryDelay, testLogger())
	t.Cleanup(func() { _ = f.usecase.Close() })
	return f
}

func TestBootstrapUsecase_Bootstrap(t *testing.T) {
	identity := testIdentity()

	tests := []struct {
		name            string
		setupMocks      func(t *testing.T, f *bootstrapFixture)
		wantState       domain.SessionState
		wantInitialized bool
		wantIdentity    bool
	}{
		{
			name: "active session resolves to authenticated",
			setupMocks: func(t *testing.T, f *bootstrapFixture) {
				f.gateway.EXPECT().
					WhoAmI(gomock.Any(), "ory_kratos_session=abc").
					Return(testKratosSession(), nil)
				f.profiles.EXPECT().
					EnsureProfile(gomock.Any(), identity).
					Return(testProfile(t), nil)
			},
			wantState:       domain.SessionAuthenticated,
			wantInitialized: true,
			wantIdentity:    true,
		},
		{
			name: "no session resolves to unauthenticated",
			setupMocks: func(t *testing.T, f *bootstrapFixture) {
				f.gateway.EXPECT().
					WhoAmI(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrNoSession)
			},
			wantState:       domain.SessionUnauthenticated,
			wantInitialized: true,
		},
		{
			name: "expired session resolves to unauthenticated",
			setupMocks: func(t *testing.T, f *bootstrapFixture) {
				f.gateway.EXPECT().
					WhoAmI(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("whoami: %w", domain.ErrSessionExpired))
			},
			wantState:       domain.SessionUnauthenticated,
			wantInitialized: true,
		},
		{
			name: "provider failure resolves to unauthenticated instead of sticking in checking",
			setupMocks: func(t *testing.T, f *bootstrapFixture) {
				f.gateway.EXPECT().
					WhoAmI(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("kratos unreachable: %w", domain.ErrServiceUnavailable))
			},
			wantState:       domain.SessionUnauthenticated,
			wantInitialized: true,
		},
		{
			name: "profile resolution failure resolves to unauthenticated",
			setupMocks: func(t *testing.T, f *bootstrapFixture) {
				f.gateway.EXPECT().
					WhoAmI(gomock.Any(), gomock.Any()).
					Return(testKratosSession(), nil)
				f.profiles.EXPECT().
					EnsureProfile(gomock.Any(), identity).
					Return(nil, fmt.Errorf("profiles table unavailable: %w", domain.ErrServiceUnavailable))
			},
			wantState:       domain.SessionUnauthenticated,
			wantInitialized: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBootstrapFixture(t, time.Second, time.Hour)
			tt.setupMocks(t, f)

			session, err := f.usecase.Bootstrap(context.Background(), "client-1", "ory_kratos_session=abc")

			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, tt.wantState, session.State)
			assert.Equal(t, tt.wantInitialized, session.Initialized)
			if tt.wantIdentity {
				require.NotNil(t, session.Identity)
				assert.Equal(t, identity.ID, session.Identity.ID)
				require.NotNil(t, session.Profile)
				assert.Equal(t, domain.TierFree, session.Profile.Tier)
			} else {
				assert.Nil(t, session.Identity)
				assert.Nil(t, session.Profile)
			}
		})
	}
}

// pendingRetries reports how many deferred retries the usecase is
// currently tracking
func (f *bootstrapFixture) pendingRetries() int {
	f.usecase.mu.Lock()
	defer f.usecase.mu.Unlock()
	return len(f.usecase.retries)
}

func TestBootstrapUsecase_TimeoutSchedulesExactlyOneRetry(t *testing.T) {
	f := newBootstrapFixture(t, time.Second, 10*time.Millisecond)
	identity := testIdentity()

	retryDone := make(chan struct{})
	first := f.gateway.EXPECT().
		WhoAmI(gomock.Any(), "cookie").
		Return(nil, fmt.Errorf("whoami: %w", domain.ErrTimeout))
	f.gateway.EXPECT().
		WhoAmI(gomock.Any(), "cookie").
		After(first).
		Return(testKratosSession(), nil)
	f.profiles.EXPECT().
		EnsureProfile(gomock.Any(), identity).
		DoAndReturn(func(context.Context, domain.Identity) (*domain.Profile, error) {
			defer close(retryDone)
			return testProfile(t), nil
		})

	session, err := f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionUnauthenticated, session.State)
	assert.True(t, session.Initialized)

	select {
	case <-retryDone:
	case <-time.After(time.Second):
		t.Fatal("deferred retry never ran")
	}

	// give the retry's completion a moment to land in the store
	assert.Eventually(t, func() bool {
		snap := f.usecase.Snapshot("client-1")
		return snap != nil && snap.State == domain.SessionAuthenticated
	}, time.Second, 5*time.Millisecond)
}

func TestBootstrapUsecase_SecondTimeoutDoesNotRetryAgain(t *testing.T) {
	f := newBootstrapFixture(t, time.Second, 5*time.Millisecond)

	// initial check plus the single deferred retry, nothing more
	f.gateway.EXPECT().
		WhoAmI(gomock.Any(), "cookie").
		Return(nil, fmt.Errorf("whoami: %w", domain.ErrTimeout)).
		Times(2)

	_, err := f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)

	// wait well past several retry delays; gomock fails the test if a
	// third call arrives
	time.Sleep(50 * time.Millisecond)

	snap := f.usecase.Snapshot("client-1")
	require.NotNil(t, snap)
	assert.Equal(t, domain.SessionUnauthenticated, snap.State)
}

func TestBootstrapUsecase_ResetReArmsRetry(t *testing.T) {
	f := newBootstrapFixture(t, time.Second, 5*time.Millisecond)

	// two bootstrap cycles, each timing out once and retrying once
	f.gateway.EXPECT().
		WhoAmI(gomock.Any(), "cookie").
		Return(nil, fmt.Errorf("whoami: %w", domain.ErrTimeout)).
		Times(4)

	_, err := f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)

	reset := f.usecase.Reset("client-1")
	require.NotNil(t, reset)
	assert.Equal(t, domain.SessionUninitialized, reset.State)
	assert.False(t, reset.Initialized)
	assert.Nil(t, reset.Identity)

	_, err = f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
}

func TestBootstrapUsecase_RetryEntryClearedAfterItRuns(t *testing.T) {
	f := newBootstrapFixture(t, time.Second, 5*time.Millisecond)

	// two bootstrap cycles, each timing out once and retrying once; no
	// Reset in between, the finished retry alone clears its entry
	f.gateway.EXPECT().
		WhoAmI(gomock.Any(), "cookie").
		Return(nil, fmt.Errorf("whoami: %w", domain.ErrTimeout)).
		Times(4)

	_, err := f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return f.pendingRetries() == 0 },
		time.Second, 5*time.Millisecond,
		"the retry entry must be dropped once the retry has run")

	// the next timeout starts a fresh cycle with its own single retry
	_, err = f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return f.pendingRetries() == 0 },
		time.Second, 5*time.Millisecond)
}

func TestBootstrapUsecase_AuthenticationCancelsPendingRetry(t *testing.T) {
	f := newBootstrapFixture(t, time.Second, 50*time.Millisecond)
	identity := testIdentity()

	// only the initial check times out; gomock fails the test if the
	// cancelled retry still fires a second call
	f.gateway.EXPECT().
		WhoAmI(gomock.Any(), "cookie").
		Return(nil, fmt.Errorf("whoami: %w", domain.ErrTimeout))
	f.profiles.EXPECT().
		EnsureProfile(gomock.Any(), identity).
		Return(testProfile(t), nil)

	_, err := f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)
	require.Equal(t, 1, f.pendingRetries())

	f.bus.Publish(context.Background(), domain.AuthEvent{
		Kind:       domain.AuthEventSignedIn,
		Identity:   &identity,
		SessionKey: "client-1",
		OccurredAt: time.Now(),
	})

	assert.Equal(t, 0, f.pendingRetries(), "authentication must drop the pending retry")

	// wait past the retry delay to prove the timer was stopped
	time.Sleep(120 * time.Millisecond)

	snap := f.usecase.Snapshot("client-1")
	require.NotNil(t, snap)
	assert.Equal(t, domain.SessionAuthenticated, snap.State)
}

func TestBootstrapUsecase_SignedInEventSupersedesInFlightCheck(t *testing.T) {
	f := newBootstrapFixture(t, time.Second, time.Hour)
	identity := testIdentity()

	f.profiles.EXPECT().
		EnsureProfile(gomock.Any(), identity).
		Return(testProfile(t), nil)

	// A sign-in lands while the identity check is still in flight. The
	// event bus delivers synchronously, so publishing from inside WhoAmI
	// models the interleaving exactly: the event allocates a newer
	// sequence number, and the older check's signed-out answer must be
	// discarded.
	f.gateway.EXPECT().
		WhoAmI(gomock.Any(), "cookie").
		DoAndReturn(func(context.Context, string) (*domain.KratosSession, error) {
			f.bus.Publish(context.Background(), domain.AuthEvent{
				Kind:       domain.AuthEventSignedIn,
				Identity:   &identity,
				SessionKey: "client-1",
				OccurredAt: time.Now(),
			})
			return nil, domain.ErrNoSession
		})

	session, err := f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)

	assert.Equal(t, domain.SessionAuthenticated, session.State, "stale signed-out completion must not overwrite the newer sign-in")
	require.NotNil(t, session.Identity)
	assert.Equal(t, identity.ID, session.Identity.ID)
}

func TestBootstrapUsecase_SignedOutEvent(t *testing.T) {
	f := newBootstrapFixture(t, time.Second, time.Hour)
	identity := testIdentity()

	f.gateway.EXPECT().
		WhoAmI(gomock.Any(), gomock.Any()).
		Return(testKratosSession(), nil)
	f.profiles.EXPECT().
		EnsureProfile(gomock.Any(), identity).
		Return(testProfile(t), nil)

	session, err := f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	require.NoError(t, err)
	require.Equal(t, domain.SessionAuthenticated, session.State)

	f.bus.Publish(context.Background(), domain.AuthEvent{
		Kind:       domain.AuthEventSignedOut,
		SessionKey: "client-1",
		OccurredAt: time.Now(),
	})

	snap := f.usecase.Snapshot("client-1")
	require.NotNil(t, snap)
	assert.Equal(t, domain.SessionUnauthenticated, snap.State)
	assert.True(t, snap.Initialized, "sign-out must not deinitialize the session")
	assert.Nil(t, snap.Identity)
	assert.Nil(t, snap.Profile)
}

func TestBootstrapUsecase_Close(t *testing.T) {
	f := newBootstrapFixture(t, time.Second, time.Hour)

	require.NoError(t, f.usecase.Close())
	require.NoError(t, f.usecase.Close(), "close is idempotent")

	_, err := f.usecase.Bootstrap(context.Background(), "client-1", "cookie")
	assert.ErrorIs(t, err, domain.ErrBootstrapClosed)

	// events after close are dropped
	identity := testIdentity()
	f.bus.Publish(context.Background(), domain.AuthEvent{
		Kind:       domain.AuthEventSignedIn,
		Identity:   &identity,
		SessionKey: "client-1",
		OccurredAt: time.Now(),
	})
	assert.Nil(t, f.usecase.Snapshot("client-1"))
}
