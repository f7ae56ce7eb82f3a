package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"account-service/app/domain"
	"account-service/app/port"
)

// BootstrapUsecase drives the session state machine:
//
//	uninitialized -> checking -> authenticated | unauthenticated
//
// Each identity check allocates a sequence number; a completion whose
// number is stale is discarded, so a sign-in racing an in-flight check
// can never be overwritten by the older result. Timeouts resolve the
// session to unauthenticated so the app stays usable, and arm a single
// deferred retry. The retry entry is dropped once the retry has run,
// the session authenticates, or the session is reset, so the retry
// table stays bounded by the number of retries actually pending.
type BootstrapUsecase struct {
	gateway  port.AuthGateway
	profiles port.ProfileUsecase
	store    port.SessionStore
	events   port.AuthEventBus

	checkTimeout time.Duration
	retryDelay   time.Duration
	logger       *slog.Logger

	mu          sync.Mutex
	closed      bool
	retries     map[string]*time.Timer
	unsubscribe func()
}

// NewBootstrapUsecase creates the bootstrap and subscribes it to the
// identity-change event stream. Callers must Close it to release the
// subscription.
func NewBootstrapUsecase(
	gateway port.AuthGateway,
	profiles port.ProfileUsecase,
	store port.SessionStore,
	events port.AuthEventBus,
	checkTimeout time.Duration,
	retryDelay time.Duration,
	logger *slog.Logger,
) *BootstrapUsecase {
	u := &BootstrapUsecase{
		gateway:      gateway,
		profiles:     profiles,
		store:        store,
		events:       events,
		checkTimeout: checkTimeout,
		retryDelay:   retryDelay,
		logger:       logger.With("component", "bootstrap_usecase"),
		retries:      make(map[string]*time.Timer),
	}
	u.unsubscribe = events.Subscribe(u.applyEvent)
	return u
}

// Bootstrap resolves the session for a client key from its cookie
// header. The session always leaves in a terminal state: identity check
// failures of any kind resolve to unauthenticated rather than leaving
// the client stuck in checking.
func (u *BootstrapUsecase) Bootstrap(ctx context.Context, sessionKey, cookieHeader string) (*domain.Session, error) {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return nil, domain.ErrBootstrapClosed
	}
	u.mu.Unlock()

	var seq uint64
	u.store.Mutate(sessionKey, func(s *domain.Session) {
		seq = s.BeginCheck()
	})

	checkCtx, cancel := context.WithTimeout(ctx, u.checkTimeout)
	defer cancel()

	session := u.resolve(checkCtx, sessionKey, cookieHeader, seq)
	if ctx.Err() != nil {
		return session, ctx.Err()
	}
	return session, nil
}

// resolve performs one identity check and applies its result under the
// sequence guard
func (u *BootstrapUsecase) resolve(ctx context.Context, sessionKey, cookieHeader string, seq uint64) *domain.Session {
	kratosSession, err := u.gateway.WhoAmI(ctx, cookieHeader)
	if err != nil {
		return u.resolveFailure(sessionKey, cookieHeader, seq, err)
	}

	identity := kratosSession.Identity
	profile, err := u.profiles.EnsureProfile(ctx, identity)
	if err != nil {
		u.logger.Error("profile resolution failed during bootstrap",
			"session_key", sessionKey,
			"identity_id", identity.ID,
			"error", err)
		return u.complete(sessionKey, seq, nil, nil)
	}

	u.logger.Info("session authenticated",
		"session_key", sessionKey,
		"identity_id", identity.ID,
		"tier", profile.Tier)
	return u.complete(sessionKey, seq, &identity, profile)
}

// resolveFailure maps an identity check failure to a terminal state.
// No session and expired session are ordinary signed-out answers;
// timeouts additionally arm the single deferred retry.
func (u *BootstrapUsecase) resolveFailure(sessionKey, cookieHeader string, seq uint64, err error) *domain.Session {
	switch {
	case errors.Is(err, domain.ErrNoSession), errors.Is(err, domain.ErrSessionExpired):
		u.logger.Debug("no active session", "session_key", sessionKey)

	case domain.IsTimeout(err):
		u.logger.Warn("identity check timed out, treating as signed out",
			"session_key", sessionKey,
			"error", err)
		u.armRetry(sessionKey, cookieHeader)

	default:
		u.logger.Error("identity check failed, treating as signed out",
			"session_key", sessionKey,
			"error", err)
	}

	return u.complete(sessionKey, seq, nil, nil)
}

// armRetry schedules the deferred retry unless one is already pending
// for this session key. The entry suppresses re-arming while the retry
// waits and while it runs; once the retry has finished it removes
// itself, so a later timeout starts a fresh cycle.
func (u *BootstrapUsecase) armRetry(sessionKey, cookieHeader string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed || u.retries[sessionKey] != nil {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(u.retryDelay, func() {
		u.mu.Lock()
		if u.closed {
			u.mu.Unlock()
			return
		}
		u.mu.Unlock()

		u.logger.Info("retrying identity check", "session_key", sessionKey)

		var seq uint64
		u.store.Mutate(sessionKey, func(s *domain.Session) {
			seq = s.BeginCheck()
		})

		ctx, cancel := context.WithTimeout(context.Background(), u.checkTimeout)
		defer cancel()
		u.resolve(ctx, sessionKey, cookieHeader, seq)

		u.mu.Lock()
		if u.retries[sessionKey] == timer {
			delete(u.retries, sessionKey)
		}
		u.mu.Unlock()
	})
	u.retries[sessionKey] = timer
}

// cancelRetry stops and drops a pending deferred retry, if any
func (u *BootstrapUsecase) cancelRetry(sessionKey string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if timer, ok := u.retries[sessionKey]; ok {
		timer.Stop()
		delete(u.retries, sessionKey)
	}
}

// applyEvent folds an identity-change event into the session it names.
// Events allocate their own sequence number, so an event that arrives
// while a check is in flight supersedes it.
func (u *BootstrapUsecase) applyEvent(event domain.AuthEvent) {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return
	}
	u.mu.Unlock()

	var seq uint64
	u.store.Mutate(event.SessionKey, func(s *domain.Session) {
		seq = s.BeginCheck()
	})

	if event.Kind != domain.AuthEventSignedIn || event.Identity == nil {
		u.logger.Info("applying signed-out event", "session_key", event.SessionKey)
		u.complete(event.SessionKey, seq, nil, nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), u.checkTimeout)
	defer cancel()

	profile, err := u.profiles.EnsureProfile(ctx, *event.Identity)
	if err != nil {
		u.logger.Error("profile resolution failed for signed-in event",
			"session_key", event.SessionKey,
			"identity_id", event.Identity.ID,
			"error", err)
		u.complete(event.SessionKey, seq, nil, nil)
		return
	}

	u.logger.Info("applying signed-in event",
		"session_key", event.SessionKey,
		"identity_id", event.Identity.ID)
	u.complete(event.SessionKey, seq, event.Identity, profile)
}

// complete applies a check result under the store lock. The sequence
// guard inside Session.Complete discards stale results.
func (u *BootstrapUsecase) complete(sessionKey string, seq uint64, identity *domain.Identity, profile *domain.Profile) *domain.Session {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return u.store.Snapshot(sessionKey)
	}
	u.mu.Unlock()

	applied := false
	session := u.store.Mutate(sessionKey, func(s *domain.Session) {
		if !s.Complete(seq, identity, profile) {
			u.logger.Debug("discarding stale identity check result",
				"session_key", sessionKey,
				"stale_seq", seq,
				"current_seq", s.Seq)
			return
		}
		applied = true
	})

	// an authenticated session has no use for a pending retry
	if applied && identity != nil {
		u.cancelRetry(sessionKey)
	}
	return session
}

// Snapshot returns the current session state without side effects
func (u *BootstrapUsecase) Snapshot(sessionKey string) *domain.Session {
	return u.store.Snapshot(sessionKey)
}

// Reset is the manual recovery action: it forces the session back to
// uninitialized and clears any pending deferred retry so the next
// bootstrap starts a fresh cycle.
func (u *BootstrapUsecase) Reset(sessionKey string) *domain.Session {
	u.cancelRetry(sessionKey)

	u.logger.Info("session reset", "session_key", sessionKey)
	return u.store.Mutate(sessionKey, func(s *domain.Session) {
		s.Reset()
	})
}

// Close unsubscribes from the event stream and drops all in-flight
// completions. Further Bootstrap calls fail with ErrBootstrapClosed.
func (u *BootstrapUsecase) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil
	}
	u.closed = true
	for _, timer := range u.retries {
		timer.Stop()
	}
	clear(u.retries)
	if u.unsubscribe != nil {
		u.unsubscribe()
	}
	return nil
}
