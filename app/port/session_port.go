package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go

import (
	"context"

	"account-service/app/domain"
)

// BootstrapUsecase drives the session bootstrap state machine
type BootstrapUsecase interface {
	// Bootstrap resolves the session for a client key from its cookie
	// header, transitioning it to initialized exactly once per cycle.
	Bootstrap(ctx context.Context, sessionKey, cookieHeader string) (*domain.Session, error)
	// Snapshot returns the current session state without side effects
	Snapshot(sessionKey string) *domain.Session
	// Reset is the manual recovery action
	Reset(sessionKey string) *domain.Session
	// Close unsubscribes from the auth event stream and drops any
	// in-flight completions.
	Close() error
}

// SessionStore is the explicitly owned, injectable home of transient
// session state. Only the bootstrap usecase and auth actions mutate
// sessions; everyone else reads snapshots.
type SessionStore interface {
	// Get returns the session for a key, creating an uninitialized one
	// when absent.
	Get(sessionKey string) *domain.Session
	// Mutate applies fn to the session under the store's lock and
	// returns a snapshot of the result.
	Mutate(sessionKey string, fn func(*domain.Session)) *domain.Session
	// Snapshot returns a copy of the session, or nil when absent
	Snapshot(sessionKey string) *domain.Session
	Delete(sessionKey string)
}

// AuthEventBus is the identity-change event stream. Auth actions
// publish; the session bootstrap subscribes for the lifetime of the
// component and unsubscribes on teardown.
type AuthEventBus interface {
	Publish(ctx context.Context, event domain.AuthEvent)
	Subscribe(handler func(domain.AuthEvent)) (unsubscribe func())
}
