package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the managed auth service's canonical user record, as far
// as this service is concerned. It is created by the identity provider
// on signup and immutable from our side.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// KratosSession is the slice of an Ory Kratos session this service
// consumes: identity, activity flag and expiry.
type KratosSession struct {
	ID        string    `json:"id"`
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expires_at"`
	Identity  Identity  `json:"identity"`
}

// IsValid returns true if the session is active and not expired
func (s *KratosSession) IsValid() bool {
	return s.Active && time.Now().Before(s.ExpiresAt)
}

// AuthEventKind distinguishes identity-change notifications
type AuthEventKind string

const (
	AuthEventSignedIn  AuthEventKind = "signed_in"
	AuthEventSignedOut AuthEventKind = "signed_out"
)

// AuthEvent is an identity-change notification published by auth
// actions and consumed by the session bootstrap. Events are delivered
// in occurrence order but may race with an in-flight session check; the
// bootstrap's sequence guard resolves the race.
type AuthEvent struct {
	Kind       AuthEventKind `json:"kind"`
	Identity   *Identity     `json:"identity,omitempty"`
	SessionKey string        `json:"session_key"`
	OccurredAt time.Time     `json:"occurred_at"`
}
