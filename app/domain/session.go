package domain

import (
	"time"
)

// SessionState is the bootstrap state of a client session
type SessionState string

const (
	SessionUninitialized   SessionState = "uninitialized"
	SessionChecking        SessionState = "checking"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

// Session is the transient client-side auth state owned by the session
// bootstrap. All other components treat it as read-only. The Seq field
// is a monotonically increasing sequence number per identity check;
// completions carrying a stale sequence are discarded.
type Session struct {
	Key         string       `json:"key"`
	State       SessionState `json:"state"`
	Initialized bool         `json:"initialized"`
	Identity    *Identity    `json:"identity,omitempty"`
	Profile     *Profile     `json:"profile,omitempty"`
	Seq         uint64       `json:"seq"`
	CheckedAt   time.Time    `json:"checked_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewSession creates an uninitialized session for a client key
func NewSession(key string) *Session {
	now := time.Now()
	return &Session{
		Key:       key,
		State:     SessionUninitialized,
		UpdatedAt: now,
	}
}

// Resolving reports whether the session is still being resolved. The
// route guard must block, not decide, while this is true.
func (s *Session) Resolving() bool {
	return s.State == SessionUninitialized || s.State == SessionChecking
}

// IsAuthenticated reports whether the session carries an identity
func (s *Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated && s.Identity != nil
}

// BeginCheck moves the session into checking and allocates the next
// sequence number, which the matching completion must present.
func (s *Session) BeginCheck() uint64 {
	s.Seq++
	s.State = SessionChecking
	s.UpdatedAt = time.Now()
	return s.Seq
}

// Complete applies the result of an identity check or an auth event.
// It returns false without mutating anything when seq is stale: a later
// check or event has already superseded this completion. Initialized,
// once set, stays set.
func (s *Session) Complete(seq uint64, identity *Identity, profile *Profile) bool {
	if seq < s.Seq {
		return false
	}

	now := time.Now()
	s.Seq = seq
	s.Identity = identity
	s.Profile = profile
	if identity != nil {
		s.State = SessionAuthenticated
	} else {
		s.State = SessionUnauthenticated
	}
	s.Initialized = true
	s.CheckedAt = now
	s.UpdatedAt = now
	return true
}

// Reset is the manual recovery action: it forces the session back to a
// recoverable terminal state. This is the only transition allowed to
// clear the initialized flag.
func (s *Session) Reset() {
	s.Seq++
	s.State = SessionUninitialized
	s.Initialized = false
	s.Identity = nil
	s.Profile = nil
	s.UpdatedAt = time.Now()
}
