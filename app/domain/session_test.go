package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Lifecycle(t *testing.T) {
	session := NewSession("client-1")

	assert.Equal(t, SessionUninitialized, session.State)
	assert.False(t, session.Initialized)
	assert.True(t, session.Resolving())
	assert.False(t, session.IsAuthenticated())

	seq := session.BeginCheck()
	assert.Equal(t, SessionChecking, session.State)
	assert.True(t, session.Resolving())

	id := uuid.MustParse("4f9be571-0e27-4a42-9b25-7c8b9f30f6c4")
	identity := &Identity{ID: id, Email: "ada@example.com"}
	profile, err := NewProfile(id, "ada@example.com")
	require.NoError(t, err)

	require.True(t, session.Complete(seq, identity, profile))
	assert.Equal(t, SessionAuthenticated, session.State)
	assert.True(t, session.Initialized)
	assert.False(t, session.Resolving())
	assert.True(t, session.IsAuthenticated())
}

func TestSession_CompleteWithoutIdentity(t *testing.T) {
	session := NewSession("client-1")
	seq := session.BeginCheck()

	require.True(t, session.Complete(seq, nil, nil))
	assert.Equal(t, SessionUnauthenticated, session.State)
	assert.True(t, session.Initialized)
	assert.False(t, session.IsAuthenticated())
}

func TestSession_StaleCompletionIsDiscarded(t *testing.T) {
	session := NewSession("client-1")
	staleSeq := session.BeginCheck()

	id := uuid.MustParse("4f9be571-0e27-4a42-9b25-7c8b9f30f6c4")
	identity := &Identity{ID: id, Email: "ada@example.com"}
	profile, err := NewProfile(id, "ada@example.com")
	require.NoError(t, err)

	// a newer check supersedes the first one before it completes
	freshSeq := session.BeginCheck()
	require.True(t, session.Complete(freshSeq, identity, profile))
	require.Equal(t, SessionAuthenticated, session.State)

	assert.False(t, session.Complete(staleSeq, nil, nil), "stale completion must be rejected")
	assert.Equal(t, SessionAuthenticated, session.State, "stale completion must not mutate state")
	assert.NotNil(t, session.Identity)
	assert.True(t, session.Initialized)
}

func TestSession_InitializedSurvivesLaterCompletions(t *testing.T) {
	session := NewSession("client-1")
	require.True(t, session.Complete(session.BeginCheck(), nil, nil))
	require.True(t, session.Initialized)

	// a later signed-out completion keeps the session initialized
	require.True(t, session.Complete(session.BeginCheck(), nil, nil))
	assert.True(t, session.Initialized)
}

func TestSession_Reset(t *testing.T) {
	session := NewSession("client-1")
	staleSeq := session.BeginCheck()

	id := uuid.MustParse("4f9be571-0e27-4a42-9b25-7c8b9f30f6c4")
	identity := &Identity{ID: id, Email: "ada@example.com"}
	require.True(t, session.Complete(staleSeq, identity, nil))

	session.Reset()
	assert.Equal(t, SessionUninitialized, session.State)
	assert.False(t, session.Initialized, "reset is the only transition that clears initialized")
	assert.Nil(t, session.Identity)
	assert.Nil(t, session.Profile)

	// reset bumps the sequence, so the pre-reset check can no longer land
	assert.False(t, session.Complete(staleSeq, identity, nil))
	assert.Equal(t, SessionUninitialized, session.State)
}
