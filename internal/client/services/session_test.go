package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

func newSessionManager(t *testing.T, store kv.Store, at time.Time) *sessionManager {
	t.Helper()
	m := NewSessionManager(session.NewKVRepository(store), logging.Discard()).(*sessionManager)
	m.now = func() time.Time { return at }
	return m
}

func TestSession_InitiallyAnonymous(t *testing.T) {
	m := newSessionManager(t, kv.NewMemoryStore(), time.Now())

	_, ok, err := m.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_EstablishThenCurrent(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := newSessionManager(t, kv.NewMemoryStore(), at)
	ctx := context.Background()

	require.NoError(t, m.Establish(ctx, "u@x.com"))

	marker, ok, err := m.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u@x.com", marker.Email)
	assert.True(t, marker.EstablishedAt.Equal(at))
}

func TestSession_EstablishOverwrites(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	first := newSessionManager(t, store, time.UnixMilli(1000))
	require.NoError(t, first.Establish(ctx, "a@x.com"))

	second := newSessionManager(t, store, time.UnixMilli(2000))
	require.NoError(t, second.Establish(ctx, "b@x.com"))

	marker, ok, err := first.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b@x.com", marker.Email)
	assert.Equal(t, int64(2000), marker.EstablishedAt.UnixMilli())
}

func TestSession_ClearTwiceStaysAnonymous(t *testing.T) {
	m := newSessionManager(t, kv.NewMemoryStore(), time.Now())
	ctx := context.Background()
	require.NoError(t, m.Establish(ctx, "u@x.com"))

	for i := 0; i < 2; i++ {
		require.NoError(t, m.Clear(ctx))
		_, ok, err := m.Current(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestSession_CorruptMarkerIsAnonymous(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, session.Key, []byte("not json")))

	m := newSessionManager(t, store, time.Now())
	_, ok, err := m.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// a fresh login replaces the corrupt value
	require.NoError(t, m.Establish(ctx, "u@x.com"))
	marker, ok, err := m.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u@x.com", marker.Email)
}
