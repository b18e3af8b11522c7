package contact

import (
	"context"
	"testing"

	"github.com/SonnyAu/palate-website/session"
	"github.com/SonnyAu/palate-website/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionContext(t *testing.T) (*session.Manager, context.Context) {
	t.Helper()

	manager := session.ProvideSessionManager(testutils.GetTestConfig())
	ctx, err := manager.Load(context.Background(), "")
	require.NoError(t, err)

	return manager, ctx
}

func TestTokenStore(t *testing.T) {
	t.Run("issue and consume", func(t *testing.T) {
		manager, ctx := newSessionContext(t)
		store := NewTokenStore(manager)

		token, err := store.Issue(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(token), 10)

		assert.True(t, store.Consume(ctx, token))
	})

	t.Run("single use", func(t *testing.T) {
		manager, ctx := newSessionContext(t)
		store := NewTokenStore(manager)

		token, err := store.Issue(ctx)
		require.NoError(t, err)

		assert.True(t, store.Consume(ctx, token))
		assert.False(t, store.Consume(ctx, token), "a consumed token must not validate again")
	})

	t.Run("mismatch still consumes", func(t *testing.T) {
		manager, ctx := newSessionContext(t)
		store := NewTokenStore(manager)

		token, err := store.Issue(ctx)
		require.NoError(t, err)

		assert.False(t, store.Consume(ctx, "not-the-token"))
		assert.False(t, store.Consume(ctx, token), "the failed attempt should have spent the token")
	})

	t.Run("issuing overwrites the previous token", func(t *testing.T) {
		manager, ctx := newSessionContext(t)
		store := NewTokenStore(manager)

		first, err := store.Issue(ctx)
		require.NoError(t, err)
		second, err := store.Issue(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.False(t, store.Consume(ctx, first), "an overwritten token must not validate")
	})

	t.Run("empty session rejects everything", func(t *testing.T) {
		manager, ctx := newSessionContext(t)
		store := NewTokenStore(manager)

		assert.False(t, store.Consume(ctx, ""))
		assert.False(t, store.Consume(ctx, "anything"))
	})
}
