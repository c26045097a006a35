package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every backend must share.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

		v, err := r.Get(ctx, "k1")
		require.NoError(t, err)
		require.Equal(t, []byte{0x01, 0x02}, v)
	})

	t.Run("missing key reads as nil, nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(ctx, "absent")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "k", []byte("old")))
		require.NoError(t, r.Set(ctx, "k", []byte("new")))

		v, err := r.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, []byte("new"), v)
	})

	t.Run("set many writes all keys", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "access_token", []byte("stale")))
		require.NoError(t, r.SetMany(ctx, map[string][]byte{
			"access_token":  []byte("a2"),
			"refresh_token": []byte("r2"),
		}))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{
			"access_token":  []byte("a2"),
			"refresh_token": []byte("r2"),
		}, m)
	})

	t.Run("delete removes listed keys and is idempotent", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.SetMany(ctx, map[string][]byte{
			"access_token":  []byte("a"),
			"refresh_token": []byte("r"),
			"local_cart":    []byte("[]"),
		}))

		require.NoError(t, r.Delete(ctx, "access_token", "refresh_token"))
		require.NoError(t, r.Delete(ctx, "access_token", "refresh_token"))
		require.NoError(t, r.Delete(ctx))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"local_cart": []byte("[]")}, m)
	})

	t.Run("clear removes everything", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "a", []byte{1}))
		require.NoError(t, r.Set(ctx, "b", []byte{2}))
		require.NoError(t, r.Clear(ctx))

		m, err := r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})
}
