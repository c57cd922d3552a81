package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(context.Background(), filepath.Join(t.TempDir(), "state", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	got, _, err := c.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Nil(t, got, "miss returns nil value and nil error")

	require.NoError(t, c.Set(ctx, KeyUser, []byte(`{"id":"u1"}`)))
	got, at, err := c.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u1"}`, string(got))
	require.WithinDuration(t, time.Now().UTC(), at, 5*time.Second)

	require.NoError(t, c.Set(ctx, KeyUser, []byte(`{"id":"u2"}`)))
	got, _, err = c.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u2"}`, string(got), "set overwrites")
}

func TestCache_ClearRemovesEverything(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyUser, []byte(`1`)))
	require.NoError(t, c.Set(ctx, KeyDashboard, []byte(`2`)))

	require.NoError(t, c.Clear(ctx))

	got, _, err := c.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Nil(t, got)
	got, _, err = c.Get(ctx, KeyDashboard)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCache_JSONHelpers(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	var missing models.User
	ok, _, err := c.GetJSON(ctx, KeyUser, &missing)
	require.NoError(t, err)
	require.False(t, ok)

	want := models.User{ID: "u1", FullName: "Alice", OnboardingCompleted: true}
	require.NoError(t, c.SetJSON(ctx, KeyUser, want))

	var got models.User
	ok, _, err = c.GetJSON(ctx, KeyUser, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}
