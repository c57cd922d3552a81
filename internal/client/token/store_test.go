package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestMemStore_RoundTrip(t *testing.T) {
	s := NewMemStore()

	_, ok := s.Get()
	require.False(t, ok)

	require.NoError(t, s.Set("abc"))
	got, ok := s.Get()
	require.True(t, ok)
	require.Equal(t, "abc", got)

	require.NoError(t, s.Set("def"))
	got, _ = s.Get()
	require.Equal(t, "def", got, "Set must overwrite")

	require.NoError(t, s.Remove())
	_, ok = s.Get()
	require.False(t, ok)

	require.NoError(t, s.Remove(), "Remove is idempotent")
}

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok := s.Get()
	require.False(t, ok)

	require.NoError(t, s.Set("tok-1"))
	got, ok := s.Get()
	require.True(t, ok)
	require.Equal(t, "tok-1", got)

	require.NoError(t, s.Set("tok-2"))
	got, _ = s.Get()
	require.Equal(t, "tok-2", got)

	require.NoError(t, s.Remove())
	_, ok = s.Get()
	require.False(t, ok)

	require.NoError(t, s.Remove())
}

func TestFileStore_EmptyFileIsAbsent(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("   \n"))
	_, ok := s.Get()
	require.False(t, ok)
}

func TestExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)

	got, ok := Expiry(signed)
	require.True(t, ok)
	require.WithinDuration(t, exp, got, time.Second)

	_, ok = Expiry("not-a-jwt")
	require.False(t, ok, "opaque tokens report no expiry")
}
