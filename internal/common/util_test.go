package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("s3cret")
	WipeByteArray(b)
	require.Equal(t, make([]byte, 6), b)

	WipeByteArray(nil) // must not panic
}
