//go:build linux || darwin

package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MappedExtend(t *testing.T) {
	r, err := NewMapped(1 << 20)
	require.NoError(t, err)
	defer r.Close()

	off, err := r.Extend(64)
	require.NoError(t, err)
	require.Equal(t, 0, off)

	// Writes to committed pages must stick.
	b := r.Bytes()
	for i := range b {
		b[i] = 0xA5
	}

	off, err = r.Extend(4096)
	require.NoError(t, err)
	require.Equal(t, 64, off)

	// Base address is stable: the earlier write is visible in the new view.
	b = r.Bytes()
	for i := 0; i < 64; i++ {
		require.Equal(t, byte(0xA5), b[i], "byte %d lost across extend", i)
	}
	for i := 64; i < r.Size(); i++ {
		require.Zero(t, b[i], "new byte %d not zeroed", i)
	}
}

func Test_MappedLimit(t *testing.T) {
	r, err := NewMapped(8192)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Extend(8192)
	require.NoError(t, err)

	_, err = r.Extend(1)
	require.ErrorIs(t, err, ErrLimit)
	require.Equal(t, 8192, r.Size())
}

func Test_MappedClose(t *testing.T) {
	r, err := NewMapped(4096)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	// Double close is a no-op.
	require.NoError(t, r.Close())
}

func Test_MappedBadReserve(t *testing.T) {
	_, err := NewMapped(0)
	require.ErrorIs(t, err, ErrGrowFail)
}
