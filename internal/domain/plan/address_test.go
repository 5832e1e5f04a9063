package plan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseAddress_Hex accepts the 0x form and rejects malformed input.
func TestParseAddress_Hex(t *testing.T) {
	t.Parallel()

	a, err := ParseAddress("0x00000000000000000000000000000000000000ff")
	require.NoError(t, err)
	require.Equal(t, addr(0xff), a)
	require.Equal(t, "0x00000000000000000000000000000000000000ff", a.Hex())

	for _, bad := range []string{"", "0x1234", "0xzz000000000000000000000000000000000000ff", "not-an-address"} {
		_, err = ParseAddress(bad)
		require.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}

// TestAddress_StringRoundtrip checks that the base58 form parses back to the same identity.
func TestAddress_StringRoundtrip(t *testing.T) {
	t.Parallel()

	want := Address{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
		0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14}

	encoded := want.String()
	require.NotEqual(t, want.Hex(), encoded)

	got, err := ParseAddress(encoded)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.False(t, got.IsZero())
	require.True(t, ZeroAddress.IsZero())
}

// TestKind maps specific errors to their kinds.
func TestKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, ErrInvalidState, Kind(ErrAlreadyLocked))
	require.Equal(t, ErrUnauthorized, Kind(ErrNotAdmin))
	require.Equal(t, ErrReentrancyRejected, Kind(ErrReentrancy))
	require.Nil(t, Kind(nil))
}
