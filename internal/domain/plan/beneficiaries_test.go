package plan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// addr builds a distinct non-zero address from a single byte.
func addr(b byte) Address {
	var a Address

	a[AddressSize-1] = b

	return a
}

// TestNewBeneficiaries_Truncates keeps the first five valid unique addresses in input order.
func TestNewBeneficiaries_Truncates(t *testing.T) {
	t.Parallel()

	set := NewBeneficiaries([]Address{
		addr(1), ZeroAddress, addr(2), addr(1), addr(3), addr(4), addr(5), addr(6), addr(7),
	})

	require.Equal(t, 5, set.Len())
	require.Equal(t, []Address{addr(1), addr(2), addr(3), addr(4), addr(5)}, set.List())
}

// TestNewBeneficiaries_Seven retains exactly five of seven valid addresses.
func TestNewBeneficiaries_Seven(t *testing.T) {
	t.Parallel()

	set := NewBeneficiaries([]Address{addr(1), addr(2), addr(3), addr(4), addr(5), addr(6), addr(7)})
	require.Equal(t, []Address{addr(1), addr(2), addr(3), addr(4), addr(5)}, set.List())
}

// TestBeneficiaries_AddRemove covers the guards on Add and Remove.
func TestBeneficiaries_AddRemove(t *testing.T) {
	t.Parallel()

	var set Beneficiaries

	require.ErrorIs(t, set.Add(ZeroAddress), ErrZeroAddress)
	require.NoError(t, set.Add(addr(1)))
	require.ErrorIs(t, set.Add(addr(1)), ErrDuplicateBeneficiary)

	for i := byte(2); i <= MaxBeneficiaries; i++ {
		require.NoError(t, set.Add(addr(i)))
	}

	require.ErrorIs(t, set.Add(addr(9)), ErrTooManyBeneficiaries)
	require.ErrorIs(t, set.Add(addr(9)), ErrInvalidParameter)

	require.NoError(t, set.Remove(addr(3)))
	require.ErrorIs(t, set.Remove(addr(3)), ErrNotBeneficiary)
	require.False(t, set.Contains(addr(3)))
	require.Equal(t, []Address{addr(1), addr(2), addr(4), addr(5)}, set.List())

	// List hands out a copy.
	list := set.List()
	list[0] = addr(42)
	require.True(t, set.Contains(addr(1)))
}
