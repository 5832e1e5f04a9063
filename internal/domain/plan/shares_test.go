package plan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestComputeShares checks the split, including the rounding remainder going to the protocol.
func TestComputeShares(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		balance uint64
		count   uint64
		want    Shares
	}{
		{name: "even split", balance: 1000, count: 2, want: Shares{PerBeneficiary: 250, Protocol: 500}},
		{name: "odd balance", balance: 1001, count: 2, want: Shares{PerBeneficiary: 250, Protocol: 501}},
		{name: "three ways", balance: 1000, count: 3, want: Shares{PerBeneficiary: 166, Protocol: 502}},
		{name: "dust", balance: 1, count: 1, want: Shares{PerBeneficiary: 0, Protocol: 1}},
		{name: "five ways", balance: 99, count: 5, want: Shares{PerBeneficiary: 9, Protocol: 54}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ComputeShares(tc.balance, tc.count)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.balance, got.PerBeneficiary*tc.count+got.Protocol)
			require.LessOrEqual(t, got.PerBeneficiary*tc.count, tc.balance/2)
		})
	}
}

// TestComputeShares_Conservation sweeps small inputs and asserts shares always add up to the balance.
func TestComputeShares_Conservation(t *testing.T) {
	t.Parallel()

	for balance := uint64(1); balance <= 500; balance++ {
		for count := uint64(1); count <= MaxBeneficiaries; count++ {
			got, err := ComputeShares(balance, count)
			require.NoError(t, err)
			require.Equal(t, balance, got.PerBeneficiary*count+got.Protocol)
		}
	}
}

// TestComputeShares_Rejects verifies zero inputs are refused with the matching kinds.
func TestComputeShares_Rejects(t *testing.T) {
	t.Parallel()

	_, err := ComputeShares(100, 0)
	require.ErrorIs(t, err, ErrNoBeneficiaries)
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = ComputeShares(0, 2)
	require.ErrorIs(t, err, ErrNoFunds)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

// TestPreviewShare matches the unlocked potential-share preview.
func TestPreviewShare(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(250), PreviewShare(1001, 2))
	require.Zero(t, PreviewShare(1000, 0))
}
