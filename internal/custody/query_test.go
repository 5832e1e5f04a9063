package custody

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// TestQueries_Unlocked checks the read-only projections before expiry.
func TestQueries_Unlocked(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.createPlan(t, 1001)
	h.clock.Advance(time.Hour)

	active, expired := h.engine.PlanStatus(owner)
	require.True(t, active)
	require.False(t, expired)

	active, expired = h.engine.PlanStatus(other)
	require.False(t, active)
	require.False(t, expired)

	remaining, err := h.engine.TimeRemaining(owner)
	require.NoError(t, err)
	require.Equal(t, day-time.Hour, remaining)

	_, err = h.engine.TimeRemaining(other)
	require.ErrorIs(t, err, plan.ErrPlanNotFound)

	d, err := h.engine.PlanDetails(owner)
	require.NoError(t, err)
	require.Equal(t, uint64(1001), d.Balance)
	require.Equal(t, uint64(2), d.BeneficiaryCount)
	require.Equal(t, day, d.Timeout)
	require.False(t, d.Expired)
	require.Equal(t, d.LastReset.Add(day), d.ExpiresAt)
	require.Zero(t, d.Shares)

	status, err := h.engine.BeneficiaryDetails(owner, x)
	require.NoError(t, err)
	require.Equal(t, &BeneficiaryStatus{IsBeneficiary: true, PotentialShare: 250}, status)

	status, err = h.engine.BeneficiaryDetails(owner, addr(9))
	require.NoError(t, err)
	require.Equal(t, &BeneficiaryStatus{}, status)

	share, locked, err := h.engine.ProtocolShare(admin, owner)
	require.NoError(t, err)
	require.False(t, locked)
	require.Zero(t, share)
}

// TestQueries_AfterClaim checks projections once a beneficiary has redeemed.
func TestQueries_AfterClaim(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()
	h.createPlan(t, 1000)

	_, err := h.engine.CreatePlan(ctx, other, []plan.Address{y}, 2*day, 40)
	require.NoError(t, err)

	h.clock.Advance(day)

	_, err = h.engine.Redeem(ctx, x, owner)
	require.NoError(t, err)

	_, expired := h.engine.PlanStatus(owner)
	require.True(t, expired)

	status, err := h.engine.BeneficiaryDetails(owner, x)
	require.NoError(t, err)
	require.Equal(t, &BeneficiaryStatus{HasClaimed: true}, status)

	status, err = h.engine.BeneficiaryDetails(owner, y)
	require.NoError(t, err)
	require.Equal(t, &BeneficiaryStatus{IsBeneficiary: true, PotentialShare: 250}, status)

	list, err := h.engine.Beneficiaries(owner)
	require.NoError(t, err)
	require.Equal(t, []plan.Address{y}, list)

	stats := h.engine.Stats()
	require.Equal(t, Stats{OwnerCount: 2, TotalBalance: 750 + 40, Admin: admin}, stats)
}
