package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// TestPayoutStore_TransferList verifies payouts are journaled in order and filtered by recipient.
func TestPayoutStore_TransferList(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	payouts := store.Payouts()
	payouts.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	ctx := context.Background()

	require.NoError(t, payouts.Transfer(ctx, addr(1), 100))
	require.NoError(t, payouts.Transfer(ctx, addr(2), 200))
	require.NoError(t, payouts.Transfer(ctx, addr(1), 300))

	all, err := payouts.List(ctx, plan.ZeroAddress)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []uint64{100, 200, 300}, []uint64{all[0].Amount, all[1].Amount, all[2].Amount})
	require.NotEqual(t, all[0].ID, all[2].ID)
	require.Equal(t, int64(1_700_000_000), all[0].CreatedAt.Unix())

	mine, err := payouts.List(ctx, addr(1))
	require.NoError(t, err)
	require.Len(t, mine, 2)

	for _, p := range mine {
		require.Equal(t, addr(1), p.Recipient)
	}
}

// TestPayoutStore_LockingScript verifies the payout locks to the recipient key hash.
func TestPayoutStore_LockingScript(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	payouts := store.Payouts()
	ctx := context.Background()

	to := plan.MustParseAddress("0x0102030405060708090a0b0c0d0e0f1011121314")
	require.NoError(t, payouts.Transfer(ctx, to, 42))

	list, err := payouts.List(ctx, to)
	require.NoError(t, err)
	require.Len(t, list, 1)

	lock := script.Script(list[0].LockingScript)
	require.True(t, lock.IsP2PKH())

	pkh, err := lock.PublicKeyHash()
	require.NoError(t, err)
	require.Equal(t, to[:], []byte(pkh))
	require.Equal(t, to.String(), list[0].Address())
}

// TestPayoutStore_Invalid verifies zero recipients and amounts are refused.
func TestPayoutStore_Invalid(t *testing.T) {
	t.Parallel()

	payouts := openStore(t).Payouts()
	ctx := context.Background()

	require.ErrorIs(t, payouts.Transfer(ctx, plan.ZeroAddress, 1), ErrInvalidPayout)
	require.ErrorIs(t, payouts.Transfer(ctx, addr(1), 0), ErrInvalidPayout)

	list, err := payouts.List(ctx, plan.ZeroAddress)
	require.NoError(t, err)
	require.Empty(t, list)
}
