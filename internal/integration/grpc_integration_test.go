package integration

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	api "github.com/oshokin/inheritance-vault/internal/api/grpc/inheritance"
	"github.com/oshokin/inheritance-vault/internal/config"
	"github.com/oshokin/inheritance-vault/internal/domain/plan"
	"github.com/oshokin/inheritance-vault/internal/service/common"
	"github.com/oshokin/inheritance-vault/internal/service/server"
)

const (
	ownerAddress = "0x00000000000000000000000000000000000000a0"
	adminAddress = "0x00000000000000000000000000000000000000ad"
	heirX        = "0x0000000000000000000000000000000000000001"
	heirY        = "0x0000000000000000000000000000000000000002"
)

// freeAddress reserves a free loopback port for a test server.
func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

// startGRPC starts a gRPC server with temporary config and the given ledger file.
// Returns a stop function that cancels the server and waits for Run to return.
// Stop also runs at cleanup, after the clients dialed later are closed.
func startGRPC(t *testing.T, addr, ledgerPath string) (stop func()) {
	t.Helper()

	// Create cancellable context for server lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// Create temporary configuration file.
	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress: addr,
			Timeout:       5 * time.Second,
			LogLevel:      "warn",
		}),
	)

	done := make(chan error, 1)

	// Start server in background goroutine.
	go func() {
		done <- server.Run(ctx, &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: addr,
			LedgerFile:    ledgerPath,
		})
	}()

	// Wait until the server accepts connections.
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 50*time.Millisecond)
		if err != nil {
			return false
		}

		_ = conn.Close()

		return true
	}, 5*time.Second, 20*time.Millisecond)

	var once sync.Once

	stop = func() {
		once.Do(func() {
			cancel()
			require.NoError(t, <-done)
		})
	}

	t.Cleanup(stop)

	return stop
}

// dialAs connects to addr acting as caller.
func dialAs(t *testing.T, addr, caller string) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), addr,
		common.WithCallTimeout(3*time.Second),
		common.WithIdentity(caller, &api.SystemActor{
			Hostname: "test-hostname",
			Username: "test-user",
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

// TestGRPC_Lifecycle runs a plan from creation through expiry to full payout against the real server.
func TestGRPC_Lifecycle(t *testing.T) {
	t.Parallel()

	addr := freeAddress(t)
	ledgerPath := filepath.Join(t.TempDir(), "ledger.db")

	startGRPC(t, addr, ledgerPath)

	ctx := context.Background()

	admin := dialAs(t, addr, adminAddress)
	owner := dialAs(t, addr, ownerAddress)
	x := dialAs(t, addr, heirX)
	y := dialAs(t, addr, heirY)

	_, err := admin.Initialize(ctx)
	require.NoError(t, err)

	created, err := owner.CreatePlan(ctx, []string{heirX, heirY}, time.Second, 1_001)
	require.NoError(t, err)
	require.Equal(t, uint64(2), created.BeneficiaryCount)

	_, err = x.Redeem(ctx, ownerAddress)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	// Let the one second timeout elapse.
	time.Sleep(1100 * time.Millisecond)

	shares, err := x.LockShare(ctx, ownerAddress)
	require.NoError(t, err)
	require.Equal(t, uint64(250), shares.PerBeneficiary)
	require.Equal(t, uint64(501), shares.Protocol)

	redeemed, err := x.Redeem(ctx, ownerAddress)
	require.NoError(t, err)
	require.Equal(t, uint64(250), redeemed.Amount)

	_, err = x.Redeem(ctx, ownerAddress)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	withdrawn, err := admin.WithdrawProtocolShare(ctx, ownerAddress)
	require.NoError(t, err)
	require.Equal(t, uint64(501), withdrawn.Amount)

	redeemed, err = y.Redeem(ctx, ownerAddress)
	require.NoError(t, err)
	require.Equal(t, uint64(250), redeemed.Amount)

	planStatus, err := owner.PlanStatus(ctx, ownerAddress)
	require.NoError(t, err)
	require.False(t, planStatus.Active)

	payouts, err := owner.Payouts(ctx, "")
	require.NoError(t, err)
	require.Len(t, payouts.Payouts, 3)

	var paid uint64
	for _, p := range payouts.Payouts {
		paid += p.Amount
		require.NotEmpty(t, p.ID)
		require.NotEmpty(t, p.LockingScript)
	}

	require.Equal(t, uint64(1_001), paid)

	// Verify state was persisted to disk.
	_, err = os.Stat(ledgerPath)
	require.NoError(t, err)
}

// TestGRPC_RestartRestoresLedger verifies plans and the admin survive a server restart.
func TestGRPC_RestartRestoresLedger(t *testing.T) {
	t.Parallel()

	addr := freeAddress(t)
	ledgerPath := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	stop := startGRPC(t, addr, ledgerPath)

	admin := dialAs(t, addr, adminAddress)
	owner := dialAs(t, addr, ownerAddress)

	_, err := admin.Initialize(ctx)
	require.NoError(t, err)

	_, err = owner.CreatePlan(ctx, []string{heirX}, time.Hour, 500)
	require.NoError(t, err)
	require.NoError(t, owner.AddFunds(ctx, 25))
	require.NoError(t, owner.AddBeneficiary(ctx, heirY))

	require.NoError(t, admin.Close())
	require.NoError(t, owner.Close())
	stop()

	startGRPC(t, addr, ledgerPath)

	owner = dialAs(t, addr, ownerAddress)

	details, err := owner.PlanDetails(ctx, ownerAddress)
	require.NoError(t, err)
	require.Equal(t, uint64(525), details.Balance)
	require.Equal(t, uint64(2), details.BeneficiaryCount)
	require.False(t, details.Expired)

	list, err := owner.Beneficiaries(ctx, ownerAddress)
	require.NoError(t, err)
	require.Len(t, list.Beneficiaries, 2)
	require.Equal(t, plan.MustParseAddress(heirY), plan.MustParseAddress(list.Beneficiaries[1]))

	stats, err := owner.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.OwnerCount)
	require.Equal(t, plan.MustParseAddress(adminAddress), plan.MustParseAddress(stats.Admin))

	_, err = dialAs(t, addr, heirX).Initialize(ctx)
	require.Equal(t, codes.AlreadyExists, status.Code(err))

	amount, err := owner.WithdrawAll(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(525), amount.Amount)
}
