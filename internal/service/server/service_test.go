package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/inheritance-vault/internal/custody"
	"github.com/oshokin/inheritance-vault/internal/domain/plan"
	"github.com/oshokin/inheritance-vault/internal/repository/ledger"
)

var (
	errTestLoad = errors.New("test load error")
	errTestList = errors.New("test list error")
)

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// meta and plans are returned from Load.
	meta  custody.Meta
	plans []*plan.Plan
	// loadErr is the error to return from Load operations.
	loadErr error
	// commits counts Commit calls.
	commits int
}

// Load returns the configured meta and plans.
func (m *memoryRepository) Load(context.Context) (custody.Meta, []*plan.Plan, error) {
	return m.meta, m.plans, m.loadErr
}

// Commit records the committed state as the next Load result.
func (m *memoryRepository) Commit(_ context.Context, meta custody.Meta, plans ...*plan.Plan) error {
	m.commits++
	m.meta = meta

	for _, p := range plans {
		m.plans = append(m.plans, p.Clone())
	}

	return nil
}

// memoryJournal keeps transfers in a slice.
type memoryJournal struct {
	payouts []*ledger.Payout
	listErr error
}

// Transfer appends a payout.
func (j *memoryJournal) Transfer(_ context.Context, to plan.Address, amount uint64) error {
	j.payouts = append(j.payouts, &ledger.Payout{Recipient: to, Amount: amount})

	return nil
}

// List returns every payout regardless of recipient.
func (j *memoryJournal) List(context.Context, plan.Address) ([]*ledger.Payout, error) {
	return j.payouts, j.listErr
}

func addr(b byte) plan.Address {
	var a plan.Address
	a[plan.AddressSize-1] = b

	return a
}

// TestNewService_RestoresOrFails asserts newService behavior on existing, empty, and error states.
func TestNewService_RestoresOrFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	owner := addr(0xA0)

	// Existing state.
	stored := &plan.Plan{
		Owner:         owner,
		Active:        true,
		Beneficiaries: plan.NewBeneficiaries([]plan.Address{addr(1)}),
		LastReset:     time.Now(),
		Timeout:       time.Hour,
		Balance:       100,
	}

	s, err := newService(ctx, &memoryRepository{
		meta:  custody.Meta{Admin: addr(0xAD), OwnerCount: 1},
		plans: []*plan.Plan{stored},
	}, new(memoryJournal))
	require.NoError(t, err)
	require.True(t, s.Exists(owner))
	require.Equal(t, uint64(1), s.Count())
	require.Equal(t, addr(0xAD), s.Stats().Admin)

	// Empty ledger.
	s, err = newService(ctx, new(memoryRepository), new(memoryJournal))
	require.NoError(t, err)
	require.Zero(t, s.Count())

	// Load error.
	s, err = newService(ctx, &memoryRepository{loadErr: errTestLoad}, new(memoryJournal))
	require.ErrorIs(t, err, errTestLoad)
	require.Nil(t, s)

	// Counter disagrees with the stored plans.
	s, err = newService(ctx, &memoryRepository{meta: custody.Meta{OwnerCount: 3}}, new(memoryJournal))
	require.ErrorIs(t, err, custody.ErrInconsistentState)
	require.Nil(t, s)
}

// TestService_CommitsAndJournals verifies operations persist through the repository and pay out through the journal.
func TestService_CommitsAndJournals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(memoryRepository)
	journal := new(memoryJournal)

	s, err := newService(ctx, repo, journal)
	require.NoError(t, err)

	owner := addr(0xA0)

	_, err = s.CreatePlan(ctx, owner, []plan.Address{addr(1)}, time.Hour, 40)
	require.NoError(t, err)
	require.Equal(t, 1, repo.commits)
	require.Equal(t, uint64(1), repo.meta.OwnerCount)

	amount, err := s.WithdrawAll(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, uint64(40), amount)
	require.Zero(t, repo.meta.OwnerCount)

	payouts, err := s.Payouts(ctx, owner)
	require.NoError(t, err)
	require.Len(t, payouts, 1)
	require.Equal(t, owner, payouts[0].Recipient)

	journal.listErr = errTestList

	_, err = s.Payouts(ctx, owner)
	require.ErrorIs(t, err, errTestList)
}
