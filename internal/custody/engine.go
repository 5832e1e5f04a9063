package custody

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
	"github.com/oshokin/inheritance-vault/internal/logger"
)

// Transferer pays value out of the vault.
// Transfer may call back into the Engine before returning.
type Transferer interface {
	Transfer(ctx context.Context, to plan.Address, amount uint64) error
}

// TransferFunc adapts a function to Transferer.
type TransferFunc func(ctx context.Context, to plan.Address, amount uint64) error

// Transfer calls f.
func (f TransferFunc) Transfer(ctx context.Context, to plan.Address, amount uint64) error {
	return f(ctx, to, amount)
}

// Store persists committed state. Commit must write meta and all plans atomically.
type Store interface {
	Commit(ctx context.Context, meta Meta, plans ...*plan.Plan) error
}

// Engine is the inheritance vault.
type Engine struct {
	// mu protects the registry and settling. It is never held across a transfer.
	mu sync.Mutex
	// registry stores the plans, the owner counter and the admin.
	registry *registry
	// guard serializes fund movement across all plans.
	guard Guard
	// settling is the owner whose payout is in flight, if any.
	settling *plan.Address

	transferer Transferer
	store      Store
	notifier   Notifier
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore persists every committed change through store.
func WithStore(store Store) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithNotifier replaces the default LogNotifier.
func WithNotifier(notifier Notifier) Option {
	return func(e *Engine) {
		if notifier != nil {
			e.notifier = notifier
		}
	}
}

// WithClock sets the source of the current time used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an empty engine paying out through transferer.
func New(transferer Transferer, opts ...Option) *Engine {
	e := &Engine{
		registry:   newRegistry(),
		transferer: transferer,
		notifier:   LogNotifier{},
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Restore replaces the engine state with previously persisted meta and plans.
func (e *Engine) Restore(meta Meta, plans []*plan.Plan) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.registry.load(meta, plans)
}

// Initialize makes caller the admin. It succeeds once.
func (e *Engine) Initialize(ctx context.Context, caller plan.Address) error {
	if caller.IsZero() {
		return plan.ErrZeroAddress
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.registry.admin.IsZero() {
		return plan.ErrAlreadyInitialized
	}

	e.registry.admin = caller

	if err := e.commit(ctx); err != nil {
		e.registry.admin = plan.ZeroAddress

		return err
	}

	e.emit(ctx, Event{Kind: EventInitialized, Subject: caller})

	return nil
}

// CreatePlan opens a plan for owner holding deposit.
// Only the first plan.MaxBeneficiaries non-zero unique beneficiaries are kept.
func (e *Engine) CreatePlan(
	ctx context.Context,
	owner plan.Address,
	beneficiaries []plan.Address,
	timeout time.Duration,
	deposit uint64,
) (*plan.Plan, error) {
	switch {
	case owner.IsZero():
		return nil, plan.ErrZeroAddress
	case timeout <= 0:
		return nil, plan.ErrInvalidTimeout
	case deposit == 0:
		return nil, plan.ErrNoDeposit
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.registry.exists(owner) || e.isSettling(owner) {
		return nil, plan.ErrPlanExists
	}

	cp := e.registry.checkpoint(owner)

	p := &plan.Plan{
		Owner:         owner,
		Beneficiaries: plan.NewBeneficiaries(beneficiaries),
		LastReset:     e.now(),
		Timeout:       timeout,
		Balance:       deposit,
	}

	e.registry.insert(p)

	if err := e.commit(ctx, p); err != nil {
		e.registry.restore(cp)

		return nil, err
	}

	e.emit(ctx, Event{Kind: EventPlanCreated, Owner: owner, Amount: deposit})

	return p.Clone(), nil
}

// AddFunds credits deposit to the owner's plan.
func (e *Engine) AddFunds(ctx context.Context, owner plan.Address, deposit uint64) error {
	if deposit == 0 {
		return plan.ErrNoDeposit
	}

	err := e.edit(ctx, owner, func(p *plan.Plan) error {
		if p.Balance > math.MaxUint64-deposit {
			return plan.ErrBalanceOverflow
		}

		p.Balance += deposit

		return nil
	})
	if err != nil {
		return err
	}

	e.emit(ctx, Event{Kind: EventFundsAdded, Owner: owner, Amount: deposit})

	return nil
}

// AddBeneficiary appends beneficiary to the owner's plan.
func (e *Engine) AddBeneficiary(ctx context.Context, owner, beneficiary plan.Address) error {
	err := e.edit(ctx, owner, func(p *plan.Plan) error {
		return p.Beneficiaries.Add(beneficiary)
	})
	if err != nil {
		return err
	}

	e.emit(ctx, Event{Kind: EventBeneficiaryAdded, Owner: owner, Subject: beneficiary})

	return nil
}

// RemoveBeneficiary drops beneficiary from the owner's plan.
func (e *Engine) RemoveBeneficiary(ctx context.Context, owner, beneficiary plan.Address) error {
	err := e.edit(ctx, owner, func(p *plan.Plan) error {
		return p.Beneficiaries.Remove(beneficiary)
	})
	if err != nil {
		return err
	}

	e.emit(ctx, Event{Kind: EventBeneficiaryRemoved, Owner: owner, Subject: beneficiary})

	return nil
}

// ResetTimer restarts the countdown of the owner's plan.
func (e *Engine) ResetTimer(ctx context.Context, owner plan.Address) error {
	err := e.edit(ctx, owner, func(p *plan.Plan) error {
		p.LastReset = e.now()

		return nil
	})
	if err != nil {
		return err
	}

	e.emit(ctx, Event{Kind: EventTimerReset, Owner: owner})

	return nil
}

// LockShare freezes the distribution of an expired plan. Anyone may call it.
func (e *Engine) LockShare(ctx context.Context, owner plan.Address) (plan.Shares, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.live(owner)
	if err != nil {
		return plan.Shares{}, err
	}

	if !p.IsExpired(e.now()) {
		return plan.Shares{}, plan.ErrNotExpired
	}

	cp := e.registry.checkpoint(owner)

	if err = p.LockShares(); err != nil {
		e.registry.restore(cp)

		return plan.Shares{}, err
	}

	if err = e.commit(ctx, p); err != nil {
		e.registry.restore(cp)

		return plan.Shares{}, err
	}

	e.emit(ctx, Event{Kind: EventShareLocked, Owner: owner, Amount: p.Shares.Protocol})

	return p.Shares, nil
}

// edit applies fn to the live, unlocked plan of owner and commits the result.
// Any error from fn or from the store leaves the plan as it was.
func (e *Engine) edit(ctx context.Context, owner plan.Address, fn func(p *plan.Plan) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.editable(owner)
	if err != nil {
		return err
	}

	cp := e.registry.checkpoint(owner)

	if err = fn(p); err != nil {
		e.registry.restore(cp)

		return err
	}

	if err = e.commit(ctx, p); err != nil {
		e.registry.restore(cp)

		return err
	}

	return nil
}

// commit persists the registry meta and the given plans. Caller holds mu.
func (e *Engine) commit(ctx context.Context, plans ...*plan.Plan) error {
	if e.store == nil {
		return nil
	}

	if err := e.store.Commit(ctx, e.registry.meta(), plans...); err != nil {
		logger.ErrorKV(ctx, "Failed to persist vault state", "error", err)

		return fmt.Errorf("persist state: %w", err)
	}

	return nil
}

// isSettling reports whether owner's plan has a payout in flight. Caller holds mu.
func (e *Engine) isSettling(owner plan.Address) bool {
	return e.settling != nil && *e.settling == owner
}

// emit stamps and forwards event to the notifier.
func (e *Engine) emit(ctx context.Context, event Event) {
	event.At = e.now()
	e.notifier.Notify(ctx, event)
}
