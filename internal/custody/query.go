package custody

import (
	"time"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// Details is a read-only projection of a live plan.
type Details struct {
	Owner            plan.Address
	Balance          uint64
	BeneficiaryCount uint64
	LastReset        time.Time
	Timeout          time.Duration
	Shares           plan.Shares
	ShareLocked      bool
	Expired          bool
	ExpiresAt        time.Time
	TimeRemaining    time.Duration
}

// BeneficiaryStatus describes one address relative to a plan.
type BeneficiaryStatus struct {
	IsBeneficiary bool
	HasClaimed    bool
	// PotentialShare is the locked share, or a preview while the plan is unlocked.
	PotentialShare uint64
}

// Stats aggregates the registry.
type Stats struct {
	OwnerCount   uint64
	TotalBalance uint64
	Admin        plan.Address
}

// Plan returns a copy of the live plan of owner.
func (e *Engine) Plan(owner plan.Address) (*plan.Plan, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.live(owner)
	if err != nil {
		return nil, err
	}

	return p.Clone(), nil
}

// Exists reports whether owner has a live plan.
func (e *Engine) Exists(owner plan.Address) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.registry.exists(owner)
}

// Count returns the number of live plans.
func (e *Engine) Count() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.registry.count()
}

// PlanDetails returns the details of the live plan of owner.
func (e *Engine) PlanDetails(owner plan.Address) (*Details, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.live(owner)
	if err != nil {
		return nil, err
	}

	now := e.now()

	return &Details{
		Owner:            p.Owner,
		Balance:          p.Balance,
		BeneficiaryCount: p.BeneficiaryCount(),
		LastReset:        p.LastReset,
		Timeout:          p.Timeout,
		Shares:           p.Shares,
		ShareLocked:      p.ShareLocked,
		Expired:          p.IsExpired(now),
		ExpiresAt:        p.ExpiresAt(),
		TimeRemaining:    p.TimeRemaining(now),
	}, nil
}

// PlanStatus reports whether owner has a live plan and whether it has expired.
func (e *Engine) PlanStatus(owner plan.Address) (active, expired bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.live(owner)
	if err != nil {
		return false, false
	}

	return true, p.IsExpired(e.now())
}

// TimeRemaining returns the time left before the plan of owner expires.
func (e *Engine) TimeRemaining(owner plan.Address) (time.Duration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.live(owner)
	if err != nil {
		return 0, err
	}

	return p.TimeRemaining(e.now()), nil
}

// Beneficiaries lists the beneficiaries of owner's plan in the order they were added.
func (e *Engine) Beneficiaries(owner plan.Address) ([]plan.Address, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.live(owner)
	if err != nil {
		return nil, err
	}

	return p.Beneficiaries.List(), nil
}

// BeneficiaryDetails describes beneficiary relative to the plan of owner.
func (e *Engine) BeneficiaryDetails(owner, beneficiary plan.Address) (*BeneficiaryStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.live(owner)
	if err != nil {
		return nil, err
	}

	status := &BeneficiaryStatus{
		IsBeneficiary: p.Beneficiaries.Contains(beneficiary),
		HasClaimed:    p.HasClaimed(beneficiary),
	}

	switch {
	case !status.IsBeneficiary:
	case p.ShareLocked:
		status.PotentialShare = p.Shares.PerBeneficiary
	default:
		status.PotentialShare = plan.PreviewShare(p.Balance, p.Beneficiaries.Len())
	}

	return status, nil
}

// Stats aggregates all live plans.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := Stats{
		OwnerCount: e.registry.count(),
		Admin:      e.registry.admin,
	}

	for _, p := range e.registry.plans {
		if p.Active {
			stats.TotalBalance += p.Balance
		}
	}

	return stats
}

// ProtocolShare returns the protocol share of owner's plan. Admin only.
func (e *Engine) ProtocolShare(caller, owner plan.Address) (amount uint64, locked bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.registry.admin.IsZero() || caller != e.registry.admin {
		return 0, false, plan.ErrNotAdmin
	}

	p, err := e.registry.live(owner)
	if err != nil {
		return 0, false, err
	}

	return p.Shares.Protocol, p.ShareLocked, nil
}
