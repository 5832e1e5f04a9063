package plan

import (
	"maps"
	"math"
	"time"
)

// maxTimeoutSeconds is the largest timeout representable as a time.Duration.
const maxTimeoutSeconds = math.MaxInt64 / uint64(time.Second)

// Plan is the inheritance configuration and custodied balance of one owner.
type Plan struct {
	// Owner created and funds the plan.
	Owner Address
	// Active is true while the plan exists and has not been drained.
	Active bool
	// Beneficiaries may redeem once the plan has expired.
	Beneficiaries Beneficiaries
	// Claimed marks beneficiaries that already redeemed.
	Claimed map[Address]bool
	// LastReset is when the plan was created or the owner last reset the timer.
	LastReset time.Time
	// Timeout is how long the owner may stay silent before the plan expires.
	Timeout time.Duration
	// Balance is the value currently held for the plan.
	Balance uint64
	// Shares is meaningful only when ShareLocked is set.
	Shares Shares
	// ShareLocked freezes beneficiaries, timer and shares.
	ShareLocked bool
}

// TimeoutFromSeconds converts a wire timeout into a duration.
func TimeoutFromSeconds(seconds uint64) (time.Duration, error) {
	if seconds == 0 {
		return 0, ErrInvalidTimeout
	}

	if seconds > maxTimeoutSeconds {
		return 0, ErrInvalidTimeout
	}

	return time.Duration(seconds) * time.Second, nil
}

// Clone returns a deep copy of the plan.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}

	cloned := *p
	cloned.Beneficiaries = Beneficiaries{members: p.Beneficiaries.List()}
	cloned.Claimed = maps.Clone(p.Claimed)

	return &cloned
}

// BeneficiaryCount returns the number of beneficiaries still entitled to redeem.
func (p *Plan) BeneficiaryCount() uint64 {
	return uint64(p.Beneficiaries.Len())
}

// HasClaimed reports whether addr already redeemed.
func (p *Plan) HasClaimed(addr Address) bool {
	return p.Claimed[addr]
}

// ExpiresAt returns the moment the plan becomes redeemable.
func (p *Plan) ExpiresAt() time.Time {
	return p.LastReset.Add(p.Timeout)
}

// IsExpired reports whether the timeout has elapsed at now.
func (p *Plan) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt())
}

// TimeRemaining returns the time left until expiry, or zero once expired.
func (p *Plan) TimeRemaining(now time.Time) time.Duration {
	if p.IsExpired(now) {
		return 0
	}

	return p.ExpiresAt().Sub(now)
}

// markClaimed records a redemption by addr.
func (p *Plan) markClaimed(addr Address) {
	if p.Claimed == nil {
		p.Claimed = make(map[Address]bool)
	}

	p.Claimed[addr] = true
}

// Claim moves addr from the beneficiaries to the claimed set and debits amount.
// The caller validates entitlement and amount beforehand.
func (p *Plan) Claim(addr Address, amount uint64) error {
	if err := p.Beneficiaries.Remove(addr); err != nil {
		return err
	}

	p.markClaimed(addr)
	p.Balance -= amount

	return nil
}

// LockShares computes and freezes the distribution.
func (p *Plan) LockShares() error {
	if p.ShareLocked {
		return ErrAlreadyLocked
	}

	shares, err := ComputeShares(p.Balance, p.BeneficiaryCount())
	if err != nil {
		return err
	}

	p.Shares = shares
	p.ShareLocked = true

	return nil
}

// Drained reports whether the plan has nothing left to distribute to beneficiaries.
func (p *Plan) Drained() bool {
	return p.Balance == 0 || p.Beneficiaries.Len() == 0
}
