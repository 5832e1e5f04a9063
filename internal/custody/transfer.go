package custody

import (
	"context"
	"fmt"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
	"github.com/oshokin/inheritance-vault/internal/logger"
)

// payout is a staged fund movement waiting for the transfer to confirm.
type payout struct {
	// before is the state the registry returns to if the transfer fails.
	before checkpoint
	// to receives amount.
	to     plan.Address
	amount uint64
	// events are emitted once the transfer succeeds.
	events []Event
}

// Redeem pays the caller's share of an expired plan.
// The share is locked first if nobody has locked it yet.
func (e *Engine) Redeem(ctx context.Context, caller, owner plan.Address) (uint64, error) {
	release, err := e.guard.Acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	po, err := e.stage(ctx, owner, func(p *plan.Plan, po *payout) error {
		if !p.IsExpired(e.now()) {
			return plan.ErrNotExpired
		}

		if p.HasClaimed(caller) {
			return plan.ErrAlreadyClaimed
		}

		if !p.Beneficiaries.Contains(caller) {
			return plan.ErrNotBeneficiary
		}

		if !p.ShareLocked {
			if err := p.LockShares(); err != nil {
				return err
			}

			po.events = append(po.events, Event{Kind: EventShareLocked, Owner: owner, Amount: p.Shares.Protocol})
		}

		amount := p.Shares.PerBeneficiary
		if amount == 0 {
			return plan.ErrNothingToRedeem
		}

		if err := p.Claim(caller, amount); err != nil {
			return err
		}

		po.to, po.amount = caller, amount
		po.events = append(po.events, Event{Kind: EventFundsClaimed, Owner: owner, Subject: caller, Amount: amount})

		if p.Drained() {
			e.registry.deactivate(p)
			po.events = append(po.events, Event{Kind: EventPlanDrained, Owner: owner})
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if err = e.settle(ctx, po); err != nil {
		return 0, err
	}

	return po.amount, nil
}

// WithdrawAll returns the whole balance to the owner and closes the plan.
// It is only allowed before the share is locked.
func (e *Engine) WithdrawAll(ctx context.Context, owner plan.Address) (uint64, error) {
	release, err := e.guard.Acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	po, err := e.stage(ctx, owner, func(p *plan.Plan, po *payout) error {
		if p.ShareLocked {
			return plan.ErrShareLocked
		}

		if p.Balance == 0 {
			return plan.ErrNothingToWithdraw
		}

		po.to, po.amount = owner, p.Balance
		p.Balance = 0
		e.registry.deactivate(p)

		po.events = append(po.events,
			Event{Kind: EventFundsWithdrawn, Owner: owner, Subject: owner, Amount: po.amount},
			Event{Kind: EventPlanDrained, Owner: owner},
		)

		return nil
	})
	if err != nil {
		return 0, err
	}

	if err = e.settle(ctx, po); err != nil {
		return 0, err
	}

	return po.amount, nil
}

// WithdrawProtocolShare pays the locked protocol share of owner's plan to the admin.
// The share is zeroed after the first success; the plan stays live.
func (e *Engine) WithdrawProtocolShare(ctx context.Context, caller, owner plan.Address) (uint64, error) {
	release, err := e.guard.Acquire()
	if err != nil {
		return 0, err
	}
	defer release()

	po, err := e.stage(ctx, owner, func(p *plan.Plan, po *payout) error {
		admin := e.registry.admin
		if admin.IsZero() || caller != admin {
			return plan.ErrNotAdmin
		}

		if !p.ShareLocked {
			return plan.ErrNotLocked
		}

		amount := p.Shares.Protocol
		if amount == 0 {
			return plan.ErrNothingToWithdraw
		}

		po.to, po.amount = admin, amount
		p.Shares.Protocol = 0
		p.Balance -= amount

		po.events = append(po.events,
			Event{Kind: EventProtocolShareWithdrawn, Owner: owner, Subject: admin, Amount: amount})

		return nil
	})
	if err != nil {
		return 0, err
	}

	if err = e.settle(ctx, po); err != nil {
		return 0, err
	}

	return po.amount, nil
}

// stage validates and applies a fund movement on the live plan of owner and
// persists the result before any value leaves the vault.
// On error nothing has changed.
func (e *Engine) stage(
	ctx context.Context,
	owner plan.Address,
	fn func(p *plan.Plan, po *payout) error,
) (*payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.registry.live(owner)
	if err != nil {
		return nil, err
	}

	po := &payout{
		before: e.registry.checkpoint(owner),
	}

	if err = fn(p, po); err != nil {
		e.registry.restore(po.before)

		return nil, err
	}

	if err = e.commit(ctx, p); err != nil {
		e.registry.restore(po.before)

		return nil, err
	}

	e.settling = &owner

	return po, nil
}

// settle performs the staged transfer. If it fails, the checkpoint is restored
// and persisted again, and the error wraps plan.ErrTransferFailed.
func (e *Engine) settle(ctx context.Context, po *payout) error {
	transferErr := e.transferer.Transfer(ctx, po.to, po.amount)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.settling = nil

	if transferErr != nil {
		e.registry.restore(po.before)

		// The rollback must reach the store even if the caller has gone away.
		restored := e.registry.plans[po.before.owner]
		if err := e.commit(context.WithoutCancel(ctx), restored); err != nil {
			logger.ErrorKV(ctx, "Rolled back payout is not persisted",
				"owner", po.before.owner.String(), "error", err)
		}

		logger.WarnKV(ctx, "Payout failed, state rolled back",
			"owner", po.before.owner.String(),
			"recipient", po.to.String(),
			"amount", po.amount,
			"error", transferErr)

		return fmt.Errorf("%w: %w", plan.ErrTransferFailed, transferErr)
	}

	for _, event := range po.events {
		e.emit(ctx, event)
	}

	return nil
}
