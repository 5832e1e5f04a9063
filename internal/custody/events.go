package custody

import (
	"context"
	"time"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
	"github.com/oshokin/inheritance-vault/internal/logger"
)

// EventKind names a committed state change.
type EventKind string

// Event kinds emitted by the engine.
const (
	EventInitialized            EventKind = "initialized"
	EventPlanCreated            EventKind = "plan_created"
	EventFundsAdded             EventKind = "funds_added"
	EventBeneficiaryAdded       EventKind = "beneficiary_added"
	EventBeneficiaryRemoved     EventKind = "beneficiary_removed"
	EventTimerReset             EventKind = "timer_reset"
	EventShareLocked            EventKind = "share_locked"
	EventFundsClaimed           EventKind = "funds_claimed"
	EventFundsWithdrawn         EventKind = "funds_withdrawn"
	EventProtocolShareWithdrawn EventKind = "protocol_share_withdrawn"
	EventPlanDrained            EventKind = "plan_drained"
)

// Event describes one committed state change.
type Event struct {
	// Kind is what happened.
	Kind EventKind
	// Owner identifies the plan. Zero for registry-level events.
	Owner plan.Address
	// Subject is the beneficiary, recipient or admin involved, if any.
	Subject plan.Address
	// Amount is the value moved or deposited, if any.
	Amount uint64
	// At is the engine clock reading when the event was emitted.
	At time.Time
}

// Notifier receives events after the state change has been committed.
// Notify may run while the engine lock is held and must not call back into the Engine.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, event Event)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, event Event) {
	f(ctx, event)
}

// LogNotifier writes every event to the context logger.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(ctx context.Context, event Event) {
	kvs := []any{"event", string(event.Kind), "at", event.At}

	if !event.Owner.IsZero() {
		kvs = append(kvs, "owner", event.Owner.String())
	}

	if !event.Subject.IsZero() {
		kvs = append(kvs, "subject", event.Subject.String())
	}

	if event.Amount > 0 {
		kvs = append(kvs, "amount", event.Amount)
	}

	logger.InfoKV(ctx, "Vault event", kvs...)
}
