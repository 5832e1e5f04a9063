package custody

import (
	"errors"
	"fmt"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// Meta is the registry-level state persisted next to the plans.
type Meta struct {
	// Admin may withdraw protocol shares. Zero until Initialize.
	Admin plan.Address
	// OwnerCount is the number of live plans.
	OwnerCount uint64
}

// ErrInconsistentState is returned when restored plans disagree with the stored owner count.
var ErrInconsistentState = errors.New("custody: owner count does not match live plans")

// registry owns every plan record keyed by owner.
// Drained plans stay in the map with Active unset until the owner creates a new one.
type registry struct {
	plans      map[plan.Address]*plan.Plan
	ownerCount uint64
	admin      plan.Address
}

// checkpoint is the pre-mutation copy of one plan record.
// It never carries registry-wide values, which other owners may change meanwhile.
type checkpoint struct {
	owner plan.Address
	plan  *plan.Plan
}

func newRegistry() *registry {
	return &registry{
		plans: make(map[plan.Address]*plan.Plan),
	}
}

// load replaces the registry contents after checking the owner counter.
func (r *registry) load(meta Meta, plans []*plan.Plan) error {
	loaded := make(map[plan.Address]*plan.Plan, len(plans))

	var live uint64

	for _, p := range plans {
		if p == nil {
			continue
		}

		if p.Active {
			live++
		}

		loaded[p.Owner] = p.Clone()
	}

	if live != meta.OwnerCount {
		return fmt.Errorf("%w: counter %d, live plans %d", ErrInconsistentState, meta.OwnerCount, live)
	}

	r.plans = loaded
	r.ownerCount = meta.OwnerCount
	r.admin = meta.Admin

	return nil
}

func (r *registry) meta() Meta {
	return Meta{
		Admin:      r.admin,
		OwnerCount: r.ownerCount,
	}
}

// exists reports whether owner has a live plan.
func (r *registry) exists(owner plan.Address) bool {
	p, ok := r.plans[owner]

	return ok && p.Active
}

// live returns the live plan of owner.
func (r *registry) live(owner plan.Address) (*plan.Plan, error) {
	p, ok := r.plans[owner]
	if !ok || !p.Active {
		return nil, plan.ErrPlanNotFound
	}

	return p, nil
}

// editable returns the live plan of owner if it is not share-locked yet.
func (r *registry) editable(owner plan.Address) (*plan.Plan, error) {
	p, err := r.live(owner)
	if err != nil {
		return nil, err
	}

	if p.ShareLocked {
		return nil, plan.ErrShareLocked
	}

	return p, nil
}

// insert stores a fresh live plan and bumps the counter.
func (r *registry) insert(p *plan.Plan) {
	p.Active = true
	r.plans[p.Owner] = p
	r.ownerCount++
}

// deactivate marks p drained and decrements the counter.
func (r *registry) deactivate(p *plan.Plan) {
	if !p.Active {
		return
	}

	p.Active = false
	r.ownerCount--
}

// checkpoint snapshots the plan record of owner.
func (r *registry) checkpoint(owner plan.Address) checkpoint {
	return checkpoint{
		owner: owner,
		plan:  r.plans[owner].Clone(),
	}
}

// restore puts the checkpointed plan record back and moves the counter
// by the change in its liveness only.
func (r *registry) restore(cp checkpoint) {
	wasLive := cp.plan != nil && cp.plan.Active
	isLive := r.exists(cp.owner)

	if cp.plan == nil {
		delete(r.plans, cp.owner)
	} else {
		r.plans[cp.owner] = cp.plan.Clone()
	}

	switch {
	case wasLive && !isLive:
		r.ownerCount++
	case !wasLive && isLive:
		r.ownerCount--
	}
}

// count returns the number of live plans.
func (r *registry) count() uint64 {
	return r.ownerCount
}
