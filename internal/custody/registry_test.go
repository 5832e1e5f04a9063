package custody

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// TestRegistry_RestoreIsPlanScoped verifies restore only undoes the checkpointed plan.
func TestRegistry_RestoreIsPlanScoped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(r *registry)
		apply func(r *registry)
		live  bool
	}{
		{
			name:  "undo insert",
			setup: func(*registry) {},
			apply: func(r *registry) { r.insert(&plan.Plan{Owner: owner}) },
			live:  false,
		},
		{
			name:  "undo insert over drained plan",
			setup: func(r *registry) { r.plans[owner] = &plan.Plan{Owner: owner} },
			apply: func(r *registry) { r.insert(&plan.Plan{Owner: owner, Balance: 7}) },
			live:  false,
		},
		{
			name:  "undo deactivate",
			setup: func(r *registry) { r.insert(&plan.Plan{Owner: owner, Balance: 7}) },
			apply: func(r *registry) { r.deactivate(r.plans[owner]) },
			live:  true,
		},
		{
			name:  "undo balance change",
			setup: func(r *registry) { r.insert(&plan.Plan{Owner: owner, Balance: 7}) },
			apply: func(r *registry) { r.plans[owner].Balance = 0 },
			live:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newRegistry()
			tt.setup(r)

			cp := r.checkpoint(owner)
			tt.apply(r)

			// Changes made to other owners and the admin in the meantime survive.
			r.insert(&plan.Plan{Owner: other})
			r.admin = admin

			r.restore(cp)

			require.Equal(t, tt.live, r.exists(owner))
			require.True(t, r.exists(other))
			require.Equal(t, admin, r.admin)

			var live uint64
			for _, p := range r.plans {
				if p.Active {
					live++
				}
			}

			require.Equal(t, live, r.count())
		})
	}
}
