package custody

import (
	"sync"
	"sync/atomic"

	"github.com/oshokin/inheritance-vault/internal/domain/plan"
)

// Guard grants exclusive access to fund movement across all plans.
// The zero value is an unlocked guard.
type Guard struct {
	held atomic.Bool
}

// Acquire takes the guard or fails with plan.ErrReentrancy when it is already held.
// The returned release func is safe to call more than once.
func (g *Guard) Acquire() (release func(), err error) {
	if !g.held.CompareAndSwap(false, true) {
		return nil, plan.ErrReentrancy
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			g.held.Store(false)
		})
	}, nil
}

// Held reports whether a fund-moving call is in flight.
func (g *Guard) Held() bool {
	return g.held.Load()
}
