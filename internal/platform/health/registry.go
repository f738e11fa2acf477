// Package health runs the readiness checks registered by the upstream
// clients.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/continuum/internal/app/fanout"
	"github.com/jsamuelsen11/continuum/internal/ports"
)

// parallelChecks is the number of checks CheckAll runs at once.
const parallelChecks = 4

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is safe for concurrent Register and CheckAll calls.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New returns a Registry with no checkers; CheckAll on it reports ready.
func New() *Registry {
	return &Registry{}
}

// Register appends checker. Checkers sharing a name collapse to the one
// registered last.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll runs every registered check concurrently. A check that could not
// start because ctx was already done reports ctx.Err().
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, parallelChecks, checkers,
		func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
			return struct{}{}, c.HealthCheck(ctx)
		})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}
