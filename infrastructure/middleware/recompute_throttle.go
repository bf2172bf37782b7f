package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

// GraphEvaluator is the evaluation surface the throttle wraps. The engine's
// Evaluator satisfies it.
type GraphEvaluator interface {
	Evaluate(nodes []domain.Node, edges []domain.Edge, refs domain.ReferenceTable) domain.ResultMap
}

// RecomputeThrottle bounds how often a wrapped evaluator recomputes using a
// token bucket. Callers driving passes from rapid edit events (every
// keystroke on a canvas) get the previous snapshot back when they exceed
// the sustained rate, which is safe because a ResultMap is an immutable
// snapshot anyway; the next in-budget call recomputes from current inputs.
type RecomputeThrottle struct {
	next    GraphEvaluator
	limiter *rate.Limiter

	mu   sync.Mutex
	last domain.ResultMap
	seen bool
}

// NewRecomputeThrottle wraps an evaluator with a token bucket of the given
// sustained rate and burst. The first call always computes.
func NewRecomputeThrottle(next GraphEvaluator, limit rate.Limit, burst int) *RecomputeThrottle {
	return &RecomputeThrottle{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Evaluate runs a pass if the rate budget allows, otherwise returns the
// most recent snapshot. A throttled call before any pass has completed
// still computes; there is nothing stale to serve.
func (t *RecomputeThrottle) Evaluate(
	nodes []domain.Node,
	edges []domain.Edge,
	refs domain.ReferenceTable,
) domain.ResultMap {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.limiter.Allow() && t.seen {
		return t.last
	}

	t.last = t.next.Evaluate(nodes, edges, refs)
	t.seen = true
	return t.last
}

var _ GraphEvaluator = (*RecomputeThrottle)(nil)
