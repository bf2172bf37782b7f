package application

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// Evaluator recomputes the value of every node in a computation graph.
// One call to Evaluate is one pass: single-threaded, synchronous, no I/O,
// returning only after every reachable node has been evaluated. Adjacency
// structures and the result map are rebuilt fresh each pass; nothing is
// shared between passes, so a caller wanting fresher results simply runs
// another pass with the updated graph and discards the old snapshot.
type Evaluator struct {
	// registry resolves operation types to block descriptors. It is
	// injected by reference; the evaluator holds no registration state.
	registry ports.BlockRegistry
	// tracer emits one span per pass for observability.
	tracer trace.Tracer
	// metrics optionally receives pass-level measurements.
	metrics ports.MetricsCollector
}

// EvaluatorOption configures optional evaluator collaborators.
type EvaluatorOption func(*Evaluator)

// WithMetrics attaches a metrics collector that receives pass durations,
// per-node result kinds, and fault counts.
func WithMetrics(mc ports.MetricsCollector) EvaluatorOption {
	return func(e *Evaluator) { e.metrics = mc }
}

// NewEvaluator creates an evaluator bound to the given block registry.
// NewEvaluator returns an error if the registry is nil.
func NewEvaluator(registry ports.BlockRegistry, opts ...EvaluatorOption) (*Evaluator, error) {
	if registry == nil {
		return nil, fmt.Errorf("block registry cannot be nil")
	}

	e := &Evaluator{
		registry: registry,
		tracer:   otel.Tracer("chainsolve-evaluator"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Evaluate runs one full pass over the graph and returns the pass's sole
// output: node ID to computed Value. It is pure given its explicit inputs;
// no hidden state is read and the inputs are never mutated.
//
// Nodes inside a cycle (or reachable only through one) are excluded from
// the schedule and receive no entry. A node whose operation type has no
// registered block is skipped the same way. A block that panics despite
// the contract is caught at the recovery barrier and recorded as an error
// Value, so one faulty operation never aborts the pass.
//
// refs supplies the current values for named constant and variable
// bindings; a nil table resolves every named binding to an unavailable
// input.
func (e *Evaluator) Evaluate(
	nodes []domain.Node,
	edges []domain.Edge,
	refs domain.ReferenceTable,
) domain.ResultMap {
	// Spans are pure observability; the pass has no suspension points and
	// nothing to cancel, so no context flows through it.
	_, span := e.tracer.Start(context.Background(), "Evaluator.Evaluate",
		trace.WithAttributes(
			attribute.Int("graph.nodes", len(nodes)),
			attribute.Int("graph.edges", len(edges)),
		),
	)
	defer span.End()

	start := time.Now()

	topo := buildTopology(nodes, edges)
	order := scheduleOrder(topo)

	byID := make(map[string]domain.Node, len(nodes))
	for _, node := range nodes {
		if _, seen := byID[node.ID]; !seen {
			byID[node.ID] = node
		}
	}

	results := make(map[string]domain.Value, len(order))
	for _, id := range order {
		node, ok := byID[id]
		if !ok {
			// The schedule is derived from the node list, so this cannot
			// happen unless the inputs were mutated mid-pass. Skip rather
			// than fault the whole pass.
			continue
		}

		block, ok := e.registry.Lookup(node.Type)
		if !ok {
			// Unknown operation type: the node simply has no result this
			// pass, indistinguishable from not yet configured.
			continue
		}

		inputs := resolvePorts(node, block.Ports(), topo, results, refs)
		value, faulted := evaluateBlock(block, inputs, node)

		// The schedule contains each node at most once, so this is the one
		// and only write for the key this pass.
		results[id] = value

		if e.metrics != nil {
			e.metrics.RecordNodeResult(node.Type, value.Kind())
			if faulted {
				e.metrics.RecordFault(node.Type)
			}
		}
	}

	unreachable := len(topo.nodeIDs) - len(order)
	span.SetAttributes(
		attribute.Int("pass.resolved", len(results)),
		attribute.Int("pass.unreachable", unreachable),
		attribute.Int64("pass.duration_us", time.Since(start).Microseconds()),
	)
	if e.metrics != nil {
		e.metrics.RecordPass(time.Since(start), len(results), unreachable)
	}

	return domain.NewResultMap(results)
}

// evaluateBlock invokes a block inside the recovery barrier. Blocks are
// required to return a Value and never panic; a panic is converted into an
// error Value carrying the panic message as defense-in-depth. faulted
// reports whether the barrier fired.
func evaluateBlock(
	block ports.Block,
	inputs []*domain.Value,
	node domain.Node,
) (value domain.Value, faulted bool) {
	defer func() {
		if r := recover(); r != nil {
			value = domain.Errorf("operation fault: %v", r)
			faulted = true
		}
	}()
	return block.Evaluate(inputs, node), false
}
