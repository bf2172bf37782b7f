package ports

import (
	"time"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

// MetricsCollector receives engine-level measurements from the evaluator.
// Implementations must be safe for concurrent use; the engine itself is
// single-threaded within a pass, but multiple callers may run independent
// passes at once.
type MetricsCollector interface {
	// RecordPass is called once per completed pass with its wall-clock
	// duration, the number of nodes that resolved, and the number of nodes
	// excluded as unreachable (cyclic).
	RecordPass(duration time.Duration, resolved, unreachable int)

	// RecordNodeResult is called for every node that produced a Value,
	// labeled by its operation type and the kind of Value produced.
	RecordNodeResult(blockType string, kind domain.Kind)

	// RecordFault is called when a block panics despite the contract and
	// the evaluator converts the panic into an error Value.
	RecordFault(blockType string)
}
