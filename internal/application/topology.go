package application

import (
	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

// topology holds the adjacency derived from one pass's nodes and edges.
// It is rebuilt fresh for every pass and never shared across passes.
type topology struct {
	// nodeIDs preserves node-list order with duplicates removed; the
	// scheduler seeds its queue in this order to fix the tie-break between
	// independent nodes.
	nodeIDs []string
	// inEdges maps a node ID to the edges terminating there.
	inEdges map[string][]domain.Edge
	// outEdges maps a node ID to the edges originating there.
	outEdges map[string][]domain.Edge
	// inDegree is len(inEdges[id]) for every node ID, including zero
	// entries for nodes with no incoming edges.
	inDegree map[string]int
}

// buildTopology derives in-edge and out-edge adjacency from the node set
// and edge list in O(V+E). Every node ID gets an entry even with zero
// edges. Edges whose endpoints are not in the node set are ignored;
// the graph-mutation layer guarantees they do not occur, and counting one
// would wedge a real node at a positive in-degree forever.
func buildTopology(nodes []domain.Node, edges []domain.Edge) topology {
	topo := topology{
		nodeIDs:  make([]string, 0, len(nodes)),
		inEdges:  make(map[string][]domain.Edge, len(nodes)),
		outEdges: make(map[string][]domain.Edge, len(nodes)),
		inDegree: make(map[string]int, len(nodes)),
	}

	for _, node := range nodes {
		if _, seen := topo.inDegree[node.ID]; seen {
			continue
		}
		topo.nodeIDs = append(topo.nodeIDs, node.ID)
		topo.inEdges[node.ID] = nil
		topo.outEdges[node.ID] = nil
		topo.inDegree[node.ID] = 0
	}

	for _, edge := range edges {
		if _, ok := topo.inDegree[edge.From]; !ok {
			continue
		}
		if _, ok := topo.inDegree[edge.To]; !ok {
			continue
		}
		topo.outEdges[edge.From] = append(topo.outEdges[edge.From], edge)
		topo.inEdges[edge.To] = append(topo.inEdges[edge.To], edge)
		topo.inDegree[edge.To]++
	}

	return topo
}

// edgeInto returns the edge feeding the given port of a node, if any.
// At most one edge targets a (node, port) pair; that invariant is owned by
// the graph-mutation layer and assumed here, so the first match wins.
func (t topology) edgeInto(nodeID, portID string) (domain.Edge, bool) {
	for _, edge := range t.inEdges[nodeID] {
		if edge.ToPort == portID {
			return edge, true
		}
	}
	return domain.Edge{}, false
}
