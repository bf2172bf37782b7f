package application

// scheduleOrder computes the execution order for one pass using Kahn's
// algorithm. The FIFO queue is seeded with every zero-in-degree node in
// node-list order, which fixes the tie-break between independent nodes
// deterministically.
//
// Nodes that never reach in-degree zero belong to a cycle (or are reachable
// only through one) and are excluded from the order for this pass; they
// simply never receive a result, which downstream port resolution treats as
// a missing input. That makes dedicated cycle diagnostics unnecessary here.
func scheduleOrder(topo topology) []string {
	remaining := make(map[string]int, len(topo.inDegree))
	for id, degree := range topo.inDegree {
		remaining[id] = degree
	}

	queue := make([]string, 0, len(topo.nodeIDs))
	for _, id := range topo.nodeIDs {
		if remaining[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(topo.nodeIDs))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, edge := range topo.outEdges[id] {
			remaining[edge.To]--
			if remaining[edge.To] == 0 {
				queue = append(queue, edge.To)
			}
		}
	}

	return order
}
