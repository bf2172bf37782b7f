package application

import (
	"github.com/GodfreyEngineering/chainsolve/internal/domain"
	"github.com/GodfreyEngineering/chainsolve/internal/ports"
)

// resolvePorts produces the positional input list for one node, matching
// the block's declared port order. A nil entry means the port's value is
// unavailable.
//
// Resolution is layered per port:
//  1. An active override, or a binding on an unconnected port, resolves the
//     binding to a plain number and wraps it as a Scalar. A named binding
//     whose reference is missing from the table resolves to nil instead.
//  2. A connected port without an override reads the upstream node's entry
//     from the partially built result map. The scheduling order guarantees
//     upstream-before-downstream, so a missing entry only occurs when the
//     upstream node sits in a cycle; the port then resolves to nil.
//  3. An unconnected port with no binding resolves to nil.
func resolvePorts(
	node domain.Node,
	specs []ports.PortSpec,
	topo topology,
	results map[string]domain.Value,
	refs domain.ReferenceTable,
) []*domain.Value {
	settings := domain.EffectivePorts(node)

	inputs := make([]*domain.Value, len(specs))
	for i, spec := range specs {
		inputs[i] = resolvePort(node.ID, spec.ID, settings, topo, results, refs)
	}
	return inputs
}

func resolvePort(
	nodeID, portID string,
	settings map[string]domain.PortSetting,
	topo topology,
	results map[string]domain.Value,
	refs domain.ReferenceTable,
) *domain.Value {
	setting, hasSetting := settings[portID]
	edge, connected := topo.edgeInto(nodeID, portID)

	if hasSetting && (setting.Override || !connected) {
		num, ok := setting.ResolveBinding(refs)
		if !ok {
			return nil
		}
		v := domain.Scalar(num)
		return &v
	}

	if connected {
		upstream, ok := results[edge.From]
		if !ok {
			return nil
		}
		return &upstream
	}

	return nil
}
