package belts

import (
	"context"

	"github.com/katalvlaran/foundry/tolerance"
)

// Solve runs the Belts Flow Engine end to end: build the transformed
// max-flow network, run Dinic's algorithm from the super-source to the
// super-sink, and either reconstruct per-edge flows or produce a min-cut
// certificate depending on whether the max-flow value reaches total
// demand. A non-nil error means the max-flow computation itself failed
// (ctx cancellation, or the level-graph phase bound being exceeded);
// infeasibility is reported as a result, not an error.
func Solve(ctx context.Context, in Input) (*OkOutput, *InfeasibleOutput, error) {
	t := build(in)
	f, err := t.net.maxFlow(ctx, superSource, superSink)
	if err != nil {
		return nil, nil, err
	}

	if f >= t.totalDemand-tolerance.Epsilon {
		return t.reconstruct(), nil, nil
	}
	return nil, t.cutCertificate(f), nil
}

// reconstruct recovers each original edge's flow as lo + its share of the
// aggregated transformed flow on the arc it was folded into, disaggregating
// parallel edges deterministically: in input order, fill each edge toward
// its hi before moving to the next.
func (t *transformed) reconstruct() *OkOutput {
	flows := make([]FlowEdge, len(t.edges))
	for key, idxs := range t.pairEdges {
		arc := t.pairArc[key]
		remaining := tolerance.Clamp(t.pairCapacity[key] - t.net.cap[arc[0]][arc[1]])
		for _, i := range idxs {
			e := t.edges[i]
			share := tolerance.Clamp(min(remaining, e.Hi-e.Lo))
			remaining -= share
			flows[i] = FlowEdge{From: e.From, To: e.To, Flow: tolerance.Clamp(e.Lo + share)}
		}
	}
	return &OkOutput{Status: "ok", Flows: flows}
}
