package belts

import (
	"sort"

	"github.com/katalvlaran/foundry/tolerance"
)

// cutCertificate builds the infeasibility witness from t.net's residual
// graph after maxFlow has run to completion: the set of original nodes
// reachable from the super-source, the capacitated nodes whose internal
// split edge is saturated and crosses the cut, the original edges whose
// transformed arc is saturated and crosses the cut, and the remaining
// deficit against total demand.
func (t *transformed) cutCertificate(achieved float64) *InfeasibleOutput {
	reached := t.net.reachable(superSource)

	var cutReachable, tightNodes []string
	for _, v := range t.order {
		if reached[t.internal[v]] || reached[t.external[v]] {
			cutReachable = append(cutReachable, v)
		}
		if t.split[v] && reached[t.internal[v]] && !reached[t.external[v]] {
			if t.net.cap[t.internal[v]][t.external[v]] <= tolerance.Epsilon {
				tightNodes = append(tightNodes, v)
			}
		}
	}

	var tightEdges []CutEdge
	for key, idxs := range t.pairEdges {
		arc := t.pairArc[key]
		crosses := reached[key[0]] && !reached[key[1]]
		saturated := t.net.cap[arc[0]][arc[1]] <= tolerance.Epsilon
		if !crosses || !saturated {
			continue
		}
		for _, i := range idxs {
			e := t.edges[i]
			tightEdges = append(tightEdges, CutEdge{From: e.From, To: e.To})
		}
	}
	sort.Slice(tightEdges, func(i, j int) bool {
		if tightEdges[i].From != tightEdges[j].From {
			return tightEdges[i].From < tightEdges[j].From
		}
		return tightEdges[i].To < tightEdges[j].To
	})

	return &InfeasibleOutput{
		Status:       "infeasible",
		CutReachable: cutReachable,
		TightNodes:   tightNodes,
		TightEdges:   tightEdges,
		Deficit:      tolerance.Clamp(t.totalDemand - achieved),
	}
}
