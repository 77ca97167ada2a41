package belts

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/foundry/tolerance"
)

// network is a directed capacity graph over string-identified vertices,
// adapted from the level-graph + blocking-flow technique in
// katalvlaran/lvlath's flow package (originally specialized to
// *core.Graph with int64 edge weights) to the plain float64 capacity maps
// this package's transformed graphs need. Every vertex present in the
// network has a pre-initialized (possibly empty) adjacency map so that
// residual edges can always be recorded without a nil-map panic.
type network struct {
	cap map[string]map[string]float64
}

func newNetwork(vertices []string) *network {
	n := &network{cap: make(map[string]map[string]float64, len(vertices))}
	for _, v := range vertices {
		n.cap[v] = make(map[string]float64)
	}
	return n
}

func (n *network) ensure(v string) {
	if _, ok := n.cap[v]; !ok {
		n.cap[v] = make(map[string]float64)
	}
}

// addCapacity adds c to the forward arc u->v and ensures a (possibly
// zero) reverse residual arc v->u exists so it can be traversed once
// forward flow is pushed. Near-zero capacities are dropped, matching the
// module's tolerance policy.
func (n *network) addCapacity(u, v string, c float64) {
	if c <= tolerance.Epsilon {
		return
	}
	n.ensure(u)
	n.ensure(v)
	n.cap[u][v] += c
	if _, ok := n.cap[v][u]; !ok {
		n.cap[v][u] = 0
	}
}

// sortedNeighbors returns the keys of m in sorted order, giving a
// deterministic traversal order in place of Go's randomized map
// iteration.
func sortedNeighbors(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for v := range m {
		keys = append(keys, v)
	}
	sort.Strings(keys)
	return keys
}

// maxFlow computes the maximum flow from source to sink by Dinic's
// algorithm (level graph + blocking flow), mutating n.cap in place into
// the final residual capacities.
//
// Steps:
//  1. BFS from source over arcs with positive residual capacity to build
//     per-vertex levels (O(V+E)).
//  2. If sink is unreached, the flow is maximal; stop.
//  3. Build the level-graph adjacency (only arcs advancing exactly one
//     level) in sorted order for determinism.
//  4. Repeatedly DFS a blocking flow through the level graph, advancing
//     each vertex's neighbor cursor past exhausted or backward arcs.
//  5. Repeat from 1.
//
// Complexity: O(V^2 * E) worst case, adequate for the small graphs this
// engine targets; memory O(V+E).
//
// Each phase strictly increases the sink's level, so the number of phases
// is bounded by the vertex count; ctx is checked once per phase so a
// caller-imposed deadline on a pathologically large network is honored
// between phases, and exceeding the phase bound itself returns
// ErrSolverFailure — that can only happen if a phase failed to advance
// the sink's level, which is a bug in the level-graph construction above,
// not a property of any valid input.
func (n *network) maxFlow(ctx context.Context, source, sink string) (float64, error) {
	var total float64
	maxPhases := len(n.cap) + 1
	for phase := 0; ; phase++ {
		if err := ctx.Err(); err != nil {
			return total, solverErrorf("maxflow", err)
		}
		if phase > maxPhases {
			return total, solverErrorf("maxflow", fmt.Errorf("exceeded %d level-graph phases without draining", maxPhases))
		}
		level := n.bfsLevels(source)
		if level[sink] < 0 {
			break
		}
		next := n.levelAdjacency(level)
		iter := make(map[string]int, len(next))
		for {
			pushed := n.dfsPush(next, iter, source, sink, math.Inf(1))
			if pushed <= tolerance.Epsilon {
				break
			}
			total += pushed
		}
	}
	return total, nil
}

func (n *network) bfsLevels(source string) map[string]int {
	level := make(map[string]int, len(n.cap))
	for v := range n.cap {
		level[v] = -1
	}
	level[source] = 0
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range sortedNeighbors(n.cap[u]) {
			if n.cap[u][v] > tolerance.Epsilon && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level
}

func (n *network) levelAdjacency(level map[string]int) map[string][]string {
	next := make(map[string][]string, len(n.cap))
	for u := range n.cap {
		for _, v := range sortedNeighbors(n.cap[u]) {
			if n.cap[u][v] > tolerance.Epsilon && level[v] == level[u]+1 {
				next[u] = append(next[u], v)
			}
		}
	}
	return next
}

func (n *network) dfsPush(next map[string][]string, iter map[string]int, u, sink string, available float64) float64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		c := n.cap[u][v]
		if c <= tolerance.Epsilon {
			continue
		}
		send := math.Min(available, c)
		pushed := n.dfsPush(next, iter, v, sink, send)
		if pushed > tolerance.Epsilon {
			n.cap[u][v] -= pushed
			n.cap[v][u] += pushed
			return pushed
		}
	}
	return 0
}

// reachable returns the set of every vertex reachable from source over
// arcs with strictly positive residual capacity. Used to build the
// min-cut certificate after maxFlow leaves n.cap as the final residual
// graph.
func (n *network) reachable(source string) map[string]bool {
	seen := map[string]bool{source: true}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range sortedNeighbors(n.cap[u]) {
			if n.cap[u][v] > tolerance.Epsilon && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return seen
}
