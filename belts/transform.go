package belts

// Reserved suffixes for node splitting and the super-source/super-sink
// pair. The NUL byte cannot occur in a JSON string decoded into a Go
// string from ordinary input, so these can never collide with a user
// node id.
const (
	suffixIn    = "\x00:in"
	suffixOut   = "\x00:out"
	superSource = "\x00S*"
	superSink   = "\x00T*"
)

// transformed holds the max-flow network built from a belts Input plus
// the bookkeeping needed to reconstruct and disaggregate flows afterward.
type transformed struct {
	net      *network
	order    []string // node ids in first-seen input order
	edges    []Edge
	internal map[string]string // v -> entry port edges terminate at
	external map[string]string // v -> exit port edges originate from
	split    map[string]bool

	// pairEdges and pairCapacity are keyed by (external[from], internal[to])
	// and record, per direction between two original nodes, which edge
	// indices share that transformed arc and the total capacity added for
	// it (captured before maxFlow mutates residuals). pairArc records the
	// actual network arc to read residual capacity back from for that
	// key — itself, unless the direction was routed through an
	// anti-parallel dummy node, in which case it's the dummy's outgoing arc.
	pairEdges    map[[2]string][]int
	pairCapacity map[[2]string]float64
	pairArc      map[[2]string][2]string

	requirement map[string]float64
	totalDemand float64
}

// antiParallelDummy names the detour vertex used to route one direction of
// a pair of opposite-direction original edges between the same two
// unsplit nodes. Without a detour, both directions would share the same
// (from,to)/(to,from) slots in the capacity map as each other's reverse
// residual arc, and a real edge's capacity would be indistinguishable
// from the other direction's leftover residual. The NUL-byte prefix
// cannot occur in a JSON-decoded node id, so this can never collide with
// a real one.
func antiParallelDummy(from, to string) string {
	return "\x00A>" + from + "\x00>" + to
}

// build runs the bounded-flow-to-max-flow reduction: lower-bound
// elimination via node imbalance, node splitting for every capacitated
// node, and super-source/super-sink attachment by signed Requirement.
// Max-flow itself is run separately by the caller so that the caller can
// decide whether to continue to reconstruction or to the cut certificate.
func build(in Input) *transformed {
	cap := make(map[string]*float64, len(in.Nodes))
	supply := make(map[string]float64, len(in.Nodes))
	order := make([]string, 0, len(in.Nodes))
	for _, n := range in.Nodes {
		cap[n.ID] = n.Cap
		supply[n.ID] = n.Supply
		order = append(order, n.ID)
	}

	imbalance := map[string]float64{}
	for _, e := range in.Edges {
		imbalance[e.To] += e.Lo
		imbalance[e.From] -= e.Lo
		order = appendIfNew(order, e.From)
		order = appendIfNew(order, e.To)
	}

	t := &transformed{
		edges:        in.Edges,
		internal:     make(map[string]string, len(order)),
		external:     make(map[string]string, len(order)),
		split:        make(map[string]bool, len(order)),
		pairEdges:    make(map[[2]string][]int),
		pairCapacity: make(map[[2]string]float64),
		pairArc:      make(map[[2]string][2]string),
		requirement:  make(map[string]float64, len(order)),
	}

	vertices := []string{superSource, superSink}
	for _, v := range order {
		req := imbalance[v] + supply[v]
		t.requirement[v] = req
		if req > 0 {
			t.totalDemand += req
		}

		if c := cap[v]; c != nil {
			t.split[v] = true
			t.internal[v] = v + suffixIn
			t.external[v] = v + suffixOut
			vertices = append(vertices, t.internal[v], t.external[v])
		} else {
			t.internal[v] = v
			t.external[v] = v
			vertices = append(vertices, v)
		}
	}

	// A pair of original edges running in opposite directions between the
	// same two unsplit nodes would otherwise transform into two arcs that
	// are each other's exact reverse in the capacity map — the first
	// direction encountered claims that direct slot; detect edges running
	// the other way and route them through a dedicated detour vertex
	// instead (added to the network below), so neither direction's real
	// capacity is ever read back as the other's residual. Split nodes
	// can't collide this way: their in/out ports already give the two
	// directions distinct endpoints.
	direct := map[[2]string]bool{}
	dummyFor := map[[2]string]string{}
	for _, e := range in.Edges {
		if t.split[e.From] || t.split[e.To] {
			continue
		}
		fwd := [2]string{e.From, e.To}
		rev := [2]string{e.To, e.From}
		if direct[rev] {
			if _, ok := dummyFor[fwd]; !ok {
				dummyFor[fwd] = antiParallelDummy(e.From, e.To)
			}
			continue
		}
		direct[fwd] = true
	}
	for _, d := range dummyFor {
		vertices = append(vertices, d)
	}

	t.net = newNetwork(vertices)

	for _, v := range order {
		if t.split[v] {
			t.net.addCapacity(t.internal[v], t.external[v], *cap[v])
		}
	}
	for i, e := range in.Edges {
		key := [2]string{t.external[e.From], t.internal[e.To]}
		t.pairEdges[key] = append(t.pairEdges[key], i)
		t.pairCapacity[key] += e.Hi - e.Lo
		if d, ok := dummyFor[[2]string{e.From, e.To}]; ok {
			t.net.addCapacity(key[0], d, e.Hi-e.Lo)
			t.net.addCapacity(d, key[1], e.Hi-e.Lo)
			t.pairArc[key] = [2]string{d, key[1]}
		} else {
			t.net.addCapacity(key[0], key[1], e.Hi-e.Lo)
			t.pairArc[key] = key
		}
	}
	for _, v := range order {
		req := t.requirement[v]
		switch {
		case req > 0:
			t.net.addCapacity(superSource, t.internal[v], req)
		case req < 0:
			t.net.addCapacity(t.external[v], superSink, -req)
		}
	}

	t.order = order
	return t
}

func appendIfNew(order []string, v string) []string {
	for _, existing := range order {
		if existing == v {
			return order
		}
	}
	return append(order, v)
}
