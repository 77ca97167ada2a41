// Package belts implements the Belts Flow Engine: it decides whether a
// feasible circulation exists in a directed graph with per-edge lower/upper
// flow bounds, optional per-node throughput caps, and per-node signed
// supply/demand, and when it does, returns the flow assignment; otherwise
// it returns an infeasibility (min-cut) certificate.
//
// # Transformation
//
// The bounded-flow problem is reduced to an ordinary max-flow problem in
// four stages:
//
//  1. Lower-bound elimination: each edge (u,v,lo,hi) becomes a transformed
//     edge of capacity hi-lo, and lo units are folded into each endpoint's
//     imbalance B(v) = Σlo(incoming) - Σlo(outgoing).
//  2. Node splitting: every node with a finite throughput cap is replaced
//     by v:in -> v:out joined by an edge of that capacity; incoming edges
//     land on v:in, outgoing edges leave from v:out. This is applied
//     uniformly to every capacitated node (not only transshipment nodes),
//     which strictly subsumes the common case of a capacitated pure
//     source/sink without changing the feasible region in that case (see
//     DESIGN.md).
//  3. Super-source/sink: a node with positive Requirement (Imbalance +
//     signed supply) gets an edge from S*; a node with negative
//     Requirement gets an edge to T*. A pair of original edges running in
//     opposite directions between the same two unsplit nodes is detected
//     here and one direction is routed through a dedicated detour vertex,
//     so neither direction's capacity is ever misread as the other's
//     leftover residual.
//  4. Max-flow from S* to T* is computed with a Dinic-style level-graph +
//     blocking-flow algorithm (adapted from the same technique the
//     katalvlaran/lvlath flow package uses over *core.Graph, here
//     specialized to the float64 capacity maps this package needs).
//
// Feasibility holds iff the max-flow value equals total demand D. On
// success, original per-edge flows are reconstructed and, for edges that
// shared a transformed edge (parallel edges), disaggregated deterministically.
// On failure, a min-cut certificate (reachable nodes, tight nodes, tight
// edges, deficit) is produced by a single residual-graph reachability pass.
package belts
