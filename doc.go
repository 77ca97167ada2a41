// Package foundry is the root of a pair of coupled optimization solvers for
// a factory-simulation planning domain.
//
// What is foundry?
//
//	A pure-Go toolkit that answers two planning questions over a steady-state
//	production network:
//		• factory — given recipes, machine inventories and raw-material
//		  budgets, is a requested output rate achievable, and if so what is
//		  the minimal-machine production plan?
//		• belts — given a directed graph with bounded edge flows, node
//		  throughput caps and per-node supply/demand, does a feasible
//		  circulation exist, and if not, what is the infeasibility
//		  certificate?
//
// Each solver is a pure function of its input: no global state, no
// persistence, no concurrency between invocations. The engines live in the
// factory and belts packages; shared numeric policy lives in tolerance;
// request/response framing and validation live in ioshell. cmd/factory and
// cmd/belts wire each engine to a single-shot stdin→stdout CLI.
//
// See DESIGN.md for the grounding of each component and SPEC_FULL.md for
// the complete behavioral contract.
package foundry
