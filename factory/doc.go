// Package factory implements the Factory LP Engine: it decides whether a
// requested steady-state output rate of a target item is achievable given a
// set of recipes, machine-type caps and raw-material supply budgets, and
// when it is, returns a minimal-machine production plan.
//
// # Model
//
// One non-negative real decision variable x_r is allocated per recipe,
// interpreted as crafts-per-minute of that recipe, plus one non-negative
// real m_t per machine-type tracking machines used. The primary LP
// minimizes Σ_t m_t subject to:
//
//   - material balance: net production of every intermediate item is 0,
//     net production of the target item equals the requested rate;
//   - raw-material budgets: net consumption of every raw item is within its
//     supply, and no raw item is ever net-produced;
//   - machine accounting: m_t equals the machines implied by the recipes
//     assigned to machine-type t, and m_t is within the type's cap;
//   - disabled recipes (EffectiveRate == 0) are pinned to x_r = 0.
//
// When the primary LP is infeasible, diagnose solves a second LP that drops
// the target-equality constraint, introduces a non-negative variable for the
// achieved target rate, and maximizes it — the optimum is the best rate
// reachable under the same machine/raw constraints, and the constraints
// tight at that optimum are reported as bottleneck hints.
//
// Both LPs are solved with gonum's simplex (gonum.org/v1/gonum/optimize/convex/lp),
// which requires standard form (Ax = b, x >= 0); standardForm converts the mixed
// equality/inequality system above into that form by adding one non-negative
// slack variable per inequality — those slack values double as the binding
// test used for bottleneck hints, since a slack of 0 means the inequality
// is tight.
package factory
