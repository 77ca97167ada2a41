package factory

import (
	"github.com/katalvlaran/foundry/tolerance"
)

// diagnose runs a second, phase-2 LP: drop the target-equality constraint,
// introduce a non-negative variable y for the achieved target rate,
// replace the target's material-balance row with one that nets out to y
// instead of the requested rate, and maximize y subject to every other
// constraint unchanged. The machine-cap and raw-supply/raw-nonproduction
// inequalities are reused verbatim (same coefficients, same bounds); only
// their slack positions shift to make room for y.
func (m *model) diagnose() (*InfeasibleOutput, error) {
	l := newLayout(m.nRecipe(), m.nMachine(), true)

	eqRows, eqRHS := m.materialBalanceRows(l, true)
	eqRows = append(eqRows, m.targetRowWithY(l))
	eqRHS = append(eqRHS, 0)

	mRows, mRHS := m.machineAccountingRows(l)
	pRows, pRHS := m.pinRows(l)
	eqRows = append(eqRows, mRows...)
	eqRHS = append(eqRHS, mRHS...)
	eqRows = append(eqRows, pRows...)
	eqRHS = append(eqRHS, pRHS...)

	capRows, capRHS, capInfo := m.machineCapRows(l)
	rRows, rRHS, rInfo := m.rawRows(l)
	ineqRows := append(capRows, rRows...)
	ineqRHS := append(capRHS, rRHS...)
	info := append(capInfo, rInfo...)

	c := make([]float64, l.slackBase+len(ineqRows))
	c[l.yIdx] = -1 // maximize y == minimize -y

	A, b := standardForm(l, eqRows, eqRHS, ineqRows, ineqRHS)
	optF, x, err := runSimplex(c, A, b)
	if err != nil {
		// Even the relaxed problem (y can be 0) admits no feasible point;
		// this only happens if the raw/machine constraints alone are
		// contradictory (e.g. negative supply slipped past validation),
		// which ioshell should have already rejected.
		return nil, solverErrorf("diagnostic", err)
	}

	maxRate := tolerance.Clamp(-optF)
	bottlenecks := m.bottleneckHints(l, x, info)

	return &InfeasibleOutput{
		Status:      "infeasible",
		Reason:      "requested target rate exceeds the maximum achievable rate under the given machine and raw-material constraints",
		MaxRate:     maxRate,
		Bottlenecks: bottlenecks,
	}, nil
}

// bottleneckHints reads the slack of every inequality off the diagnostic
// solution vector and names the machine types / raw items whose
// constraint is binding (slack within tolerance.Epsilon of 0). Raw
// non-production constraints never produce a hint: a raw item being
// driven to its never-net-produce bound is a balance artifact, not a
// cause of the shortfall.
func (m *model) bottleneckHints(l layout, x []float64, info []constraintInfo) []string {
	seen := map[string]bool{}
	var hints []string
	for i, inf := range info {
		slack := x[l.slackBase+i]
		if !tolerance.Binding(slack) {
			continue
		}
		if inf.kind == rawNonProduction {
			continue
		}
		if !seen[inf.name] {
			seen[inf.name] = true
			hints = append(hints, inf.name)
		}
	}
	return hints
}
