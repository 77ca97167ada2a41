package factory

import (
	"errors"

	"github.com/katalvlaran/foundry/tolerance"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solve runs the Factory LP Engine on a defaulted, validated input. Exactly
// one of the two results is non-nil on a nil error; a non-nil error means
// the underlying simplex failed for a reason other than infeasibility
// (ErrSolverFailure). A target item with no producing recipe at all is not
// a distinct error case: its material-balance row is identically zero, so
// the primary LP is infeasible and the diagnostic LP reports max_rate 0.
func Solve(in Input) (*OkOutput, *InfeasibleOutput, error) {
	m := newModel(in)

	l := newLayout(m.nRecipe(), m.nMachine(), false)

	eqRows, eqRHS := m.materialBalanceRows(l, false)
	mRows, mRHS := m.machineAccountingRows(l)
	pRows, pRHS := m.pinRows(l)
	eqRows = append(eqRows, mRows...)
	eqRHS = append(eqRHS, mRHS...)
	eqRows = append(eqRows, pRows...)
	eqRHS = append(eqRHS, pRHS...)

	capRows, capRHS, _ := m.machineCapRows(l)
	rawRows, rawRHS, _ := m.rawRows(l)
	ineqRows := append(capRows, rawRows...)
	ineqRHS := append(capRHS, rawRHS...)

	c := make([]float64, l.slackBase+len(ineqRows))
	for _, t := range m.machines {
		c[m.machineIndex(t)] = 1
	}

	A, b := standardForm(l, eqRows, eqRHS, ineqRows, ineqRHS)
	_, x, err := runSimplex(c, A, b)
	if err == nil {
		return m.formatSuccess(x), nil, nil
	}
	if !errors.Is(err, lp.ErrInfeasible) {
		return nil, nil, solverErrorf("primary", err)
	}

	out, derr := m.diagnose()
	if derr != nil {
		return nil, nil, derr
	}
	return nil, out, nil
}

// formatSuccess reads crafts-per-minute, machine usage and per-item
// production off the primary LP's optimal solution vector x.
func (m *model) formatSuccess(x []float64) *OkOutput {
	crafts := make(map[string]float64, m.nRecipe())
	for ri, r := range m.recipes {
		crafts[r.ID] = tolerance.Clamp(x[ri])
	}
	machinesUsed := make(map[string]float64, m.nMachine())
	for i, t := range m.machines {
		machinesUsed[t] = tolerance.Clamp(x[m.nRecipe()+i])
	}
	production := make(map[string]float64, len(m.mats.all))
	for _, item := range m.mats.all {
		var net float64
		for ri, r := range m.recipes {
			net += netCoefficient(r, item) * x[ri]
		}
		production[item] = tolerance.Clamp(net)
	}
	return &OkOutput{
		Status:       "ok",
		CraftsPerMin: crafts,
		MachinesUsed: machinesUsed,
		Production:   production,
	}
}
