package factory

import "github.com/katalvlaran/foundry/tolerance"

// layout fixes the column ordering of the LP's decision vector:
//
//	[ x_1 .. x_nRecipe | m_1 .. m_nMachine | y? | s_1 .. s_nSlack ]
//
// x are recipe crafts-per-min, m are machine-type counts, y is the single
// non-negative "achieved target rate" variable used only by the diagnostic
// LP, and s are one non-negative slack per inequality (added by
// standardForm).
type layout struct {
	nRecipe   int
	nMachine  int
	hasY      bool
	yIdx      int
	slackBase int // first column index available for slacks; also the
	// width of every "base" row before slack columns are appended.
}

func newLayout(nRecipe, nMachine int, hasY bool) layout {
	l := layout{nRecipe: nRecipe, nMachine: nMachine, hasY: hasY}
	base := nRecipe + nMachine
	if hasY {
		l.yIdx = base
		base++
	}
	l.slackBase = base
	return l
}

func (l layout) row() []float64 { return make([]float64, l.slackBase) }

// constraintKind distinguishes the three inequality families so that
// bottleneck hints can be phrased appropriately.
type constraintKind int

const (
	machineCap constraintKind = iota
	rawSupplyCap
	rawNonProduction
)

type constraintInfo struct {
	kind constraintKind
	name string
}

// model precomputes the deterministic index assignment and material
// classification shared by the primary and diagnostic LPs.
type model struct {
	in       Input
	recipes  []Recipe // same order as in.Recipes
	machines []string // see machineTypes
	mats     materials
}

func newModel(in Input) *model {
	return &model{
		in:       in,
		recipes:  in.Recipes,
		machines: machineTypes(in),
		mats:     classify(in),
	}
}

func (m *model) recipeIndex(i int) int { return i }
func (m *model) machineIndex(t string) int {
	for i, mt := range m.machines {
		if mt == t {
			return m.nRecipe() + i
		}
	}
	return -1
}
func (m *model) nRecipe() int  { return len(m.recipes) }
func (m *model) nMachine() int { return len(m.machines) }

// materialBalanceRows builds one equality row per intermediate item (net
// production == 0) and, unless dropTarget is set, one more for the target
// item (net production == rate_required). When dropTarget is set the
// caller (the diagnostic LP) supplies its own target row with the y
// variable instead.
func (m *model) materialBalanceRows(l layout, dropTarget bool) (rows [][]float64, rhs []float64) {
	items := append([]string{}, m.mats.intermediate...)
	if !dropTarget {
		items = append(items, m.in.Target.Item)
	}
	for _, item := range items {
		row := l.row()
		for ri, r := range m.recipes {
			row[ri] = netCoefficient(r, item)
		}
		b := 0.0
		if item == m.in.Target.Item {
			b = m.in.Target.RatePerMin
		}
		rows = append(rows, row)
		rhs = append(rhs, b)
	}
	return rows, rhs
}

// targetRowWithY builds the diagnostic LP's replacement target row:
// Σ_r (prod·out − in)·x_r − y = 0.
func (m *model) targetRowWithY(l layout) []float64 {
	row := l.row()
	for ri, r := range m.recipes {
		row[ri] = netCoefficient(r, m.in.Target.Item)
	}
	row[l.yIdx] = -1
	return row
}

// machineAccountingRows builds, per machine-type t, the equality
//
//	m_t − Σ_{r: machine(r)=t, EffectiveRate(r)≠0} x_r / EffectiveRate(r) = 0
//
// Recipes with EffectiveRate 0 are omitted here; they are pinned to x_r=0
// by pinRows instead, so their absence changes nothing.
func (m *model) machineAccountingRows(l layout) (rows [][]float64, rhs []float64) {
	for _, t := range m.machines {
		row := l.row()
		row[m.machineIndex(t)] = 1
		for ri, r := range m.recipes {
			if r.Machine != t {
				continue
			}
			eff := r.EffectiveRate()
			if tolerance.IsZero(eff) {
				continue
			}
			row[ri] = -1.0 / eff
		}
		rows = append(rows, row)
		rhs = append(rhs, 0)
	}
	return rows, rhs
}

// pinRows forces x_r = 0 for every recipe whose EffectiveRate is 0
// (base_crafts_per_min*speed_multiplier == 0, i.e. the recipe is disabled).
func (m *model) pinRows(l layout) (rows [][]float64, rhs []float64) {
	for ri, r := range m.recipes {
		if !tolerance.IsZero(r.EffectiveRate()) {
			continue
		}
		row := l.row()
		row[ri] = 1
		rows = append(rows, row)
		rhs = append(rhs, 0)
	}
	return rows, rhs
}

// machineCapRows builds, per machine type, m_t <= cap(t). A machine type
// referenced only by a recipe (never declared in Input.Machines) gets
// cap 0.
func (m *model) machineCapRows(l layout) (rows [][]float64, rhs []float64, info []constraintInfo) {
	for _, t := range m.machines {
		row := l.row()
		row[m.machineIndex(t)] = 1
		rows = append(rows, row)
		rhs = append(rhs, m.in.Machines[t])
		info = append(info, constraintInfo{kind: machineCap, name: t})
	}
	return rows, rhs, info
}

// rawRows builds, per raw item k, the supply cap
// Σ(in−prod·out)·x_r <= supply(k) and the never-net-produce constraint
// Σ(prod·out−in)·x_r <= 0.
func (m *model) rawRows(l layout) (rows [][]float64, rhs []float64, info []constraintInfo) {
	for _, k := range m.mats.raw {
		row := l.row()
		for ri, r := range m.recipes {
			row[ri] = -netCoefficient(r, k) // in - prod*out
		}
		rows = append(rows, row)
		rhs = append(rhs, m.in.RawSupply[k])
		info = append(info, constraintInfo{kind: rawSupplyCap, name: k})
	}
	for _, k := range m.mats.raw {
		row := l.row()
		for ri, r := range m.recipes {
			row[ri] = netCoefficient(r, k) // prod*out - in
		}
		rows = append(rows, row)
		rhs = append(rhs, 0)
		info = append(info, constraintInfo{kind: rawNonProduction, name: k})
	}
	return rows, rhs, info
}
