package factory

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// standardForm assembles equality rows (already sized to l.slackBase) and
// inequality rows (same width) into the Ax=b, x>=0 form gonum's Simplex
// requires: one non-negative slack column is appended per inequality row,
// with coefficient 1 in that row and 0 elsewhere. The slack's column index
// equals l.slackBase + its position in ineqRows, a fact the caller uses to
// read back binding slacks after solving.
func standardForm(l layout, eqRows [][]float64, eqRHS []float64, ineqRows [][]float64, ineqRHS []float64) (*mat.Dense, []float64) {
	nSlack := len(ineqRows)
	total := l.slackBase + nSlack
	nRows := len(eqRows) + len(ineqRows)

	A := mat.NewDense(nRows, total, nil)
	b := make([]float64, nRows)

	row := 0
	for i, r := range eqRows {
		for c, v := range r {
			A.Set(row, c, v)
		}
		b[row] = eqRHS[i]
		row++
	}
	for i, r := range ineqRows {
		for c, v := range r {
			A.Set(row, c, v)
		}
		A.Set(row, l.slackBase+i, 1)
		b[row] = ineqRHS[i]
		row++
	}
	return A, b
}

// runSimplex minimizes c^T x subject to A x = b, x >= 0 via gonum's
// simplex, returning the full solution vector (including slacks).
func runSimplex(c []float64, A *mat.Dense, b []float64) (optF float64, x []float64, err error) {
	return lp.Simplex(c, A, b, 0, nil)
}
