package belts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foundry/belts"
)

func capOf(v float64) *float64 { return &v }

func TestSolve_FeasibleLinear(t *testing.T) {
	in := belts.Input{
		Nodes: []belts.Node{
			{ID: "S", Supply: 50},
			{ID: "J", Cap: capOf(100)},
			{ID: "T", Supply: -50},
		},
		Edges: []belts.Edge{
			{From: "S", To: "J", Lo: 0, Hi: 100},
			{From: "J", To: "T", Lo: 0, Hi: 100},
		},
	}

	ok, infeasible, err := belts.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, infeasible)
	require.NotNil(t, ok)
	require.Equal(t, "ok", ok.Status)
	require.Len(t, ok.Flows, 2)
	require.InDelta(t, 50.0, ok.Flows[0].Flow, 1e-6)
	require.InDelta(t, 50.0, ok.Flows[1].Flow, 1e-6)
}

func TestSolve_InfeasibleBottleneck(t *testing.T) {
	in := belts.Input{
		Nodes: []belts.Node{
			{ID: "S", Supply: 50},
			{ID: "T", Supply: -50},
		},
		Edges: []belts.Edge{
			{From: "S", To: "T", Lo: 0, Hi: 20},
		},
	}

	ok, infeasible, err := belts.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, ok)
	require.NotNil(t, infeasible)
	require.Equal(t, "infeasible", infeasible.Status)
	require.InDelta(t, 30.0, infeasible.Deficit, 1e-6)
	require.Equal(t, []belts.CutEdge{{From: "S", To: "T"}}, infeasible.TightEdges)
}

func TestSolve_LowerBound(t *testing.T) {
	in := belts.Input{
		Nodes: []belts.Node{
			{ID: "A", Supply: 10},
			{ID: "B", Supply: -10},
		},
		Edges: []belts.Edge{
			{From: "A", To: "B", Lo: 5, Hi: 20},
		},
	}

	ok, infeasible, err := belts.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, infeasible)
	require.NotNil(t, ok)
	require.Len(t, ok.Flows, 1)
	require.InDelta(t, 10.0, ok.Flows[0].Flow, 1e-6)
}

func TestSolve_ParallelEdgesDisaggregateGreedily(t *testing.T) {
	in := belts.Input{
		Nodes: []belts.Node{
			{ID: "A", Supply: 8},
			{ID: "B", Supply: -8},
		},
		Edges: []belts.Edge{
			{From: "A", To: "B", Lo: 0, Hi: 5},
			{From: "A", To: "B", Lo: 0, Hi: 5},
		},
	}

	ok, infeasible, err := belts.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, infeasible)
	require.NotNil(t, ok)
	require.Len(t, ok.Flows, 2)
	require.InDelta(t, 5.0, ok.Flows[0].Flow, 1e-6)
	require.InDelta(t, 3.0, ok.Flows[1].Flow, 1e-6)
}

func TestSolve_AntiParallelEdgesDoNotCorruptEachOther(t *testing.T) {
	in := belts.Input{
		Nodes: []belts.Node{
			{ID: "A", Supply: 10},
			{ID: "B", Supply: -10},
		},
		Edges: []belts.Edge{
			{From: "A", To: "B", Lo: 0, Hi: 20},
			{From: "B", To: "A", Lo: 0, Hi: 5},
		},
	}

	ok, infeasible, err := belts.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, infeasible)
	require.NotNil(t, ok)
	require.Len(t, ok.Flows, 2)
	require.InDelta(t, 10.0, ok.Flows[0].Flow, 1e-6)
	require.GreaterOrEqual(t, ok.Flows[1].Flow, 0.0)
	require.InDelta(t, 0.0, ok.Flows[1].Flow, 1e-6)
}

func TestSolve_CanceledContextFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := belts.Input{
		Nodes: []belts.Node{
			{ID: "A", Supply: 10},
			{ID: "B", Supply: -10},
		},
		Edges: []belts.Edge{
			{From: "A", To: "B", Lo: 0, Hi: 20},
		},
	}

	_, _, err := belts.Solve(ctx, in)
	require.Error(t, err)
	require.ErrorIs(t, err, belts.ErrSolverFailure)
}

func TestSolve_NodeCapBinds(t *testing.T) {
	in := belts.Input{
		Nodes: []belts.Node{
			{ID: "S", Supply: 50},
			{ID: "J", Cap: capOf(10)},
			{ID: "T", Supply: -50},
		},
		Edges: []belts.Edge{
			{From: "S", To: "J", Lo: 0, Hi: 100},
			{From: "J", To: "T", Lo: 0, Hi: 100},
		},
	}

	_, infeasible, err := belts.Solve(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, infeasible)
	require.InDelta(t, 40.0, infeasible.Deficit, 1e-6)
	require.Contains(t, infeasible.TightNodes, "J")
}
