package factory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foundry/factory"
)

func ptrOf(v float64) *float64 { return &v }

func gearInput(machineCap, targetRate float64) factory.Input {
	in := factory.Input{
		Recipes: []factory.Recipe{{
			ID:      "gear",
			Machine: "assembler",
			BaseCraftsPerMin: 60,
			Inputs:  map[string]float64{"iron_plate": 1},
			Outputs: map[string]float64{"iron_gear": 1},
		}},
		Machines:  map[string]float64{"assembler": machineCap},
		RawSupply: map[string]float64{"iron_plate": 200},
		Target:    factory.Target{Item: "iron_gear", RatePerMin: targetRate},
	}
	in.ApplyDefaults()
	return in
}

func TestSolve_FeasibleGears(t *testing.T) {
	ok, infeasible, err := factory.Solve(gearInput(10, 10))
	require.NoError(t, err)
	require.Nil(t, infeasible)
	require.NotNil(t, ok)
	require.Equal(t, "ok", ok.Status)
	require.InDelta(t, 10.0, ok.CraftsPerMin["gear"], 1e-6)
	require.InDelta(t, 10.0/60.0, ok.MachinesUsed["assembler"], 1e-6)
	require.InDelta(t, 10.0, ok.Production["iron_gear"], 1e-6)
}

func TestSolve_InfeasibleCapacity(t *testing.T) {
	ok, infeasible, err := factory.Solve(gearInput(1, 5000))
	require.NoError(t, err)
	require.Nil(t, ok)
	require.NotNil(t, infeasible)
	require.Equal(t, "infeasible", infeasible.Status)
	require.InDelta(t, 60.0, infeasible.MaxRate, 1e-3)
	require.Contains(t, infeasible.Bottlenecks, "assembler")
}

func TestSolve_Byproduct(t *testing.T) {
	in := factory.Input{
		Recipes: []factory.Recipe{{
			ID:      "r1",
			Machine: "smelter",
			BaseCraftsPerMin: 60,
			Inputs:  map[string]float64{"ore": 1},
			Outputs: map[string]float64{"plate": 1, "slag": 0.5},
		}},
		Machines:  map[string]float64{"smelter": 1000},
		RawSupply: map[string]float64{"ore": 1000},
		Target:    factory.Target{Item: "plate", RatePerMin: 10},
	}
	in.ApplyDefaults()

	ok, infeasible, err := factory.Solve(in)
	require.NoError(t, err)
	require.Nil(t, infeasible)
	require.NotNil(t, ok)
	require.InDelta(t, 5.0, ok.Production["slag"], 1e-6)
}

func TestApplyDefaults_PreservesExplicitZeroSpeedMultiplier(t *testing.T) {
	in := factory.Input{Recipes: []factory.Recipe{{ID: "r", SpeedMultiplier: ptrOf(0)}}}
	in.ApplyDefaults()
	require.NotNil(t, in.Recipes[0].SpeedMultiplier)
	require.Equal(t, 0.0, *in.Recipes[0].SpeedMultiplier)
	require.Equal(t, 0.0, in.Recipes[0].EffectiveRate())
}

func TestSolve_SoleRecipeDisabledIsInfeasible(t *testing.T) {
	in := factory.Input{
		Recipes: []factory.Recipe{{
			ID:               "gear",
			Machine:          "assembler",
			BaseCraftsPerMin: 60,
			Inputs:           map[string]float64{"iron_plate": 1},
			Outputs:          map[string]float64{"iron_gear": 1},
			SpeedMultiplier:  ptrOf(0),
		}},
		Machines:  map[string]float64{"assembler": 10},
		RawSupply: map[string]float64{"iron_plate": 200},
		Target:    factory.Target{Item: "iron_gear", RatePerMin: 10},
	}
	in.ApplyDefaults()

	ok, infeasible, err := factory.Solve(in)
	require.NoError(t, err)
	require.Nil(t, ok)
	require.NotNil(t, infeasible)
	require.Equal(t, "infeasible", infeasible.Status)
	require.InDelta(t, 0.0, infeasible.MaxRate, 1e-9)
}

func TestSolve_DisabledRecipeUnusedAlongsideEnabledAlternate(t *testing.T) {
	in := factory.Input{
		Recipes: []factory.Recipe{
			{
				ID:               "gear_disabled",
				Machine:          "assembler",
				BaseCraftsPerMin: 60,
				Inputs:           map[string]float64{"iron_plate": 1},
				Outputs:          map[string]float64{"iron_gear": 1},
				SpeedMultiplier:  ptrOf(0),
			},
			{
				ID:               "gear",
				Machine:          "assembler",
				BaseCraftsPerMin: 60,
				Inputs:           map[string]float64{"iron_plate": 1},
				Outputs:          map[string]float64{"iron_gear": 1},
			},
		},
		Machines:  map[string]float64{"assembler": 10},
		RawSupply: map[string]float64{"iron_plate": 200},
		Target:    factory.Target{Item: "iron_gear", RatePerMin: 10},
	}
	in.ApplyDefaults()

	ok, infeasible, err := factory.Solve(in)
	require.NoError(t, err)
	require.Nil(t, infeasible)
	require.NotNil(t, ok)
	require.InDelta(t, 0.0, ok.CraftsPerMin["gear_disabled"], 1e-9)
	require.InDelta(t, 10.0, ok.CraftsPerMin["gear"], 1e-6)
}

func TestSolve_ScaleInvariance(t *testing.T) {
	const k = 3.0
	base := gearInput(10, 10)
	scaled := gearInput(10*k, 10*k)
	scaled.RawSupply["iron_plate"] *= k

	okBase, _, err := factory.Solve(base)
	require.NoError(t, err)
	okScaled, _, err := factory.Solve(scaled)
	require.NoError(t, err)

	require.True(t, math.Abs(okScaled.CraftsPerMin["gear"]-k*okBase.CraftsPerMin["gear"]) < 1e-6)
}
