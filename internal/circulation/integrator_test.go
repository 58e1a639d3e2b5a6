package circulation

import (
	"math"
	"testing"

	"github.com/g960059/circleheart/internal/params"
)

func defaultInitialState(ps *params.ParameterSet) State {
	return State{
		ps.Value("Qvs_initial"),
		149.3527787113375, 405.08061599015554, 135.97317102061024,
		144.32186565319813, 75.34345155268299, 117.70495107318685,
		73.76400781737635, 68.42882775454605, 42.75963410693713,
		20.28639894876003,
	}
}

func TestIntegrate_DefaultsProduceFiniteTrajectory(t *testing.T) {
	ps := params.New()
	f := NewFrame(ps)
	y0 := defaultInitialState(ps)
	grid := TimeGrid()

	traj := Integrate(y0, grid, f)

	if traj.T[0] != StartMS {
		t.Errorf("T[0] = %v, want %v", traj.T[0], StartMS)
	}
	if traj.Y[0] != y0 {
		t.Errorf("Y[0] should equal the initial state")
	}
	for i, y := range traj.Y {
		for j, v := range y {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite state at sample %d, component %d: %v", i, j, v)
			}
		}
	}
}

func TestIntegrate_GridMatchesSpec(t *testing.T) {
	grid := TimeGrid()
	if len(grid) != NumSamples {
		t.Fatalf("grid length = %d, want %d", len(grid), NumSamples)
	}
	if grid[1]-grid[0] != StepMS {
		t.Errorf("dt = %v, want %v", grid[1]-grid[0], StepMS)
	}
	if grid[NumSamples-1] != StartMS+float64(NumSamples-1)*StepMS {
		t.Errorf("last grid sample mismatch")
	}
}
