package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/g960059/circleheart/internal/circulation"
	"github.com/g960059/circleheart/internal/params"
)

func defaultInitialState(ps *params.ParameterSet) circulation.State {
	return circulation.State{
		ps.Value("Qvs_initial"),
		149.3527787113375, 405.08061599015554, 135.97317102061024,
		144.32186565319813, 75.34345155268299, 117.70495107318685,
		73.76400781737635, 68.42882775454605, 42.75963410693713,
		20.28639894876003,
	}
}

func TestExtract_EjectionFractionInOpenRange(t *testing.T) {
	ps := params.New()
	f := circulation.NewFrame(ps)
	traj := circulation.Integrate(defaultInitialState(ps), circulation.TimeGrid(), f)

	m, err := Extract(traj, f)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	lvef := m[LeftVentricularEjectionFraction]
	if !(lvef > 0 && lvef < 100) {
		t.Errorf("left_ventricular_ejection_fraction = %v, want value in (0, 100)", lvef)
	}
}

func TestExtract_AllEightMetricsPresent(t *testing.T) {
	ps := params.New()
	f := circulation.NewFrame(ps)
	traj := circulation.Integrate(defaultInitialState(ps), circulation.TimeGrid(), f)

	m, err := Extract(traj, f)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	for _, key := range []string{
		StrokeVolume, CentralVenousPressure, PulmonaryCapillaryWedgePressure,
		SystolicArterialPressure, DiastolicArterialPressure,
		SystolicPulmonaryArterialPressure, DiastolicPulmonaryArterialPressure,
		LeftVentricularEjectionFraction,
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing metric %q", key)
		}
	}
}

func TestExtract_NoCycleWindow(t *testing.T) {
	// A pathological, all-NaN time grid can never satisfy the window
	// comparison (NaN comparisons are always false), which is the only way
	// to hit the "no cycle window" programmer-error path on a trajectory of
	// the expected fixed shape.
	var traj circulation.Trajectory
	nan := math.NaN()
	for i := range traj.T {
		traj.T[i] = nan
	}
	f := circulation.Frame{HR: 90}

	_, err := Extract(traj, f)
	if !errors.Is(err, ErrNoCycleWindow) {
		t.Fatalf("Extract() error = %v, want ErrNoCycleWindow", err)
	}
}

func TestExtract_NormalGridAlwaysHasAWindow(t *testing.T) {
	var traj circulation.Trajectory
	traj.T[0] = 0
	for i := 1; i < len(traj.T); i++ {
		traj.T[i] = traj.T[i-1] + circulation.StepMS
	}
	f := circulation.Frame{HR: 90}

	if _, err := Extract(traj, f); err != nil {
		t.Fatalf("expected a valid window for a normal grid, got error: %v", err)
	}
}
