package optimize

import (
	"fmt"

	"github.com/g960059/circleheart/internal/circulation"
	"github.com/g960059/circleheart/internal/metrics"
	"github.com/g960059/circleheart/internal/params"
)

// Target is one weighted term of the fitness objective: a clinician-supplied
// value for a named metric.
type Target struct {
	Value  float64
	Key    string
	Weight float64
}

// initialState builds the fixed initial state vector. Index 0 is overwritten
// from the current Qvs_initial parameter value so the optimizer can vary the
// venous reservoir — the rest are fixed reference values the model settles
// toward after roughly a second of simulated time.
func initialState(ps *params.ParameterSet) circulation.State {
	return circulation.State{
		ps.Value("Qvs_initial"),
		149.3527787113375, 405.08061599015554, 135.97317102061024,
		144.32186565319813, 75.34345155268299, 117.70495107318685,
		73.76400781737635, 68.42882775454605, 42.75963410693713,
		20.28639894876003,
	}
}

// Evaluate integrates params over the fixed grid, extracts metrics from the
// final cycle, and returns the weighted squared error against targets.
// Target keys absent from the extracted metrics contribute zero error.
//
// A non-finite result is not an error: it propagates as a (possibly NaN)
// fitness value, which the GA's NaN-is-worst ordering tolerates. Only a
// structural failure of the metrics extractor (ErrNoCycleWindow) is
// reported as an error, wrapped into ErrInternal.
func Evaluate(ps *params.ParameterSet, targets []Target) (float64, error) {
	f := circulation.NewFrame(ps)
	traj := circulation.Integrate(initialState(ps), circulation.TimeGrid(), f)

	m, err := metrics.Extract(traj, f)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var fitness float64
	for _, target := range targets {
		value, ok := m[target.Key]
		if !ok {
			continue
		}
		diff := target.Value - value
		fitness += target.Weight * diff * diff
	}
	return fitness, nil
}
