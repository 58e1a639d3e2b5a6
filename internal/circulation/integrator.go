package circulation

import "gonum.org/v1/gonum/floats"

// Integrate drives the 11-state ODE system with a classical fixed-step RK4
// scheme over the fixed time grid, starting from y0. There is no step
// rejection or error control, and non-finite values are never rejected —
// they propagate through exactly as computed (see spec failure semantics);
// the caller (the fitness evaluator) is responsible for tolerating a
// possibly-NaN result downstream.
func Integrate(y0 State, t [NumSamples]float64, f Frame) Trajectory {
	var traj Trajectory
	traj.T = t
	traj.Y[0] = y0

	// Scratch buffers reused across steps; avoids an allocation per stage
	// per step across the fixed 5000-step grid.
	var k1, k2, k3, k4, ytemp, combined State

	for i := 1; i < NumSamples; i++ {
		h := t[i] - t[i-1]
		prev := traj.Y[i-1]

		dy, _ := derivatives(t[i-1], prev, f)
		k1 = dy

		ytemp = prev
		floats.AddScaled(ytemp[:], h/2, k1[:])
		dy, _ = derivatives(t[i-1]+h/2, ytemp, f)
		k2 = dy

		ytemp = prev
		floats.AddScaled(ytemp[:], h/2, k2[:])
		dy, _ = derivatives(t[i-1]+h/2, ytemp, f)
		k3 = dy

		ytemp = prev
		floats.AddScaled(ytemp[:], h, k3[:])
		dy, _ = derivatives(t[i], ytemp, f)
		k4 = dy

		combined = k1
		floats.AddScaled(combined[:], 2, k2[:])
		floats.AddScaled(combined[:], 2, k3[:])
		floats.AddScaled(combined[:], 1, k4[:])

		next := prev
		floats.AddScaled(next[:], h/6, combined[:])
		traj.Y[i] = next
	}

	return traj
}

// DerivativesAt exposes the pressures/valve-flows output at a single sample,
// used by the metrics extractor to re-derive cycle-window quantities
// without re-integrating.
func DerivativesAt(t float64, y State, f Frame) Outputs {
	_, out := derivatives(t, y, f)
	return out
}
