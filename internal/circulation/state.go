// Package circulation implements the 11-state lumped-parameter
// cardiovascular model: the time-varying elastance chamber model, the
// nonlinear valve-flow equations, and the fixed-step RK4 integrator that
// drives them.
package circulation

// State holds the 11 compartment volumes (mL), in the fixed order the
// external interface documents.
type State [NumStates]float64

// Compartment indices into State, in catalog order.
const (
	IdxQvs = iota
	IdxQas
	IdxQap
	IdxQvp
	IdxQlv
	IdxQla
	IdxQrv
	IdxQra
	IdxQasProx
	IdxQda
	IdxQapProx

	NumStates
)

// Grid sizing for the fixed time grid described in the data model: 5001
// uniform samples, 2ms apart, starting at t0 = 954.9317ms and spanning 10s
// of simulated time, so the last cycle lies well past the initial transient.
const (
	NumSamples = 5001
	StepMS     = 2.0
	StartMS    = 954.9317
)

// TimeGrid returns the fixed, uniform evaluation grid t[i] = t0 + i*dt.
func TimeGrid() [NumSamples]float64 {
	var t [NumSamples]float64
	for i := range t {
		t[i] = StartMS + float64(i)*StepMS
	}
	return t
}

// Trajectory is a fully integrated run: the time grid plus the state at
// every sample.
type Trajectory struct {
	T [NumSamples]float64
	Y [NumSamples]State
}
