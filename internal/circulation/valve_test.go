package circulation

import "testing"

func TestValveFlow_LinearRegimeWhenVarZero(t *testing.T) {
	for _, grad := range []float64{10, -10, 0.001, -0.001} {
		got := valveFlow(grad, 2.5, 0, 0)
		var r float64
		if grad > 0 {
			r = 2.5
		} else {
			r = 2.5 // R_open + R_close_var, R_close_var=0
		}
		want := grad / r
		if got != want {
			t.Errorf("valveFlow(%v, 2.5, 0, 0) = %v, want %v", grad, got, want)
		}
	}
}

func TestValveFlow_SealedValveSentinel(t *testing.T) {
	got := valveFlow(-5, 2.5, 0, 100000)
	want := -5.0 / (2.5 + 100000)
	if got != want {
		t.Errorf("sealed valve: got %v, want %v", got, want)
	}
}

func TestValveFlow_ForwardExample(t *testing.T) {
	got := valveFlow(10, 2.5, 0, 100000)
	want := 10.0 / 2.5
	if got != want {
		t.Errorf("forward valve: got %v, want %v", got, want)
	}
}

func TestValveFlow_QuadraticRegimeMatchesClosedForm(t *testing.T) {
	grad, rOpen, rOpenVar, rCloseVar := 5.0, 2.0, 3.0, 0.0
	got := valveFlow(grad, rOpen, rOpenVar, rCloseVar)

	// Forward regime with non-zero variable resistance solves
	// v*I^2 + sign*r*I - grad = 0 with sign = -1.
	r, v, sign := rOpen, rOpenVar, -1.0
	flow := got
	lhs := v*flow*flow + sign*r*flow - grad
	if lhs > 1e-6 || lhs < -1e-6 {
		t.Errorf("valveFlow(%v,%v,%v,%v) = %v does not satisfy quadratic: residual %v", grad, rOpen, rOpenVar, rCloseVar, got, lhs)
	}
}
