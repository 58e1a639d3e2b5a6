package circulation

import "math"

// sealedValveResistance is the magic "very large resistance" sentinel that
// selects the pure-linear valve regime on the reverse (closed) side. The
// spec leaves the exact threshold undocumented (see Open Questions); it is
// reproduced here exactly rather than generalized, since no other value
// appears anywhere in the original source.
const sealedValveResistance = 100000.0

// valveFlow computes the volumetric flow across a heart valve given a
// pressure gradient, selecting the forward/reverse regime by the sign of
// grad and solving the resulting linear or quadratic resistance equation.
func valveFlow(grad, rOpen, rOpenVar, rCloseVar float64) float64 {
	var r, v float64
	if grad > 0 {
		r, v = rOpen, rOpenVar
	} else {
		r, v = rOpen+rCloseVar, rCloseVar
	}

	if v == 0 || (grad < 0 && rCloseVar == sealedValveResistance) {
		return grad / r
	}

	sign := -1.0
	if grad <= 0 {
		sign = 1.0
	}
	disc := math.Max(r*r+sign*4.0*v*grad, 0)
	return (sign*r + math.Sqrt(disc)) / (2.0 * v)
}
