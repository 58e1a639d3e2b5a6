package circulation

import "math"

// elastance returns the normalized, time-varying chamber stiffness e(t) in
// [0,1], periodic with period cycle = 60000/HR ms.
func elastance(t, tmax, tau, hr float64) float64 {
	cycle := 60000.0 / hr
	tt := math.Mod(t, cycle)
	if tt < 0 {
		tt += cycle
	}
	base := math.Exp(-(cycle-1.5*tmax)/tau) / 2.0

	switch {
	case tt < tmax:
		return (math.Sin(math.Pi*tt/tmax-math.Pi/2.0)+1.0)/2.0*(1.0-base) + base
	case tt < 1.5*tmax:
		return math.Exp(-(tt-tmax)/tau)*(1.0-base) + base
	default:
		return base
	}
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// chamberPressure returns the instantaneous chamber pressure at volume V and
// time t, blending the passive end-diastolic exponential with the active
// end-systolic line via elastance.
func chamberPressure(vol, t, ees, v0, alpha, beta, tmax, tau, avDelay, hr float64) float64 {
	x := clamp(alpha*(vol-v0), -700, 700)
	ped := beta * (math.Exp(x) - 1.0)
	pes := ees * (vol - v0)
	return ped + elastance(t-avDelay, tmax, tau, hr)*(pes-ped)
}
