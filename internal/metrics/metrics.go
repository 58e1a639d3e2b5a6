// Package metrics reduces an integrated cardiovascular trajectory's last
// complete cardiac cycle to the small bag of named scalar measurements the
// optimizer's fitness function compares against clinician targets.
package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/g960059/circleheart/internal/circulation"
)

// Metric names, matching the external contract exactly.
const (
	StrokeVolume                    = "stroke_volume"
	CentralVenousPressure           = "central_venous_pressure"
	PulmonaryCapillaryWedgePressure = "pulmonary_capillary_wedge_pressure"
	SystolicArterialPressure        = "systolic_arterial_pressure"
	DiastolicArterialPressure       = "diastolic_arterial_pressure"
	SystolicPulmonaryArterialPressure  = "systolic_pulmonary_arterial_pressure"
	DiastolicPulmonaryArterialPressure = "diastolic_pulmonary_arterial_pressure"
	LeftVentricularEjectionFraction = "left_ventricular_ejection_fraction"
)

// ErrNoCycleWindow is returned when a trajectory contains no samples in the
// last-cycle window. Per spec this should never occur for a well-formed
// grid; treat it as a programmer error upstream.
var ErrNoCycleWindow = errors.New("metrics: no samples found in last-cycle window")

// Extract derives the eight clinical metrics from a trajectory's last
// complete cardiac cycle [t_end - 60000/HR, t_end].
func Extract(traj circulation.Trajectory, f circulation.Frame) (map[string]float64, error) {
	n := len(traj.T)
	endTime := traj.T[n-1]
	cycleDuration := 60000.0 / f.HR
	startTime := endTime - cycleDuration

	var indices []int
	for i, tt := range traj.T {
		if tt >= startTime && tt <= endTime {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil, ErrNoCycleWindow
	}

	dt := traj.T[1] - traj.T[0]

	var strokeVolume float64
	pra := make([]float64, 0, len(indices))
	pla := make([]float64, 0, len(indices))

	sap := math.Inf(-1)
	dap := math.Inf(1)
	spap := math.Inf(-1)
	dpap := math.Inf(1)
	lvedv := math.Inf(-1)
	lvesv := math.Inf(1)

	for _, i := range indices {
		out := circulation.DerivativesAt(traj.T[i], traj.Y[i], f)

		strokeVolume += math.Max(out.Iasp, 0) * dt
		pra = append(pra, out.Pra)
		pla = append(pla, out.Pla)

		aop := traj.Y[i][circulation.IdxQasProx]/f.CasProx + out.Iasp*f.RasProx
		sap = math.Max(sap, aop)
		dap = math.Min(dap, aop)

		pap := traj.Y[i][circulation.IdxQapProx]/f.CapProx + out.Iapp*f.RapProx
		spap = math.Max(spap, pap)
		dpap = math.Min(dpap, pap)

		qlv := traj.Y[i][circulation.IdxQlv]
		lvedv = math.Max(lvedv, qlv)
		lvesv = math.Min(lvesv, qlv)
	}

	return map[string]float64{
		StrokeVolume:                    strokeVolume,
		CentralVenousPressure:           stat.Mean(pra, nil),
		PulmonaryCapillaryWedgePressure: stat.Mean(pla, nil),
		SystolicArterialPressure:        sap,
		DiastolicArterialPressure:       dap,
		SystolicPulmonaryArterialPressure:  spap,
		DiastolicPulmonaryArterialPressure: dpap,
		LeftVentricularEjectionFraction: (lvedv - lvesv) / lvedv * 100.0,
	}, nil
}
