package circulation

import "github.com/g960059/circleheart/internal/params"

// Frame is the flattened set of parameter values the derivative function
// reads on every RK4 stage. Building it once per evaluation — instead of
// looking a parameter up by name on every call, thousands of times per
// integration — keeps the hot loop free of map lookups and string hashing
// (see spec Design Notes, "Parameter access in the inner loop").
type Frame struct {
	HR float64

	LVEes, LVV0, LVAlpha, LVBeta, LVTmax, LVTau, LVAVDelay float64
	LAEes, LAV0, LAAlpha, LABeta, LATmax, LATau, LAAVDelay float64
	RVEes, RVV0, RVAlpha, RVBeta, RVTmax, RVTau, RVAVDelay float64
	RAEes, RAV0, RAAlpha, RABeta, RATmax, RATau, RAAVDelay float64

	Rcs, Rcp, Ras, Rvs, Rap, Rvp       float64
	Cas, Cvs, Cap, Cvp, CasProx, CapProx float64
	RasProx, RapProx                  float64
	Rda, Cda                          float64

	Rtv, Rtvs, Rtvr float64
	Rmv, Rmvs, Rmvr float64
	Ravs, Ravr      float64
	Rpvs, Rpvr      float64
}

// NewFrame resolves every parameter the simulator needs, once, from a
// ParameterSet.
func NewFrame(ps *params.ParameterSet) Frame {
	v := ps.Value
	return Frame{
		HR: v("HR"),

		LVEes: v("LV_Ees"), LVV0: v("LV_V0"), LVAlpha: v("LV_alpha"), LVBeta: v("LV_beta"),
		LVTmax: v("LV_Tmax"), LVTau: v("LV_tau"), LVAVDelay: v("LV_AV_delay"),

		LAEes: v("LA_Ees"), LAV0: v("LA_V0"), LAAlpha: v("LA_alpha"), LABeta: v("LA_beta"),
		LATmax: v("LA_Tmax"), LATau: v("LA_tau"), LAAVDelay: v("LA_AV_delay"),

		RVEes: v("RV_Ees"), RVV0: v("RV_V0"), RVAlpha: v("RV_alpha"), RVBeta: v("RV_beta"),
		RVTmax: v("RV_Tmax"), RVTau: v("RV_tau"), RVAVDelay: v("RV_AV_delay"),

		RAEes: v("RA_Ees"), RAV0: v("RA_V0"), RAAlpha: v("RA_alpha"), RABeta: v("RA_beta"),
		RATmax: v("RA_Tmax"), RATau: v("RA_tau"), RAAVDelay: v("RA_AV_delay"),

		Rcs: v("Rcs"), Rcp: v("Rcp"), Ras: v("Ras"), Rvs: v("Rvs"), Rap: v("Rap"), Rvp: v("Rvp"),
		Cas: v("Cas"), Cvs: v("Cvs"), Cap: v("Cap"), Cvp: v("Cvp"),
		CasProx: v("Cas_prox"), CapProx: v("Cap_prox"),
		RasProx: v("Ras_prox"), RapProx: v("Rap_prox"),
		Rda: v("Rda"), Cda: v("Cda"),

		Rtv: v("Rtv"), Rtvs: v("Rtvs"), Rtvr: v("Rtvr"),
		Rmv: v("Rmv"), Rmvs: v("Rmvs"), Rmvr: v("Rmvr"),
		Ravs: v("Ravs"), Ravr: v("Ravr"),
		Rpvs: v("Rpvs"), Rpvr: v("Rpvr"),
	}
}
