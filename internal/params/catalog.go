package params

// catalogEntry is the static definition of one catalog parameter.
type catalogEntry struct {
	name    string
	def     float64
	lo      float64
	hi      float64
	fitting bool
}

// catalog is the fixed parameter set from the external interface contract.
// Fitting-enabled (tunable) parameters are listed first, then the fixed
// (non-fitting) ones; order here becomes ParameterSet's iteration order.
var catalog = []catalogEntry{
	// --- Fitting-enabled (tunable) ---
	{"Rcs", 830, 400, 1000, true},
	{"Rcp", 10, 5, 150, true},
	{"Ras", 20, 10, 450, true},
	{"Rvs", 25, 15, 60, true},
	{"Rap", 13, 6, 50, true},
	{"Rvp", 15, 5, 30, true},
	{"Cas", 1.83, 0.5, 4, true},
	{"Cvs", 70, 50, 250, true},
	{"Cap", 20, 2, 30, true},
	{"Cvp", 7, 5, 15, true},
	{"LV_Ees", 2.21, 1, 3, true},
	{"LV_alpha", 0.029, 0.02, 0.04, true},
	{"LV_beta", 0.34, 0.18, 0.4, true},
	{"LA_Ees", 0.48, 0.2, 0.7, true},
	{"LA_alpha", 0.058, 0.04, 0.07, true},
	{"LA_beta", 0.44, 0.3, 0.6, true},
	{"RV_Ees", 0.74, 0.5, 1.5, true},
	{"RV_alpha", 0.028, 0.01, 0.035, true},
	{"RV_beta", 0.34, 0.15, 0.5, true},
	{"RA_Ees", 0.38, 0.2, 0.6, true},
	{"RA_alpha", 0.046, 0.03, 0.07, true},
	{"RA_beta", 0.44, 0.3, 0.5, true},
	{"Qvs_initial", 749.9843, 200, 6000, true},
	{"Ras_prox", 30, 10, 100, true},
	{"Rap_prox", 15, 5, 50, true},
	{"LV_V0", 5, 1, 50, true},
	{"LA_V0", 10, 5, 20, true},
	{"RV_V0", 5, 2, 30, true},
	{"RA_V0", 10, 3, 30, true},

	// --- Fixed (non-fitting); value == both bounds ---
	{"Rmv", 2.5, 2.5, 2.5, false},
	{"Rtv", 2.5, 2.5, 2.5, false},
	{"Cas_prox", 0.54, 0.54, 0.54, false},
	{"Cap_prox", 1.0, 1.0, 1.0, false},
	{"LV_Tmax", 300, 300, 300, false},
	{"LV_tau", 25, 25, 25, false},
	{"LV_AV_delay", 160, 160, 160, false},
	{"LA_Tmax", 125, 125, 125, false},
	{"LA_tau", 20, 20, 20, false},
	{"LA_AV_delay", 0, 0, 0, false},
	{"RV_Tmax", 300, 300, 300, false},
	{"RV_tau", 25, 25, 25, false},
	{"RV_AV_delay", 160, 160, 160, false},
	{"RA_Tmax", 125, 125, 125, false},
	{"RA_tau", 20, 20, 20, false},
	{"RA_AV_delay", 0, 0, 0, false},
	{"HR", 90, 90, 90, false},
	{"Ravs", 0, 0, 0, false},
	{"Ravr", 100000, 100000, 100000, false},
	{"Rmvs", 0, 0, 0, false},
	{"Rmvr", 100000, 100000, 100000, false},
	{"Rpvs", 0, 0, 0, false},
	{"Rpvr", 100000, 100000, 100000, false},
	{"Rtvs", 0, 0, 0, false},
	{"Rtvr", 100000, 100000, 100000, false},
	{"Rda", 3, 3, 3, false},
	{"Cda", 0.52, 0.52, 0.52, false},
}
