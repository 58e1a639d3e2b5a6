package circulation

// Outputs bundles the four chamber pressures and two systemic/pulmonary
// valve flows needed by the metrics extractor, alongside the state
// derivative itself.
type Outputs struct {
	Plv, Pla, Prv, Pra float64
	Iasp, Iapp         float64
}

// derivatives evaluates the full right-hand side of the ODE system at time
// t for the given state, returning both the state derivative and the
// pressures/valve-flows the metrics extractor needs.
func derivatives(t float64, y State, f Frame) (State, Outputs) {
	qvs, qas, qap, qvp := y[IdxQvs], y[IdxQas], y[IdxQap], y[IdxQvp]
	qlv, qla, qrv, qra := y[IdxQlv], y[IdxQla], y[IdxQrv], y[IdxQra]
	qasProx, qda, qapProx := y[IdxQasProx], y[IdxQda], y[IdxQapProx]

	plv := chamberPressure(qlv, t, f.LVEes, f.LVV0, f.LVAlpha, f.LVBeta, f.LVTmax, f.LVTau, f.LVAVDelay, f.HR)
	pla := chamberPressure(qla, t, f.LAEes, f.LAV0, f.LAAlpha, f.LABeta, f.LATmax, f.LATau, f.LAAVDelay, f.HR)
	prv := chamberPressure(qrv, t, f.RVEes, f.RVV0, f.RVAlpha, f.RVBeta, f.RVTmax, f.RVTau, f.RVAVDelay, f.HR)
	pra := chamberPressure(qra, t, f.RAEes, f.RAV0, f.RAAlpha, f.RABeta, f.RATmax, f.RATau, f.RAAVDelay, f.HR)

	ida := (qasProx/f.CasProx - qda/f.Cda) / f.Rda
	ias := (qda/f.Cda - qas/f.Cas) / f.Ras
	ics := (qas/f.Cas - qvs/f.Cvs) / f.Rcs
	ivs := (qvs/f.Cvs - pra) / f.Rvs

	ivp := (qvp/f.Cvp - pla) / f.Rvp
	iap := (qap/f.Cap - qvp/f.Cvp) / f.Rap
	icp := (qapProx/f.CapProx - qap/f.Cap) / f.Rcp

	itv := valveFlow(pra-prv, f.Rtv, f.Rtvs, f.Rtvr)
	imv := valveFlow(pla-plv, f.Rmv, f.Rmvs, f.Rmvr)
	iasp := valveFlow(plv-qasProx/f.CasProx, f.RasProx, f.Ravs, f.Ravr)
	iapp := valveFlow(prv-qapProx/f.CapProx, f.RapProx, f.Rpvs, f.Rpvr)

	var dy State
	dy[IdxQvs] = ics - ivs
	dy[IdxQas] = ias - ics
	dy[IdxQap] = icp - iap
	dy[IdxQvp] = iap - ivp
	dy[IdxQlv] = imv - iasp
	dy[IdxQla] = ivp - imv
	dy[IdxQrv] = itv - iapp
	dy[IdxQra] = ivs - itv
	dy[IdxQasProx] = iasp - ida
	dy[IdxQda] = ida - ias
	dy[IdxQapProx] = iapp - icp

	return dy, Outputs{Plv: plv, Pla: pla, Prv: prv, Pra: pra, Iasp: iasp, Iapp: iapp}
}
