package optimize

import "math/rand/v2"

// newWorkerRand returns a fresh generator seeded from the package-level
// (already OS-entropy-seeded) default source. Each worker goroutine creates
// exactly one of these at start and draws every subsequent random value —
// seeding, tournament picks, crossover bits, mutation mask — from it. This
// is the single-seed-per-worker discipline the spec's Design Notes call for
// in place of reseeding a PRNG on every mutation/crossover/tournament call.
func newWorkerRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
