package optimize

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/g960059/circleheart/internal/params"
)

// individual is a (ParameterSet, fitness) pair.
type individual struct {
	params  *params.ParameterSet
	fitness float64
}

// fitnessLess reports whether a should sort ahead of b under ascending
// fitness, treating NaN as strictly worse than any finite value (and equal
// to another NaN) so a blown-up evaluation sinks to the end of the
// population and never wins a tournament against a finite opponent.
func fitnessLess(a, b float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return false
	case aNaN:
		return false
	case bNaN:
		return true
	default:
		return a < b
	}
}

// sortPopulation orders pop ascending by fitness in place, NaN-last.
func sortPopulation(pop []individual) {
	sort.Slice(pop, func(i, j int) bool {
		return fitnessLess(pop[i].fitness, pop[j].fitness)
	})
}

// tournamentSelect samples size individuals uniformly with replacement and
// returns the fittest.
func tournamentSelect(pop []individual, size int, rng *rand.Rand) *params.ParameterSet {
	best := pop[rng.IntN(len(pop))]
	for i := 1; i < size; i++ {
		candidate := pop[rng.IntN(len(pop))]
		if fitnessLess(candidate.fitness, best.fitness) {
			best = candidate
		}
	}
	return best.params
}

// generateIndividual clones template and resamples every fitting-enabled
// parameter uniformly from its [lo, hi] range; non-fitting parameters keep
// the template's (default) value.
func generateIndividual(template *params.ParameterSet, rng *rand.Rand) *params.ParameterSet {
	ps := template.Clone()
	for _, name := range ps.FittingNames() {
		p, _ := ps.Get(name)
		ps.SetValue(name, p.Lo+rng.Float64()*(p.Hi-p.Lo))
	}
	return ps
}

// crossover performs uniform crossover: starting from a clone of parent1,
// each fitting-enabled parameter independently has a 50% chance of being
// overwritten with parent2's value.
func crossover(parent1, parent2 *params.ParameterSet, rng *rand.Rand) *params.ParameterSet {
	child := parent1.Clone()
	for _, name := range child.FittingNames() {
		if rng.Float64() < 0.5 {
			child.SetValue(name, parent2.Value(name))
		}
	}
	return child
}

// mutate resamples each fitting-enabled parameter of individual uniformly
// from its [lo, hi] range, independently, with probability mutationRate.
func mutate(ind *params.ParameterSet, mutationRate float64, rng *rand.Rand) {
	for _, name := range ind.FittingNames() {
		if rng.Float64() < mutationRate {
			p, _ := ind.Get(name)
			ind.SetValue(name, p.Lo+rng.Float64()*(p.Hi-p.Lo))
		}
	}
}
