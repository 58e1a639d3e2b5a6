package optimize

import (
	"log/slog"
	"math/rand/v2"

	"github.com/g960059/circleheart/internal/params"
)

const (
	populationSize = 100
	numGenerations = 200
	eliteCount     = 1
	tournamentSize = 3
	mutationRateLo = 0.01
	mutationRateHi = 0.1
)

// mutationRateAt linearly anneals the mutation rate from mutationRateHi at
// generation 0 toward mutationRateLo: m(g) = hi - (hi-lo)*g/numGenerations,
// so the final generation (numGenerations-1) runs one anneal step above
// mutationRateLo.
func mutationRateAt(generation int) float64 {
	frac := float64(generation) / float64(numGenerations)
	return mutationRateHi - frac*(mutationRateHi-mutationRateLo)
}

// GenerationRecord captures one generation's fitness spread for a single
// restart, for progress reporting and telemetry.
type GenerationRecord struct {
	Restart    int     `csv:"restart"`
	Generation int     `csv:"generation"`
	Best       float64 `csv:"best"`
	Median     float64 `csv:"median"`
	Worst      float64 `csv:"worst"`
}

// LogValue implements slog.LogValuer for structured generation logging.
func (r GenerationRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("restart", r.Restart),
		slog.Int("generation", r.Generation),
		slog.Float64("best", r.Best),
		slog.Float64("median", r.Median),
		slog.Float64("worst", r.Worst),
	)
}

// progressFunc, when non-nil, is invoked once per generation per restart.
type progressFunc func(GenerationRecord)

// runSingle runs one complete island of the genetic algorithm: a seed
// population of populationSize random individuals evolved for
// numGenerations generations under tournament selection, uniform crossover,
// and annealed-rate mutation, with the top eliteCount individuals carried
// forward unchanged each generation. It returns the fittest individual found
// and its fitness.
func runSingle(restart int, template *params.ParameterSet, targets []Target, numWorkers int, onProgress progressFunc) (*params.ParameterSet, float64, error) {
	pop := make([]individual, populationSize)
	if err := parallelFor(populationSize, numWorkers, func(i0, i1 int, rng *rand.Rand) error {
		for i := i0; i < i1; i++ {
			ps := generateIndividual(template, rng)
			fitness, err := Evaluate(ps, targets)
			if err != nil {
				return err
			}
			pop[i] = individual{params: ps, fitness: fitness}
		}
		return nil
	}); err != nil {
		return nil, 0, err
	}
	sortPopulation(pop)

	for gen := 0; gen < numGenerations; gen++ {
		mutationRate := mutationRateAt(gen)
		next := make([]individual, populationSize)
		for e := 0; e < eliteCount; e++ {
			next[e] = pop[e]
		}

		if err := parallelFor(populationSize-eliteCount, numWorkers, func(i0, i1 int, rng *rand.Rand) error {
			for i := i0; i < i1; i++ {
				parent1 := tournamentSelect(pop, tournamentSize, rng)
				parent2 := tournamentSelect(pop, tournamentSize, rng)
				child := crossover(parent1, parent2, rng)
				mutate(child, mutationRate, rng)

				fitness, err := Evaluate(child, targets)
				if err != nil {
					return err
				}
				next[eliteCount+i] = individual{params: child, fitness: fitness}
			}
			return nil
		}); err != nil {
			return nil, 0, err
		}

		sortPopulation(next)
		pop = next

		if onProgress != nil {
			onProgress(GenerationRecord{
				Restart:    restart,
				Generation: gen,
				Best:       pop[0].fitness,
				Median:     pop[len(pop)/2].fitness,
				Worst:      pop[len(pop)-1].fitness,
			})
		}
	}

	return pop[0].params, pop[0].fitness, nil
}
