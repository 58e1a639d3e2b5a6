package optimize

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/g960059/circleheart/internal/params"
)

// ParamOverride carries a partial update for one named parameter, mirroring
// params.ParameterSet.Update's nil-means-unchanged field semantics.
type ParamOverride struct {
	Value   *float64
	Lo      *float64
	Hi      *float64
	Fitting *bool
}

// Option configures a RunOptimization call.
type Option func(*runConfig)

type runConfig struct {
	onProgress progressFunc
}

// WithProgress registers a callback invoked once per generation per restart.
// Callbacks from different restarts may arrive concurrently from different
// goroutines.
func WithProgress(fn func(GenerationRecord)) Option {
	return func(c *runConfig) { c.onProgress = fn }
}

// restartOutcome is the result of one island, reported back to the
// orchestrator goroutine.
type restartOutcome struct {
	params  *params.ParameterSet
	fitness float64
	err     error
}

// RunOptimization runs numRepeats independent genetic-algorithm islands in
// parallel, each seeded from a template ParameterSet built from the catalog
// defaults and overrides, and returns the fittest result across all islands
// that completed without error.
//
// CPU budget is split two ways: numRepeats restarts run concurrently, and
// each restart's own population/offspring evaluation fans out across
// workersPerRestart = runtime.NumCPU()/numRepeats goroutines (at least one),
// so the total worker count stays within runtime.NumCPU() as long as
// numRepeats does not exceed it.
func RunOptimization(targets []Target, overrides map[string]ParamOverride, numRepeats int, opts ...Option) (*params.ParameterSet, float64, error) {
	if numRepeats <= 0 {
		return nil, 0, fmt.Errorf("%w: numRepeats must be positive, got %d", ErrInvalidConfig, numRepeats)
	}

	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	template := params.New()
	for name, o := range overrides {
		template.Update(name, o.Value, o.Lo, o.Hi, o.Fitting)
	}

	workersPerRestart := runtime.NumCPU() / numRepeats
	if workersPerRestart < 1 {
		workersPerRestart = 1
	}

	outcomes := make([]restartOutcome, numRepeats)
	var wg sync.WaitGroup
	for r := 0; r < numRepeats; r++ {
		wg.Add(1)
		go func(restart int) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					outcomes[restart] = restartOutcome{err: fmt.Errorf("%w: restart %d panicked: %v", ErrInternal, restart, rec)}
				}
			}()
			ps, fitness, err := runSingle(restart, template, targets, workersPerRestart, cfg.onProgress)
			outcomes[restart] = restartOutcome{params: ps, fitness: fitness, err: err}
		}(r)
	}
	wg.Wait()

	bestFitness := math.Inf(1)
	var best *params.ParameterSet
	for _, o := range outcomes {
		if o.err != nil || o.params == nil {
			continue
		}
		if fitnessLess(o.fitness, bestFitness) {
			bestFitness = o.fitness
			best = o.params
		}
	}

	if best == nil {
		return nil, 0, ErrAllRestartsFailed
	}
	return best, bestFitness, nil
}
