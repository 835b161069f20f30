package maze

import (
	"context"
	"errors"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Trial is one independent generate-and-search run.
type Trial struct {
	Seed  int64
	World GenerateOptions
}

// TrialResult is what a worker reports back for a Trial.
type TrialResult struct {
	Seed          int64
	Found         bool
	TotalCost     float64
	PathLength    int
	ExpandedNodes int
}

// RunBatch runs every trial on a pool of WithWorkers goroutines. Each trial
// owns its grid and stepper; nothing is shared between them. Results keep
// the order of trials. Unreachable goals are ordinary results, not errors.
func RunBatch(contextObject context.Context, trials []Trial, options ...Option) ([]TrialResult, error) {
	searchOptions := buildOptions(options)
	results := make([]TrialResult, len(trials))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, trial := range trials {
		group.Go(func() error {
			result, err := runTrial(groupContext, trial, searchOptions)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runTrial(contextObject context.Context, trial Trial, searchOptions Options) (TrialResult, error) {
	grid := Generate(rand.New(rand.NewSource(trial.Seed)), trial.World)
	result, err := FindPath(contextObject, grid, grid.Start(), grid.Goal(), WithLogger(searchOptions.Logger))
	if err != nil && !errors.Is(err, ErrPathNotFound) {
		return TrialResult{}, err
	}
	return TrialResult{
		Seed:          trial.Seed,
		Found:         result.Found,
		TotalCost:     result.TotalCost,
		PathLength:    len(result.Path),
		ExpandedNodes: result.ExpandedNodes,
	}, nil
}
