package maze

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRunBatch_MatchesSequentialRuns(t *testing.T) {
	var trials []Trial
	for seed := int64(1); seed <= 24; seed++ {
		trials = append(trials, Trial{Seed: seed, World: DefaultGenerateOptions()})
	}

	got, err := RunBatch(context.Background(), trials, WithWorkers(4))
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}

	want := make([]TrialResult, len(trials))
	for i, trial := range trials {
		g := Generate(rand.New(rand.NewSource(trial.Seed)), trial.World)
		res, err := FindPath(context.Background(), g, g.Start(), g.Goal())
		if err != nil && !errors.Is(err, ErrPathNotFound) {
			t.Fatalf("seed %d: %v", trial.Seed, err)
		}
		want[i] = TrialResult{
			Seed:          trial.Seed,
			Found:         res.Found,
			TotalCost:     res.TotalCost,
			PathLength:    len(res.Path),
			ExpandedNodes: res.ExpandedNodes,
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("batch mismatch (-want +got):\n%s", diff)
	}
}

func TestRunBatch_UnreachableIsNotAnError(t *testing.T) {
	world := DefaultGenerateOptions()
	world.WallProbability = 1
	trials := []Trial{{Seed: 1, World: world}, {Seed: 2, World: world}}

	got, err := RunBatch(context.Background(), trials, WithWorkers(2))
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	for _, r := range got {
		if r.Found || r.PathLength != 0 || r.ExpandedNodes != 1 {
			t.Errorf("seed %d: %+v, want unreachable after expanding only the start", r.Seed, r)
		}
	}
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	trials := []Trial{{Seed: 1, World: DefaultGenerateOptions()}}
	if _, err := RunBatch(ctx, trials); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
