package maze

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFindPath_PathsAreWalkable(t *testing.T) {
	found := 0
	for seed := int64(1); seed <= 100; seed++ {
		g := Generate(rand.New(rand.NewSource(seed)), DefaultGenerateOptions())
		res, err := FindPath(context.Background(), g, g.Start(), g.Goal())
		if errors.Is(err, ErrPathNotFound) {
			if res.Found {
				t.Fatalf("seed %d: Found set alongside ErrPathNotFound", seed)
			}
			continue
		}
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		found++

		points := res.Path.Points()
		if points[0] != g.Start() || points[len(points)-1] != g.Goal() {
			t.Fatalf("seed %d: path runs %v -> %v", seed, points[0], points[len(points)-1])
		}
		cost := 0.0
		for i := 1; i < len(points); i++ {
			if Manhattan(points[i-1], points[i]) != 1 {
				t.Fatalf("seed %d: %v and %v are not adjacent", seed, points[i-1], points[i])
			}
			if g.At(points[i]) == Blocked {
				t.Fatalf("seed %d: path crosses wall at %v", seed, points[i])
			}
			cost += 1 + g.TerrainCost(points[i])
			if res.Path[i].G != cost {
				t.Fatalf("seed %d: g at %v = %v, want %v", seed, points[i], res.Path[i].G, cost)
			}
		}
		if res.TotalCost != cost {
			t.Fatalf("seed %d: TotalCost = %v, want %v", seed, res.TotalCost, cost)
		}
	}
	if found == 0 {
		t.Fatal("no seed produced a reachable goal")
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	g := Generate(rand.New(rand.NewSource(42)), DefaultGenerateOptions())

	first, err1 := FindPath(context.Background(), g, g.Start(), g.Goal())
	second, err2 := FindPath(context.Background(), g, g.Start(), g.Goal())

	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("errors differ: %v vs %v", err1, err2)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}

func TestFindPath_StartIsGoal(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Width, opts.Height = 3, 3
	g := Generate(rand.New(rand.NewSource(3)), opts)

	res, err := FindPath(context.Background(), g, g.Start(), g.Goal())
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(res.Path) != 1 || res.TotalCost != 0 || !res.Found {
		t.Errorf("result = %+v, want a single node at cost 0", res)
	}
}

func TestFindPath_NotFound(t *testing.T) {
	g := mustParse(t, "#####\n#..##\n#.#.#\n#####")
	res, err := FindPath(context.Background(), g, g.Start(), g.Goal())
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("err = %v, want ErrPathNotFound", err)
	}
	if res.Found || res.ExpandedNodes != 3 {
		t.Errorf("result = %+v, want not found with 3 explored nodes", res)
	}
}

func TestFindPath_Cancelled(t *testing.T) {
	g := mustParse(t, "#####\n#...#\n#####")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := FindPath(ctx, g, g.Start(), g.Goal()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if _, err := FindPath(ctx, g, g.Start(), g.Goal(), WithTick(time.Hour)); !errors.Is(err, context.Canceled) {
		t.Errorf("paced err = %v, want context.Canceled", err)
	}
}

func TestFindPath_RendererAndTick(t *testing.T) {
	g := mustParse(t, "#####\n#.o.#\n#####")
	r := &recordingRenderer{}

	res, err := FindPath(context.Background(), g, g.Start(), g.Goal(),
		WithRenderer(r), WithTick(time.Millisecond))
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if res.TotalCost != 7 {
		t.Errorf("TotalCost = %v, want 7", res.TotalCost)
	}
	if len(r.steps) != 3 {
		t.Errorf("rendered %d steps, want 3", len(r.steps))
	}
	if diff := cmp.Diff([]string{"Total Cost: 7"}, r.messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestManhattan(t *testing.T) {
	if got := Manhattan(Point{X: 1, Y: 1}, Point{X: 4, Y: -3}); got != 7 {
		t.Errorf("Manhattan = %v, want 7", got)
	}
}
