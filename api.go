package maze

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"
)

var (
	// ErrPathNotFound is the normal outcome of a search whose frontier ran
	// dry before reaching the goal.
	ErrPathNotFound = errors.New("no path found")
	// ErrSearchRunning is returned when asking for a path before the search ended.
	ErrSearchRunning = errors.New("search still running")
)

// Manhattan returns the 4-connected grid distance between a and b.
func Manhattan(a, b Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// Path is an ordered route from start to goal.
type Path []SearchNode

// Points returns the positions along the path.
func (p Path) Points() []Point {
	points := make([]Point, len(p))
	for i, n := range p {
		points[i] = n.Pos
	}
	return points
}

// TotalCost is the accumulated cost of the last node.
func (p Path) TotalCost() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].G
}

// Renderer observes a running search. Calls are synchronous and made from
// the goroutine driving the search.
type Renderer interface {
	// RenderStep shows the world with the current frontier and explored set.
	RenderStep(grid *Grid, snapshot StepSnapshot)
	// RenderPath highlights the final route.
	RenderPath(grid *Grid, path Path)
	// RenderMessage shows the outcome text.
	RenderMessage(message string)
}

type nopRenderer struct{}

func (nopRenderer) RenderStep(*Grid, StepSnapshot) {}
func (nopRenderer) RenderPath(*Grid, Path)         {}
func (nopRenderer) RenderMessage(string)           {}

// Result contains the outcome of a search
type Result struct {
	Path          Path
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Renderer        Renderer
	TickInterval    time.Duration
	Logger          *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many independent searches RunBatch runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithRenderer makes FindPath report every tick to renderer.
func WithRenderer(renderer Renderer) Option {
	return func(options *Options) { options.Renderer = renderer }
}

// WithTick paces FindPath to one step per interval. Zero runs unpaced.
func WithTick(interval time.Duration) Option {
	return func(options *Options) { options.TickInterval = interval }
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = defaultLogger()
	}
	return searchOptions
}

// FindPath searches grid from start to goal, one tick at a time, until the
// goal is reached or the frontier is exhausted. The latter returns
// ErrPathNotFound. Cancelling ctx abandons the search between two ticks.
func FindPath(
	contextObject context.Context,
	grid *Grid,
	startNode Point,
	goalNode Point,
	options ...Option,
) (Result, error) {
	searchOptions := buildOptions(options)
	stepper := NewStepper(grid, startNode, goalNode, options...)

	var frames <-chan time.Time
	if searchOptions.TickInterval > 0 {
		ticker := time.NewTicker(searchOptions.TickInterval)
		defer ticker.Stop()
		frames = ticker.C
	}

	for {
		if frames != nil {
			select {
			case <-contextObject.Done():
				return Result{}, contextObject.Err()
			case <-frames:
			}
		} else if err := contextObject.Err(); err != nil {
			return Result{}, err
		}

		if stepper.Tick(searchOptions.Renderer) != StepContinue {
			return stepper.Result()
		}
	}
}
