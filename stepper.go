package maze

import (
	"fmt"
	"log/slog"

	"github.com/pdrpinto/maze/internal"
	"github.com/pdrpinto/maze/internal/logging"
)

// State is the lifecycle stage of a Stepper.
type State int

const (
	Initialized State = iota
	Expanding
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Expanding:
		return "expanding"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StepResult is the outcome of a single Step.
type StepResult int

const (
	StepContinue StepResult = iota
	StepSucceeded
	StepFailed
)

func (r StepResult) String() string {
	switch r {
	case StepContinue:
		return "continue"
	case StepSucceeded:
		return "succeeded"
	case StepFailed:
		return "failed"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   SearchNode
	Open      []SearchNode // frontier, in extraction order
	Closed    []SearchNode // explored, in expansion order
	Trail     []Point      // start to Current
	State     State
	StepIndex int
}

// neighborOffsets are the unit Manhattan moves, in the order they are tried.
// The order decides which of several equal-cost nodes is discovered first.
var neighborOffsets = [4]Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: 0}}

// Stepper runs the search one expansion per Step so a UI can observe
// every intermediate state. It is not safe for concurrent use.
type Stepper struct {
	grid  *Grid
	start Point
	goal  Point
	log   *slog.Logger

	arena    nodeArena
	frontier *Frontier
	explored *Explored
	current  SearchNode

	state     State
	stepCount int
	reported  bool
}

// NewStepper places the start node in the explored set, queues its
// neighbours and leaves the stepper in the Expanding state.
func NewStepper(grid *Grid, start, goal Point, options ...Option) *Stepper {
	opts := buildOptions(options)

	s := &Stepper{
		grid:     grid,
		start:    start,
		goal:     goal,
		log:      opts.Logger,
		frontier: NewFrontier(),
		explored: NewExplored(),
		state:    Initialized,
	}

	s.current = s.arena.add(NoParent, start, 0, 0)
	s.explored.Add(s.current)
	s.expand(s.current)
	s.state = Expanding
	return s
}

// Step advances the search by at most one node expansion.
// Once the search is over every call returns the final result again.
func (s *Stepper) Step() StepResult {
	switch s.state {
	case Succeeded:
		return StepSucceeded
	case Failed:
		return StepFailed
	}

	if s.current.IsAtPosition(s.goal) {
		s.finish(Succeeded)
		return StepSucceeded
	}
	if s.frontier.Len() == 0 {
		s.finish(Failed)
		return StepFailed
	}

	s.stepCount++
	s.current = s.frontier.PopBest()
	s.explored.Add(s.current)
	s.expand(s.current)
	return StepContinue
}

// Tick is one frame of a rendered search: r sees the state before the
// step, and the path and result message once the search ends. The end is
// reported a single time. A nil r is allowed.
func (s *Stepper) Tick(r Renderer) StepResult {
	if r == nil {
		r = nopRenderer{}
	}
	if s.state == Expanding {
		r.RenderStep(s.grid, s.Snapshot())
	}

	result := s.Step()
	if result == StepContinue || s.reported {
		return result
	}
	s.reported = true

	path, err := s.Path()
	if err != nil {
		r.RenderMessage(err.Error())
		return result
	}
	r.RenderPath(s.grid, path)
	r.RenderMessage(fmt.Sprintf("Total Cost: %g", path.TotalCost()))
	return result
}

func (s *Stepper) State() State { return s.state }

func (s *Stepper) Grid() *Grid { return s.grid }

// Path returns the discovered path once the search succeeded.
func (s *Stepper) Path() (Path, error) {
	switch s.state {
	case Succeeded:
		return s.trace(s.current.ID), nil
	case Failed:
		return nil, ErrPathNotFound
	default:
		return nil, ErrSearchRunning
	}
}

// Result summarises a finished search.
func (s *Stepper) Result() (Result, error) {
	path, err := s.Path()
	if err != nil {
		return Result{ExpandedNodes: s.explored.Len()}, err
	}
	return Result{
		Path:          path,
		TotalCost:     path.TotalCost(),
		ExpandedNodes: s.explored.Len(),
		Found:         true,
	}, nil
}

// Snapshot copies the current state of the search.
func (s *Stepper) Snapshot() StepSnapshot {
	return StepSnapshot{
		Current:   s.current,
		Open:      s.frontier.Nodes(),
		Closed:    s.explored.Nodes(),
		Trail:     s.trace(s.current.ID).Points(),
		State:     s.state,
		StepIndex: s.stepCount,
	}
}

// expand queues every passable, undiscovered orthogonal neighbour of from.
// Positions already in the frontier or explored set are skipped outright:
// costs are never relaxed.
func (s *Stepper) expand(from SearchNode) {
	for _, offset := range neighborOffsets {
		next := Point{X: from.Pos.X + offset.X, Y: from.Pos.Y + offset.Y}
		if !s.grid.InBounds(next) || s.grid.At(next) == Blocked {
			continue
		}
		if s.frontier.Contains(next) || s.explored.Contains(next) {
			continue
		}
		g := from.G + 1 + s.grid.TerrainCost(next)
		s.frontier.Push(s.arena.add(from.ID, next, g, Manhattan(next, s.goal)))
	}
}

func (s *Stepper) trace(id NodeID) Path {
	ids := internal.ReconstructPath(id, NoParent, s.arena.parentOf)
	path := make(Path, len(ids))
	for i, nodeID := range ids {
		path[i] = s.arena.get(nodeID)
	}
	return path
}

func (s *Stepper) finish(state State) {
	s.state = state
	s.log.Debug("search finished",
		slog.String("state", state.String()),
		slog.Int("steps", s.stepCount),
		slog.Int("explored", s.explored.Len()),
		slog.Int("frontier", s.frontier.Len()),
		slog.Float64("cost", s.current.G),
	)
}

func defaultLogger() *slog.Logger { return logging.New("pathfinder") }
