package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdrpinto/maze"
)

const corridor = "#####\n#...#\n#####"

func parse(t *testing.T, s string) *maze.Grid {
	t.Helper()
	g, err := maze.ParseGrid(s, 5)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestFrame_Plain(t *testing.T) {
	g := parse(t, "#####\n#.o.#\n#####")
	s := maze.NewStepper(g, g.Start(), g.Goal())
	s.Step()
	snap := s.Snapshot()

	got := Frame(g, snap.Open, snap.Closed, nil, false)
	want := "##########\n##..oo++##\n##########\n"
	if got != want {
		t.Errorf("Frame =\n%q\nwant\n%q", got, want)
	}
}

func TestFrame_Route(t *testing.T) {
	g := parse(t, corridor)
	got := Frame(g, nil, nil, []maze.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}, false)
	want := "##########\n##****  ##\n##########\n"
	if got != want {
		t.Errorf("Frame =\n%q\nwant\n%q", got, want)
	}
}

func TestFrame_ColorAddsEscapes(t *testing.T) {
	g := parse(t, corridor)
	got := Frame(g, nil, nil, nil, true)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("coloured frame has no escape codes: %q", got)
	}
}

func TestTerminal_FinalOnly(t *testing.T) {
	g := parse(t, corridor)
	var buf bytes.Buffer
	r := NewTerminal(&buf, false, false)

	s := maze.NewStepper(g, g.Start(), g.Goal())
	for s.Tick(r) == maze.StepContinue {
	}

	want := "##########\n##******##\n##########\nTotal Cost: 2\n"
	if buf.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestTerminal_AnimateClearsEachFrame(t *testing.T) {
	g := parse(t, corridor)
	var buf bytes.Buffer
	r := NewTerminal(&buf, true, false)

	s := maze.NewStepper(g, g.Start(), g.Goal())
	for s.Tick(r) == maze.StepContinue {
	}

	// three step frames and the final route
	if n := strings.Count(buf.String(), clearScreen); n != 4 {
		t.Errorf("screen cleared %d times, want 4", n)
	}
}

type countingRenderer struct{ steps, paths, messages int }

func (c *countingRenderer) RenderStep(*maze.Grid, maze.StepSnapshot) { c.steps++ }
func (c *countingRenderer) RenderPath(*maze.Grid, maze.Path)         { c.paths++ }
func (c *countingRenderer) RenderMessage(string)                     { c.messages++ }

func TestTee(t *testing.T) {
	g := parse(t, corridor)
	a, b := &countingRenderer{}, &countingRenderer{}
	s := maze.NewStepper(g, g.Start(), g.Goal())
	r := Tee(a, b)
	for s.Tick(r) == maze.StepContinue {
	}
	for _, c := range []*countingRenderer{a, b} {
		if c.steps != 3 || c.paths != 1 || c.messages != 1 {
			t.Errorf("counts = %+v, want 3 steps, 1 path, 1 message", *c)
		}
	}
}
