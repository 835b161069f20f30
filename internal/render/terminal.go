// Package render holds maze.Renderer implementations that do not need a window.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdrpinto/maze"
)

const clearScreen = "\x1b[H\x1b[2J"

var (
	closedColors = text.Colors{text.BgRed}
	openColors   = text.Colors{text.BgGreen}
	wallColors   = text.Colors{text.FgHiRed, text.Bold}
	costlyColors = text.Colors{text.FgYellow}
	routeColors  = text.Colors{text.FgHiWhite, text.Bold}
)

// Terminal draws the world as text, two columns per cell.
type Terminal struct {
	out     io.Writer
	animate bool
	color   bool
}

// NewTerminal writes to out. With animate every tick redraws the screen;
// otherwise only the final route and message are printed.
func NewTerminal(out io.Writer, animate, color bool) *Terminal {
	return &Terminal{out: out, animate: animate, color: color}
}

func (t *Terminal) RenderStep(grid *maze.Grid, snapshot maze.StepSnapshot) {
	if !t.animate {
		return
	}
	fmt.Fprint(t.out, clearScreen+Frame(grid, snapshot.Open, snapshot.Closed, snapshot.Trail, t.color))
}

func (t *Terminal) RenderPath(grid *maze.Grid, path maze.Path) {
	if t.animate {
		fmt.Fprint(t.out, clearScreen)
	}
	fmt.Fprint(t.out, Frame(grid, nil, nil, path.Points(), t.color))
}

func (t *Terminal) RenderMessage(message string) {
	fmt.Fprintln(t.out, message)
}

// Frame renders one picture of the search. Explored cells are painted
// first, frontier cells over them, terrain and the route on top.
func Frame(grid *maze.Grid, open, closed []maze.SearchNode, route []maze.Point, color bool) string {
	layer := make(map[maze.Point]text.Colors, len(open)+len(closed))
	for _, n := range closed {
		layer[n.Pos] = closedColors
	}
	for _, n := range open {
		layer[n.Pos] = openColors
	}
	onRoute := make(map[maze.Point]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}

	var b strings.Builder
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			cell, fg := cellGlyph(grid.At(p), onRoute[p])
			if !color {
				b.WriteString(plainGlyph(cell, layer[p]))
				continue
			}
			colors := append(text.Colors{}, layer[p]...)
			colors = append(colors, fg...)
			if len(colors) == 0 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(colors.Sprint(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellGlyph(t maze.Terrain, route bool) (string, text.Colors) {
	switch {
	case route:
		return "**", routeColors
	case t == maze.Blocked:
		return "##", wallColors
	case t == maze.Costly:
		return "oo", costlyColors
	default:
		return "  ", nil
	}
}

// plainGlyph marks explored and frontier cells without colours.
func plainGlyph(cell string, layer text.Colors) string {
	if cell != "  " || layer == nil {
		return cell
	}
	if layer[0] == openColors[0] {
		return "++"
	}
	return ".."
}
