package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Terrain is the content of a single grid cell.
type Terrain uint8

const (
	Free    Terrain = iota // passable, no extra cost
	Costly                 // passable, costs the grid's extra cost on entry
	Blocked                // impassable
)

func (t Terrain) String() string {
	switch t {
	case Free:
		return "free"
	case Costly:
		return "costly"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
}

// Glyphs used by ParseGrid and Grid.String.
const (
	GlyphFree    = '.'
	GlyphCostly  = 'o'
	GlyphBlocked = '#'
)

// Point is a cell coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is an immutable rectangular world.
type Grid struct {
	width     int
	height    int
	cells     []Terrain
	extraCost float64
}

// NewGrid copies cells (row-major, width*height long) into a new Grid.
func NewGrid(width, height int, cells []Terrain, extraCost float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("grid %dx%d needs %d cells, got %d", width, height, width*height, len(cells))
	}
	owned := make([]Terrain, len(cells))
	copy(owned, cells)
	return &Grid{width: width, height: height, cells: owned, extraCost: extraCost}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// ExtraCost is the entry cost of a Costly cell.
func (g *Grid) ExtraCost() float64 { return g.extraCost }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the terrain at p. Out-of-bounds points are Blocked.
func (g *Grid) At(p Point) Terrain {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.cells[p.Y*g.width+p.X]
}

// TerrainCost is the cost of entering p on top of the unit step.
func (g *Grid) TerrainCost(p Point) float64 {
	if g.At(p) == Costly {
		return g.extraCost
	}
	return 0
}

// Start is the conventional start cell, one step in from the top-left corner.
func (g *Grid) Start() Point { return Point{X: 1, Y: 1} }

// Goal is the conventional goal cell, one step in from the bottom-right corner.
func (g *Grid) Goal() Point { return Point{X: g.width - 2, Y: g.height - 2} }

// String renders the grid with one glyph per cell and one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteByte(glyphOf(g.cells[y*g.width+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyphOf(t Terrain) byte {
	switch t {
	case Costly:
		return GlyphCostly
	case Blocked:
		return GlyphBlocked
	default:
		return GlyphFree
	}
}

var errEmptyGrid = errors.New("empty grid")

// ParseGrid reads a grid written with GlyphFree, GlyphCostly and
// GlyphBlocked, one row per line. Blank lines are ignored.
func ParseGrid(text string, extraCost float64) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r \t")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, errEmptyGrid
	}

	width := len(rows[0])
	cells := make([]Terrain, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case GlyphFree:
				cells = append(cells, Free)
			case GlyphCostly:
				cells = append(cells, Costly)
			case GlyphBlocked:
				cells = append(cells, Blocked)
			default:
				return nil, fmt.Errorf("unknown cell %q at %v", row[x], Point{X: x, Y: y})
			}
		}
	}
	return NewGrid(width, len(rows), cells, extraCost)
}
