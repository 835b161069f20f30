package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/pdrpinto/maze"
)

// DefaultCellSize is the pixel size of one grid cell.
const DefaultCellSize = 32

const statusHeight = 24

// Picture remembers the last frame of a search and draws it as a PNG.
type Picture struct {
	cell     int
	grid     *maze.Grid
	snapshot maze.StepSnapshot
	route    []maze.Point
	message  string
}

func NewPicture(cellSize int) *Picture {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Picture{cell: cellSize}
}

func (p *Picture) RenderStep(grid *maze.Grid, snapshot maze.StepSnapshot) {
	p.grid = grid
	p.snapshot = snapshot
	p.route = snapshot.Trail
}

// RenderPath keeps the explored area of the last step under the route.
func (p *Picture) RenderPath(grid *maze.Grid, path maze.Path) {
	p.grid = grid
	p.route = path.Points()
}

func (p *Picture) RenderMessage(message string) { p.message = message }

// Image draws the remembered frame.
func (p *Picture) Image() (image.Image, error) {
	dc, err := p.draw()
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (p *Picture) Encode(w io.Writer) error {
	dc, err := p.draw()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func (p *Picture) WriteFile(name string) error {
	dc, err := p.draw()
	if err != nil {
		return err
	}
	if err := dc.SavePNG(name); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func (p *Picture) draw() (*gg.Context, error) {
	if p.grid == nil {
		return nil, fmt.Errorf("nothing rendered yet")
	}
	size := float64(p.cell)
	w, h := p.grid.Width()*p.cell, p.grid.Height()*p.cell
	dc := gg.NewContext(w, h+statusHeight)
	dc.SetHexColor("#111")
	dc.Clear()

	fillCells(dc, p.snapshot.Closed, "#400", size)
	fillCells(dc, p.snapshot.Open, "#040", size)

	for y := 0; y < p.grid.Height(); y++ {
		for x := 0; x < p.grid.Width(); x++ {
			px, py := float64(x)*size, float64(y)*size
			switch p.grid.At(maze.Point{X: x, Y: y}) {
			case maze.Blocked:
				dc.SetHexColor("#c24")
				dc.DrawRoundedRectangle(px+2, py+2, size-4, size-4, size/8)
				dc.Fill()
			case maze.Costly:
				dc.SetHexColor("#654")
				dc.DrawCircle(px+size/2, py+size/2, size/3)
				dc.Fill()
			}
		}
	}

	if len(p.route) > 0 {
		dc.SetRGBA(1, 1, 1, 0.45)
		dc.SetLineWidth(size * 3 / 8)
		dc.SetLineCapRound()
		dc.SetLineJoinRound()
		for i, pt := range p.route {
			cx, cy := (float64(pt.X)+0.5)*size, (float64(pt.Y)+0.5)*size
			if i == 0 {
				dc.MoveTo(cx, cy)
			} else {
				dc.LineTo(cx, cy)
			}
		}
		dc.Stroke()
	}

	if p.message != "" {
		dc.SetHexColor("#eee")
		dc.DrawStringAnchored(p.message, 8, float64(h)+statusHeight/2, 0, 0.5)
	}
	return dc, nil
}

func fillCells(dc *gg.Context, nodes []maze.SearchNode, hex string, size float64) {
	if len(nodes) == 0 {
		return
	}
	dc.SetHexColor(hex)
	for _, n := range nodes {
		dc.DrawRectangle(float64(n.Pos.X)*size, float64(n.Pos.Y)*size, size, size)
	}
	dc.Fill()
}
