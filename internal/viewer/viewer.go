// Package viewer animates searches in a window, one step per frame.
// Clicking after a search ended starts a new one on a fresh world.
package viewer

import (
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pdrpinto/maze"
	"github.com/pdrpinto/maze/internal/logging"
)

const (
	cellSize     = 32
	statusHeight = 24
)

var (
	backgroundColor = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	closedColor     = color.RGBA{R: 0x44, A: 0xff}
	openColor       = color.RGBA{G: 0x44, A: 0xff}
	wallColor       = color.RGBA{R: 0xcc, G: 0x22, B: 0x44, A: 0xff}
	costlyColor     = color.RGBA{R: 0x66, G: 0x55, B: 0x44, A: 0xff}
	routeColor      = color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0x77}
)

// Viewer is an ebiten.Game and the maze.Renderer of the search it drives.
type Viewer struct {
	world   maze.GenerateOptions
	seeds   func() int64
	onStart func(seed int64, world maze.GenerateOptions)
	log     *slog.Logger

	stepper  *maze.Stepper
	grid     *maze.Grid
	snapshot maze.StepSnapshot
	route    []maze.Point
	message  string
	done     bool
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithSeeds replaces the clock-based seed for every new world.
func WithSeeds(next func() int64) Option {
	return func(v *Viewer) { v.seeds = next }
}

// OnStart is called with the inputs of every world the viewer generates.
func OnStart(fn func(seed int64, world maze.GenerateOptions)) Option {
	return func(v *Viewer) { v.onStart = fn }
}

// New generates the first world and prepares its search.
func New(world maze.GenerateOptions, options ...Option) *Viewer {
	v := &Viewer{
		world: world,
		seeds: func() int64 { return time.Now().UnixNano() },
		log:   logging.New("viewer"),
	}
	for _, option := range options {
		option(v)
	}
	v.restart()
	return v
}

// Run opens the window and blocks until it is closed. tick is the time
// between two search steps; zero keeps ebiten's default rate.
func (v *Viewer) Run(title string, tick time.Duration) error {
	if tick > 0 {
		tps := int(time.Second / tick)
		if tps < 1 {
			tps = 1
		}
		ebiten.SetTPS(tps)
	}
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(v)
}

func (v *Viewer) restart() {
	seed := v.seeds()
	v.grid = maze.Generate(rand.New(rand.NewSource(seed)), v.world)
	v.stepper = maze.NewStepper(v.grid, v.grid.Start(), v.grid.Goal(), maze.WithLogger(v.log))
	v.snapshot = maze.StepSnapshot{}
	v.route = nil
	v.message = ""
	v.done = false
	v.log.Info("new world", "seed", seed, "width", v.world.Width, "height", v.world.Height)
	if v.onStart != nil {
		v.onStart(seed, v.world)
	}
}

// advance runs one search tick, or restarts when asked to after the end.
func (v *Viewer) advance(clicked bool) {
	if v.done {
		if clicked {
			v.restart()
		}
		return
	}
	if v.stepper.Tick(v) != maze.StepContinue {
		v.done = true
	}
}

func (v *Viewer) Update() error {
	v.advance(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	size := float32(cellSize)

	for _, n := range v.snapshot.Closed {
		vector.DrawFilledRect(screen, float32(n.Pos.X)*size, float32(n.Pos.Y)*size, size, size, closedColor, false)
	}
	for _, n := range v.snapshot.Open {
		vector.DrawFilledRect(screen, float32(n.Pos.X)*size, float32(n.Pos.Y)*size, size, size, openColor, false)
	}

	for y := 0; y < v.grid.Height(); y++ {
		for x := 0; x < v.grid.Width(); x++ {
			px, py := float32(x)*size, float32(y)*size
			switch v.grid.At(maze.Point{X: x, Y: y}) {
			case maze.Blocked:
				vector.DrawFilledRect(screen, px+2, py+2, size-4, size-4, wallColor, true)
			case maze.Costly:
				vector.DrawFilledCircle(screen, px+size/2, py+size/2, size/3, costlyColor, true)
			}
		}
	}

	for i := 1; i < len(v.route); i++ {
		a, b := v.route[i-1], v.route[i]
		vector.StrokeLine(screen,
			(float32(a.X)+0.5)*size, (float32(a.Y)+0.5)*size,
			(float32(b.X)+0.5)*size, (float32(b.Y)+0.5)*size,
			12, routeColor, true)
	}

	status := v.message
	if v.done {
		status += "  (click for a new world)"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, v.grid.Height()*cellSize+4)
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.world.Width * cellSize, v.world.Height*cellSize + statusHeight
}

func (v *Viewer) RenderStep(_ *maze.Grid, snapshot maze.StepSnapshot) {
	v.snapshot = snapshot
	v.route = snapshot.Trail
}

// RenderPath clears the search overlay so only the route remains.
func (v *Viewer) RenderPath(_ *maze.Grid, path maze.Path) {
	v.snapshot = maze.StepSnapshot{}
	v.route = path.Points()
}

func (v *Viewer) RenderMessage(message string) {
	v.message = message
	v.log.Info("search finished", "result", message)
}
