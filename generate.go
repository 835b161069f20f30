package maze

import "fmt"

// RandomSource yields uniformly distributed numbers in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// GenerateOptions are the world generation parameters.
type GenerateOptions struct {
	Width           int
	Height          int
	WallProbability float64
	CostProbability float64
	ExtraCost       float64
}

// DefaultGenerateOptions returns a 20x20 world with 20% walls, 20% of the
// remaining cells costing 5 extra.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Width:           20,
		Height:          20,
		WallProbability: 0.2,
		CostProbability: 0.2,
		ExtraCost:       5,
	}
}

// Validate reports options Generate cannot honour.
func (o GenerateOptions) Validate() error {
	if o.Width < 3 || o.Height < 3 {
		return fmt.Errorf("world must be at least 3x3, got %dx%d", o.Width, o.Height)
	}
	if o.WallProbability < 0 || o.WallProbability > 1 {
		return fmt.Errorf("wall probability %v outside [0,1]", o.WallProbability)
	}
	if o.CostProbability < 0 || o.CostProbability > 1 {
		return fmt.Errorf("cost probability %v outside [0,1]", o.CostProbability)
	}
	if o.ExtraCost < 0 {
		return fmt.Errorf("extra cost %v is negative", o.ExtraCost)
	}
	return nil
}

// Generate builds a random world. The border is always Blocked; every
// interior cell is independently Blocked with WallProbability, otherwise
// Costly with CostProbability, otherwise Free. Start and goal are forced
// Free afterwards. Whether the goal is reachable is not checked.
//
// Options must pass Validate.
func Generate(src RandomSource, opts GenerateOptions) *Grid {
	w, h := opts.Width, opts.Height
	cells := make([]Terrain, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[y*w+x] = pickTerrain(src, opts, x == 0 || y == 0 || x == w-1 || y == h-1)
		}
	}

	g := &Grid{width: w, height: h, cells: cells, extraCost: opts.ExtraCost}
	start, goal := g.Start(), g.Goal()
	cells[start.Y*w+start.X] = Free
	cells[goal.Y*w+goal.X] = Free
	return g
}

// pickTerrain only draws the cost roll when the wall roll misses, so a
// seeded source replays the same world.
func pickTerrain(src RandomSource, opts GenerateOptions, border bool) Terrain {
	if border {
		return Blocked
	}
	if src.Float64() < opts.WallProbability {
		return Blocked
	}
	if src.Float64() < opts.CostProbability {
		return Costly
	}
	return Free
}
