package render

import "github.com/pdrpinto/maze"

type tee []maze.Renderer

// Tee forwards every call to each renderer in order.
func Tee(renderers ...maze.Renderer) maze.Renderer {
	return tee(renderers)
}

func (t tee) RenderStep(grid *maze.Grid, snapshot maze.StepSnapshot) {
	for _, r := range t {
		r.RenderStep(grid, snapshot)
	}
}

func (t tee) RenderPath(grid *maze.Grid, path maze.Path) {
	for _, r := range t {
		r.RenderPath(grid, path)
	}
}

func (t tee) RenderMessage(message string) {
	for _, r := range t {
		r.RenderMessage(message)
	}
}
