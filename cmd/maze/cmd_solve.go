package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/maze"
	"github.com/pdrpinto/maze/internal/render"
)

type outputFlags struct {
	animate bool
	noColor bool
	pngPath string
}

var solveFlags struct {
	output   outputFlags
	mazeFile string
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate a world (or load one) and search it",
	RunE:  runSolve,
}

func init() {
	addWorldFlags(solveCmd)
	addOutputFlags(solveCmd, &solveFlags.output)
	solveCmd.Flags().StringVar(&solveFlags.mazeFile, "maze-file", "", "Read the world from a text file of '#', '.' and 'o' cells")
}

func addOutputFlags(cmd *cobra.Command, out *outputFlags) {
	f := cmd.Flags()
	f.BoolVar(&out.animate, "animate", false, "Redraw the terminal on every search step")
	f.BoolVar(&out.noColor, "no-color", false, "Disable terminal colours")
	f.StringVar(&out.pngPath, "png", "", "Also write the final frame to this PNG file")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	if solveFlags.mazeFile != "" {
		data, err := os.ReadFile(solveFlags.mazeFile)
		if err != nil {
			return fmt.Errorf("read maze file: %w", err)
		}
		grid, err := maze.ParseGrid(string(data), settings.World.ExtraCost)
		if err != nil {
			return fmt.Errorf("parse maze file: %w", err)
		}
		if grid.Width() < 3 || grid.Height() < 3 {
			return fmt.Errorf("maze file world is %dx%d, need at least 3x3", grid.Width(), grid.Height())
		}
		return solveGrid(cmd, grid, solveFlags.output)
	}

	seed := resolveSeed(settings.Seed)
	rememberRun(openProfile(), seed, settings.World)
	fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d\n", seed)
	grid := maze.Generate(rand.New(rand.NewSource(seed)), settings.World.GenerateOptions())
	return solveGrid(cmd, grid, solveFlags.output)
}

// solveGrid searches from the grid's start to its goal. An unreachable goal
// is reported by the renderer and is not an error.
func solveGrid(cmd *cobra.Command, grid *maze.Grid, out outputFlags) error {
	terminal := render.NewTerminal(cmd.OutOrStdout(), out.animate, !out.noColor)
	renderers := []maze.Renderer{terminal}
	var picture *render.Picture
	if out.pngPath != "" {
		picture = render.NewPicture(render.DefaultCellSize)
		renderers = append(renderers, picture)
	}

	options := []maze.Option{maze.WithRenderer(render.Tee(renderers...))}
	if out.animate {
		options = append(options, maze.WithTick(settings.Tick))
	}

	_, err := maze.FindPath(cmd.Context(), grid, grid.Start(), grid.Goal(), options...)
	if err != nil && !errors.Is(err, maze.ErrPathNotFound) {
		return err
	}

	if picture != nil {
		if err := picture.WriteFile(out.pngPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Image: %s\n", out.pngPath)
	}
	return nil
}
