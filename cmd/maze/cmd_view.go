package main

import (
	"github.com/spf13/cobra"

	"github.com/pdrpinto/maze"
	"github.com/pdrpinto/maze/internal/config"
	"github.com/pdrpinto/maze/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Animate searches in a window; click to start over on a new world",
	RunE:  runView,
}

func init() {
	addWorldFlags(viewCmd)
}

func runView(_ *cobra.Command, _ []string) error {
	store := openProfile()
	first := settings.Seed
	seeds := func() int64 {
		seed := resolveSeed(first)
		first = 0
		return seed
	}

	v := viewer.New(settings.World.GenerateOptions(),
		viewer.WithSeeds(seeds),
		viewer.OnStart(func(seed int64, w maze.GenerateOptions) {
			rememberRun(store, seed, config.World{
				Width:           w.Width,
				Height:          w.Height,
				WallProbability: w.WallProbability,
				CostProbability: w.CostProbability,
				ExtraCost:       w.ExtraCost,
			})
		}),
	)
	return v.Run("maze", settings.Tick)
}
