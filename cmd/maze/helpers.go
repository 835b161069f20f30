package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/maze/internal/config"
	"github.com/pdrpinto/maze/internal/logging"
	"github.com/pdrpinto/maze/internal/profile"
)

// worldFlags are shared by every command that generates worlds.
type worldFlags struct {
	seed      int64
	width     int
	height    int
	wallProb  float64
	costProb  float64
	extraCost float64
	tick      time.Duration
}

var world worldFlags

func addWorldFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	def := config.Default()
	f.Int64Var(&world.seed, "seed", 0, "Random seed (0 derives one from the clock)")
	f.IntVar(&world.width, "width", def.World.Width, "World width in cells")
	f.IntVar(&world.height, "height", def.World.Height, "World height in cells")
	f.Float64Var(&world.wallProb, "wall-prob", def.World.WallProbability, "Probability of an interior wall")
	f.Float64Var(&world.costProb, "cost-prob", def.World.CostProbability, "Probability of an extra-cost cell among non-walls")
	f.Float64Var(&world.extraCost, "extra-cost", def.World.ExtraCost, "Cost of entering an extra-cost cell")
	f.DurationVar(&world.tick, "tick", def.Tick, "Time between two search steps when animating")
}

// applyWorldFlags copies explicitly set flags over cfg.
func applyWorldFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Lookup("seed") == nil {
		return
	}
	if f.Changed("seed") {
		cfg.Seed = world.seed
	}
	if f.Changed("width") {
		cfg.World.Width = world.width
	}
	if f.Changed("height") {
		cfg.World.Height = world.height
	}
	if f.Changed("wall-prob") {
		cfg.World.WallProbability = world.wallProb
	}
	if f.Changed("cost-prob") {
		cfg.World.CostProbability = world.costProb
	}
	if f.Changed("extra-cost") {
		cfg.World.ExtraCost = world.extraCost
	}
	if f.Changed("tick") {
		cfg.Tick = world.tick
	}
}

// resolveSeed returns the configured seed or one taken from the clock.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// openProfile falls back to an in-memory store when no data directory is usable.
func openProfile() *profile.Store {
	store, err := profile.Open("maze")
	if err != nil {
		logging.New("profile").Warn("profile storage unavailable, last run kept in memory", "error", err)
		return profile.New(nil)
	}
	return store
}

func rememberRun(store *profile.Store, seed int64, w config.World) {
	if err := store.SaveLastRun(profile.Run{Seed: seed, World: w}); err != nil {
		logging.New("profile").Warn("could not save last run", "error", err)
	}
}
