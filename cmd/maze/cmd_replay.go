package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/maze"
)

var replayFlags struct {
	output outputFlags
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Search the world of the last solve or view run again",
	RunE:  runReplay,
}

func init() {
	addOutputFlags(replayCmd, &replayFlags.output)
}

func runReplay(cmd *cobra.Command, _ []string) error {
	run, ok, err := openProfile().LastRun()
	if err != nil {
		return fmt.Errorf("load last run: %w", err)
	}
	if !ok {
		return errors.New("no previous run recorded; use 'maze solve' first")
	}
	opts := run.World.GenerateOptions()
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("recorded run: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d\n", run.Seed)
	grid := maze.Generate(rand.New(rand.NewSource(run.Seed)), opts)
	return solveGrid(cmd, grid, replayFlags.output)
}
