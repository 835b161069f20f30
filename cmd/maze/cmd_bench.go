package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/maze"
	"github.com/pdrpinto/maze/internal/format"
	"github.com/pdrpinto/maze/internal/logging"
)

var benchFlags struct {
	runs    int
	workers int
	format  string
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Search many independent worlds in parallel and summarise the results",
	RunE:  runBench,
}

func init() {
	addWorldFlags(benchCmd)
	f := benchCmd.Flags()
	f.IntVar(&benchFlags.runs, "runs", 100, "Number of worlds to generate")
	f.IntVar(&benchFlags.workers, "workers", 0, "Parallel searches (0 uses the config value, then every CPU)")
	f.StringVar(&benchFlags.format, "format", "ascii", "Table format: ascii or markdown")
}

func runBench(cmd *cobra.Command, _ []string) error {
	if benchFlags.runs < 1 {
		return fmt.Errorf("--runs must be positive, got %d", benchFlags.runs)
	}
	mode, err := format.ParseMode(benchFlags.format)
	if err != nil {
		return err
	}

	base := resolveSeed(settings.Seed)
	trials := make([]maze.Trial, benchFlags.runs)
	for i := range trials {
		trials[i] = maze.Trial{Seed: base + int64(i), World: settings.World.GenerateOptions()}
	}

	var options []maze.Option
	workers := benchFlags.workers
	if workers == 0 {
		workers = settings.Workers
	}
	if workers > 0 {
		options = append(options, maze.WithWorkers(workers))
	}

	started := time.Now()
	results, err := maze.RunBatch(cmd.Context(), trials, options...)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	logging.New("bench").Info("batch finished", "runs", len(results), "elapsed", time.Since(started))

	fmt.Fprint(cmd.OutOrStdout(), format.TrialTable(mode, results))
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
