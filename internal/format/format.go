// Package format renders batch summaries as terminal or Markdown tables.
package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdrpinto/maze"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode accepts "ascii" and "markdown".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "ascii":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("unknown table format %q", s)
	}
}

// Summary aggregates a batch of trials.
type Summary struct {
	Runs         int
	Found        int
	MeanCost     float64 // over successful runs
	MeanLength   float64 // over successful runs
	MeanExpanded float64 // over all runs
}

func Summarize(results []maze.TrialResult) Summary {
	s := Summary{Runs: len(results)}
	var cost, length, expanded float64
	for _, r := range results {
		expanded += float64(r.ExpandedNodes)
		if !r.Found {
			continue
		}
		s.Found++
		cost += r.TotalCost
		length += float64(r.PathLength)
	}
	if s.Found > 0 {
		s.MeanCost = cost / float64(s.Found)
		s.MeanLength = length / float64(s.Found)
	}
	if s.Runs > 0 {
		s.MeanExpanded = expanded / float64(s.Runs)
	}
	return s
}

// TrialTable lists every trial and closes with the summary as footer.
func TrialTable(m Mode, results []maze.TrialResult) string {
	w := newWriter(m)
	w.AppendHeader(table.Row{"Seed", "Found", "Cost", "Length", "Expanded"})
	for _, r := range results {
		cost, length := "-", "-"
		if r.Found {
			cost = fmt.Sprintf("%g", r.TotalCost)
			length = fmt.Sprint(r.PathLength)
		}
		w.AppendRow(table.Row{r.Seed, r.Found, cost, length, r.ExpandedNodes})
	}
	s := Summarize(results)
	w.AppendFooter(table.Row{
		fmt.Sprintf("%d runs", s.Runs),
		fmt.Sprintf("%d/%d", s.Found, s.Runs),
		fmt.Sprintf("%.2f", s.MeanCost),
		fmt.Sprintf("%.2f", s.MeanLength),
		fmt.Sprintf("%.2f", s.MeanExpanded),
	})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return render(w, m)
}

func newWriter(m Mode) table.Writer {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return w
}

func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
