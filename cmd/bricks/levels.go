package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the campaign",
	Long:  `Shows every level that 'bricks play' would load, in play order.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	logger := stderrLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	lvls, err := loadLevels(cfg, logger)
	if err != nil {
		logger.Fatal("level configuration error", "err", err)
	}
	summaries, err := bricks.Summarize(lvls, cfg)
	if err != nil {
		logger.Fatal("level configuration error", "err", err)
	}

	printLevels(os.Stdout, summaries)
}

// printLevels writes one row per level.
func printLevels(w io.Writer, summaries []bricks.LevelSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No levels available.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, s := range summaries {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Fprintf(w, "  %3s  %-*s  %7s  %6s  %9s\n", "#", maxNameLen, "Name", "Grid", "Bricks", "Breakable")
	fmt.Fprintf(w, "  %3s  %-*s  %7s  %6s  %9s\n", "-", maxNameLen, "----", "----", "------", "---------")
	for _, s := range summaries {
		grid := fmt.Sprintf("%dx%d", s.Rows, s.Cols)
		fmt.Fprintf(w, "  %3d  %-*s  %7s  %6d  %9d\n", s.Index+1, maxNameLen, s.Name, grid, s.Bricks, s.Breakable)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bricks play --level <#>' to start from a level.")
}
