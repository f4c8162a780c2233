package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ppvan/slitherlink/pkg/puzzlefile"
	"github.com/ppvan/slitherlink/pkg/slither"
)

func newSolveCmd() *cobra.Command {
	var (
		index        int
		timeout      time.Duration
		noHeuristics bool
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Load and solve one puzzle from a puzzle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := fileConfig{Heuristics: boolPtr(!noHeuristics)}
			if configPath != "" {
				loaded, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("timeout") && loaded.TimeoutSeconds > 0 {
					timeout = loaded.timeout()
				}
				if !cmd.Flags().Changed("no-heuristics") && loaded.Heuristics != nil {
					cfg.Heuristics = loaded.Heuristics
				}
			}

			boards, err := puzzlefile.Load(args[0])
			if err != nil {
				return err
			}
			if index < 0 || index >= len(boards) {
				return fmt.Errorf("index %d out of range: file has %d puzzle(s)", index, len(boards))
			}
			board := boards[index]

			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			driverCfg := slither.DriverConfig{Heuristics: *cfg.Heuristics, Tracer: slither.DefaultTracer{}}
			if verbose {
				driverCfg.Tracer = slither.LoggingTracer{Writer: log.StandardLogger().Out}
			}

			solved, err := slither.SolveWith(ctx, board, driverCfg)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			printBoard(cmd.OutOrStdout(), solved)
			if !solved.Solved {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "which puzzle in the file to solve (0-based)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "cancel the solve after this duration (0 disables the timeout)")
	cmd.Flags().BoolVar(&noHeuristics, "no-heuristics", false, "disable the C7 acceleration clauses")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file with timeout/heuristics defaults")

	return cmd
}

func boolPtr(b bool) *bool { return &b }

// printBoard renders hints and the solved loop as ASCII art: a grid of
// vertices joined by '-'/'|' where the corresponding edge is TRUE, and
// each cell's hint (or '.' if none) in its center.
func printBoard(w io.Writer, b *slither.Board) {
	fmt.Fprintf(w, "solved=%v models=%d retried=%d\n", b.Solved, b.Stats.Models, b.Stats.Retried)
	if b.Graph == nil {
		return
	}

	for i := 0; i <= b.Rows; i++ {
		var top, mid strings.Builder
		for j := 0; j <= b.Cols; j++ {
			v := b.Vertex(i, j)
			top.WriteString("+")
			if v.Right != slither.NoEdge && b.Graph.HasEdge(v.ID(), b.Vertex(i, j+1).ID()) {
				top.WriteString("---")
			} else {
				top.WriteString("   ")
			}

			if v.Bottom != slither.NoEdge && b.Graph.HasEdge(v.ID(), b.Vertex(i+1, j).ID()) {
				mid.WriteString("|")
			} else {
				mid.WriteString(" ")
			}
			if j < b.Cols && i < b.Rows {
				hint := b.Cell(i, j).Hint
				if hint == slither.NoHint {
					mid.WriteString(" . ")
				} else {
					fmt.Fprintf(&mid, " %d ", hint)
				}
			}
		}
		fmt.Fprintln(w, top.String())
		if i < b.Rows {
			fmt.Fprintln(w, mid.String())
		}
	}
}
