package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/sanonone/wordgraph/pkg/persistence"
	"github.com/sanonone/wordgraph/pkg/render"
	"github.com/spf13/cobra"
)

// NewWalkCommand creates the walk command.
func NewWalkCommand() *cobra.Command {
	var (
		withDOT  bool
		truncate bool
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Take a random walk through the graph",
		Long: `Start from a random word and follow random edges until a word without
successors is reached or an edge is traversed twice. Ctrl+C stops the walk
early. The walk is appended to the walk output file (see --walk-output).`,
		Example: `  wordgraph walk -c corpus.txt
  wordgraph walk -c corpus.txt --seed 42 --truncate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cfg, err := openEngine(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res := eng.RandomWalk(ctx)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.String())
			slog.Debug("Random walk finished", "steps", len(res.Edges), "stop", res.Stop)

			if res.Stop != engine.StopEmptyGraph {
				if err := saveWalk(cfg.WalkOutput, res.Nodes, truncate); err != nil {
					return err
				}
			}

			if withDOT {
				return writeDOTFile(cmd, cfg.DOTOutput, eng.Graph(), render.ForWalk(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDOT, "dot", false, "Also write the graph with the walk highlighted")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Replace previous walks instead of appending")
	return cmd
}

func saveWalk(path string, nodes []string, truncate bool) error {
	w, err := persistence.NewWalkWriter(path)
	if err != nil {
		return err
	}
	if truncate {
		if err := w.Truncate(); err != nil {
			_ = w.Close()
			return fmt.Errorf("failed to truncate walk file: %w", err)
		}
	}
	if err := w.WriteWalk(nodes); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write walk: %w", err)
	}
	return w.Close()
}
