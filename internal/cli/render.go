package cli

import (
	"fmt"
	"os"

	"github.com/sanonone/wordgraph/pkg/graph"
	"github.com/sanonone/wordgraph/pkg/render"
	"github.com/spf13/cobra"
)

// writeDOTFile renders g with ann into path and reports where it went.
func writeDOTFile(cmd *cobra.Command, path string, g *graph.WordGraph, ann render.Annotations) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create DOT file: %w", err)
	}
	if err := render.WriteDOT(f, g, ann); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close DOT file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Graph written to %s (render with: dot -Tpng %s -o graph.png)\n", path, path)
	return nil
}
