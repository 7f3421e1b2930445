package cli

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	wgmcp "github.com/sanonone/wordgraph/internal/mcp"
	"github.com/sanonone/wordgraph/internal/server"
	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/sanonone/wordgraph/pkg/persistence"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the queries over HTTP",
		Long: `Start the HTTP API (see --http-addr). Walks run through the API are
appended to the walk output file. Prometheus metrics are served on /metrics
and a small query console on /ui/.`,
		Example: `  wordgraph serve -c corpus.txt --http-addr :9093 --auth-token secret`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cfg, err := openEngine(cmd)
			if err != nil {
				return err
			}

			walks, err := persistence.NewWalkWriter(cfg.WalkOutput)
			if err != nil {
				return err
			}
			defer walks.Close()

			srv := server.NewServer(eng, cfg.HTTPAddr, cfg.AuthToken, walks)

			shutdownChan := make(chan os.Signal, 1)
			signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(shutdownChan)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Run()
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-shutdownChan:
				slog.Info("Shutdown signal received", "signal", sig.String())
			}

			srv.Shutdown()
			return <-errCh
		},
	}
}

// NewMCPCommand creates the mcp command.
func NewMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the queries as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if getConfig(cmd).CorpusPath == engine.StdinPath {
				return errors.New("mcp uses stdio for the protocol; the corpus must be a file")
			}
			eng, _, err := openEngine(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("MCP server ready on stdio", "nodes", eng.Stats().Nodes)
			return wgmcp.NewMCPServer(eng, Version).Run(ctx, &mcp.StdioTransport{})
		},
	}
}
