// Package cli provides the command-line interface for wordgraph.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sanonone/wordgraph/pkg/config"
	"github.com/sanonone/wordgraph/pkg/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "wordgraph",
		Short: "wordgraph - word adjacency graph explorer",
		Long: `wordgraph builds a directed, weighted graph of adjacent words from a text
corpus and answers questions about it: bridge words, bridge-word text
augmentation, shortest paths and random walks.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if err := applyFlagOverrides(&cfg, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			if err := setupLogging(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
				return err
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, &cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringP("corpus", "c", "", "Path to the corpus (.txt, .pdf, .docx, or - for stdin)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible random choices")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Int("max-walk-steps", 0, "Maximum edges per random walk (0 = unbounded)")
	rootCmd.PersistentFlags().String("walk-output", "", "File random walks are appended to")
	rootCmd.PersistentFlags().String("dot-output", "", "File DOT renderings are written to")
	rootCmd.PersistentFlags().String("http-addr", "", "HTTP listen address")
	rootCmd.PersistentFlags().String("auth-token", "", "Bearer token required by the HTTP API")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewBridgeCommand())
	rootCmd.AddCommand(NewAugmentCommand())
	rootCmd.AddCommand(NewPathCommand())
	rootCmd.AddCommand(NewWalkCommand())
	rootCmd.AddCommand(NewWordsCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewMCPCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// applyFlagOverrides copies explicitly set flags over the file configuration.
func applyFlagOverrides(cfg *config.Config, flags *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && flags.Changed(name) {
			err = apply()
		}
	}

	set("corpus", func() (e error) { cfg.CorpusPath, e = flags.GetString("corpus"); return })
	set("log-level", func() (e error) { cfg.LogLevel, e = flags.GetString("log-level"); return })
	set("max-walk-steps", func() (e error) { cfg.MaxWalkSteps, e = flags.GetInt("max-walk-steps"); return })
	set("walk-output", func() (e error) { cfg.WalkOutput, e = flags.GetString("walk-output"); return })
	set("dot-output", func() (e error) { cfg.DOTOutput, e = flags.GetString("dot-output"); return })
	set("http-addr", func() (e error) { cfg.HTTPAddr, e = flags.GetString("http-addr"); return })
	set("auth-token", func() (e error) { cfg.AuthToken, e = flags.GetString("auth-token"); return })
	set("seed", func() error {
		seed, e := flags.GetUint64("seed")
		if e == nil {
			cfg.Seed = &seed
		}
		return e
	})

	if err != nil {
		return fmt.Errorf("invalid flag: %w", err)
	}
	return nil
}

func setupLogging(level string, w io.Writer) error {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// getConfig returns the configuration loaded by the root command.
func getConfig(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	cfg := config.DefaultConfig()
	return &cfg
}

// openEngine validates the configuration and builds the graph from the corpus.
func openEngine(cmd *cobra.Command) (*engine.Engine, *config.Config, error) {
	cfg := getConfig(cmd)
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoCorpus) {
			return nil, nil, fmt.Errorf("%w: pass --corpus or set corpus_path", err)
		}
		return nil, nil, err
	}

	opts := engine.DefaultOptions(cfg.CorpusPath)
	opts.MaxWalkSteps = cfg.MaxWalkSteps
	opts.Input = cmd.InOrStdin()
	if cfg.Seed != nil {
		opts.Chooser = engine.NewSeededChooser(*cfg.Seed)
	}

	eng, err := engine.Open(cmd.Context(), opts)
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}
