// Package cli implements the guru command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/guruhq/landing/howitworks"
	"github.com/guruhq/landing/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

type options struct {
	cfgFile string
	verbose bool
}

// NewRootCommand builds the guru command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "guru",
		Short: "Serve the Guru tutoring landing site",
		Long: `guru serves the Guru landing pages for students and tutors, including
the scroll driven How It Works walkthrough and its step API.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "guru.yml", "config file path")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newServeCommand(opts),
		newStepsCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *options) load(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	logger, err := cfg.Log.Logger(stderr, o.verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func loadCatalog(cfg *config.Config) (*howitworks.Catalog, error) {
	if cfg.StepsFile == "" {
		return howitworks.DefaultCatalog(), nil
	}
	c, err := howitworks.LoadCatalog(cfg.StepsFile)
	if err != nil {
		return nil, fmt.Errorf("loading steps: %w", err)
	}
	return c, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of guru",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "guru %s\n", Version)
		},
	}
}
