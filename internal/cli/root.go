// Package cli wires the docoutline commands: batch extraction over a
// directory, single-file extraction and the HTTP server.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/config"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by all subcommands, filled in before any of them runs.
type app struct {
	envFile string
	flags   overrides

	cfg config.Config
	log *slog.Logger
}

// overrides are command-line values that win over the environment.
type overrides struct {
	logLevel   string
	format     string
	pageOffset int
	pageErrors string
	workers    int
	heuristics string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "docoutline",
		Short:        "Derive a title and heading outline from documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", ".env", "Load environment variables from this file if it exists")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides LOG_LEVEL)")
	pf.StringVar(&a.flags.heuristics, "heuristics", "", "YAML heuristics profile applied on top of HEURISTICS_FILE")
	pf.StringVar(&a.flags.pageErrors, "page-errors", "", "Unreadable pages: abort|skip (overrides PAGE_ERRORS)")
	pf.IntVar(&a.flags.pageOffset, "page-offset", -1, "Added to every reported page index (overrides PAGE_OFFSET)")

	cmd.AddCommand(extractCmd(a))
	cmd.AddCommand(fileCmd(a))
	cmd.AddCommand(serveCmd(a))
	return cmd
}

// setup loads the configuration, applies flag overrides and builds the
// logger. Logs go to stderr so command output on stdout stays clean.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.flags.heuristics != "" {
		opts, err := config.LoadHeuristics(a.flags.heuristics, cfg.Outline)
		if err != nil {
			return err
		}
		cfg.HeuristicsFile = a.flags.heuristics
		cfg.Outline = opts
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if a.flags.format != "" {
		cfg.OutputFormat = a.flags.format
	}
	if a.flags.pageErrors != "" {
		cfg.PageErrors = a.flags.pageErrors
	}
	if a.flags.workers > 0 {
		cfg.WorkerCount = a.flags.workers
	}
	if cmd.Flags().Changed("page-offset") {
		cfg.Outline.PageOffset = a.flags.pageOffset
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
