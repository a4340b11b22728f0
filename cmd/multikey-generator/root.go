package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"multikey-generator/internal/config"
	"multikey-generator/internal/diagnostic"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
	logFormat  string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "multikey-generator",
		Short: "Generate N-dimensional multi-key containers",
		Long: "multikey-generator writes one Go container type per dimension, " +
			"backed by nested maps, and expands primitive-token templates.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logFormat, opts.verbose)
			if err != nil {
				return err
			}

			opts.logger = logger

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log output format (text|json)")

	cmd.AddCommand(newGenCmd(opts))
	cmd.AddCommand(newPrimCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// loadConfig reads and validates the configuration file when one is given, or
// returns the defaults.
func (o *rootOptions) loadConfig() (*config.File, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}

	f, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("loaded config", "path", o.configPath, "version", f.Version)

	if err := report(o.logger, config.Validate(f)); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", o.configPath, err)
	}

	return f, nil
}

// newLogger builds the slog logger for the chosen format. Debug records are
// only emitted with verbose set.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	switch format {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}

// report logs warnings and notes and returns the combined error diagnostics.
func report(logger *slog.Logger, res *diagnostic.Diagnostics) error {
	for _, d := range res.Warnings {
		logger.Warn(d.Message, "code", d.Code, "subject", d.Subject)
	}

	for _, d := range res.Infos {
		logger.Info(d.Message, "code", d.Code, "subject", d.Subject)
	}

	return res.Error()
}
