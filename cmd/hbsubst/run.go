package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aescanero/hbsubst/internal/config"
	"github.com/aescanero/hbsubst/internal/snapshot"
	"github.com/aescanero/hbsubst/internal/template"
)

// options holds the parsed command-line flags
type options struct {
	configFile string
	input      string
	debug      int
}

// run is main without the process globals: it reads the template from stdin,
// renders it and writes the result to stdout. Nothing is written to stdout
// unless rendering succeeds.
func run(
	ctx context.Context,
	args []string,
	environ func() []string,
	host snapshot.Host,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cfg, err := config.LoadFrom(snapshot.ParseEnviron(environ()))
	if err != nil {
		return err
	}

	opts := &options{}
	cmd := &cobra.Command{
		Use:           "hbsubst [INPUT]",
		Short:         "Substitutes the values of environment variables, but with handlebars.",
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.input = args[0]
			}

			logger := initLogger(cfg.LogLevel, cfg.LogFormat, opts.debug, stderr)
			defer func() { _ = logger.Sync() }()

			logger.Debug("starting hbsubst",
				zap.String("version", Version),
				zap.String("build_time", BuildTime),
				zap.String("config", cfg.String()),
				zap.String("config_file", opts.configFile),
				zap.String("input", opts.input),
			)

			return substitute(cmd.Context(), environ, host, stdin, stdout, logger)
		},
	}
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Sets a custom config file")
	cmd.Flags().CountVarP(&opts.debug, "debug", "d", "Sets the level of debugging information")

	cmd.SetArgs(args[1:])
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd.ExecuteContext(ctx)
}

// substitute runs the read, compile, build, render, write pipeline
func substitute(
	ctx context.Context,
	environ func() []string,
	host snapshot.Host,
	stdin io.Reader,
	stdout io.Writer,
	logger *zap.Logger,
) error {
	source, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	tpl, err := template.Compile(string(source), logger)
	if err != nil {
		return err
	}

	snap, err := snapshot.NewBuilder(host, environ, logger).Build(ctx)
	if err != nil {
		return err
	}

	result, err := tpl.Render(snap.Data())
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	if _, err := w.WriteString(result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
