// Package cli implements the toastlint command: validation of toast option
// files and inspection of the layout derived from them.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// app carries state shared by subcommands once the root PersistentPreRunE has run.
type app struct {
	log      *slog.Logger
	out      io.Writer
	defaults toast.Defaults

	logFormat string
	verbose   bool
	envFiles  []string
	typesFile string
}

// NewRootCmd builds the toastlint command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "toastlint",
		Short: "Validate toast notification options",
		Long: `toastlint validates toast notification option files (YAML or JSON) and prints
the normalized notifications together with their CSS classes, transitions and
container layout.

Defaults for omitted options are read from TOAST_* environment variables.
Logging is configured with TOAST_LOG_LEVEL, TOAST_LOG_FORMAT and TOAST_SERVICE.`,
		Example: `  # Validate option files against a user-defined type catalog
  toastlint validate --types types.yaml saved.yaml failed.yaml

  # Show how a list of notifications is distributed over containers
  toastlint layout active.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.logFormat, "log-format", string(logger.FormatText), "Log format: text or json (overrides TOAST_LOG_FORMAT)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Load .env files before reading TOAST_* variables")
	root.PersistentFlags().StringVarP(&a.typesFile, "types", "t", "", "YAML or JSON catalog of user-defined types")

	root.AddCommand(newValidateCmd(a), newLayoutCmd(a))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) init(cmd *cobra.Command) error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
	}

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return fmt.Errorf("load logger config: %w", err)
	}
	opts := append(logCfg.Options(),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("toastlint")),
	)

	// Explicit flags take precedence over TOAST_LOG_* variables.
	flags := cmd.Flags()
	if flags.Changed("log-format") {
		format, err := logger.ParseFormat(a.logFormat)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	if flags.Changed("verbose") {
		opts = append(opts, logger.WithVerbose(a.verbose))
	}

	a.out = cmd.OutOrStdout()
	a.log = logger.New(opts...)

	a.defaults = toast.DefaultDefaults()
	if err := config.Load(&a.defaults); err != nil {
		return fmt.Errorf("load toast defaults: %w", err)
	}
	a.log.Debug("defaults loaded",
		slog.String("insert", string(a.defaults.Insert)),
		slog.Bool("dismiss_click", a.defaults.DismissClick),
		slog.Bool("dismiss_touch", a.defaults.DismissTouch),
	)
	return nil
}
