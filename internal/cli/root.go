// Package cli provides the Cobra command structure for php-ls.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"php-ls/internal/config"
	"php-ls/internal/logging"
	"php-ls/internal/lsp"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app carries the state shared by all commands of one invocation
type app struct {
	info       BuildInfo
	configPath string
	logLevel   string

	cfg    *config.Config
	closer io.Closer
}

// NewRootCommand creates the root php-ls command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	rootCmd, _ := newRoot(info)
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(info BuildInfo) int {
	rootCmd, a := newRoot(info)

	err := rootCmd.Execute()
	a.close()

	if err != nil && !isSignal(err) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}
	return ExitCodeFromError(err)
}

func newRoot(info BuildInfo) (*cobra.Command, *app) {
	a := &app{info: info}

	rootCmd := &cobra.Command{
		Use:   "php-ls",
		Short: "A PHP language server that formats source code",
		Long: `php-ls is a language server for PHP focused on formatting.

Run without a subcommand it speaks the Language Server Protocol over stdin
and stdout, answering document and range formatting requests with minimal
whitespace edits. The format subcommand applies the same formatter to files
from the command line.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve("")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level: debug, info, warn, error (overrides the config file)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newFormatCommand(a))
	rootCmd.AddCommand(newTreeCommand(a))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd, a
}

// setup loads the configuration and installs the logger before any command runs
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
	}

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	a.cfg = cfg
	a.closer = closer

	logging.SetDefault(logger)
	lsp.ConfigureProtocolLog(cfg.Log.Level)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	logger.Debug("configuration loaded",
		logging.FieldPath, a.configPath,
		logging.FieldLevel, cfg.Log.Level)

	return nil
}

func (a *app) close() {
	if a.closer != nil {
		_ = a.closer.Close()
		a.closer = nil
	}
}

// config returns the loaded configuration, or the defaults when setup has
// not run
func (a *app) config() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}
