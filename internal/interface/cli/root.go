package cli

import (
	"fmt"

	"github.com/YoshitsuguKoike/hellolib/internal/hello"
	infraConfig "github.com/YoshitsuguKoike/hellolib/internal/infra/config"
	"github.com/YoshitsuguKoike/hellolib/internal/interface/cli/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	home     string
	logLevel string
}

// NewRoot builds the hello command backed by the OS filesystem.
func NewRoot() *cobra.Command {
	return newRoot(afero.NewOsFs())
}

func newRoot(fsys afero.Fs) *cobra.Command {
	var (
		opts   rootOptions
		logger = zap.NewNop()
	)

	cmd := &cobra.Command{
		Use:          "hello",
		Short:        "Print a greeting",
		Long:         "hello prints the greeting returned by the hello library.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			// Priority: --home > HELLO_HOME > .hello
			cfg, err := infraConfig.LoadSettings(fsys, infraConfig.ResolveHome(opts.home))
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			level := cfg.LogLevel()
			if opts.logLevel != "" {
				level = opts.logLevel
			}
			logger = NewLogger(level, cfg.LogFormat(), c.ErrOrStderr())
			logger.Debug("configuration loaded",
				zap.String("source", cfg.ConfigSource()),
				zap.String("path", cfg.SettingPath()),
				zap.String("home", cfg.Home()))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(c *cobra.Command, _ []string) error {
			greeting := hello.Hello()
			logger.Debug("writing greeting", zap.String("message", greeting))
			if _, err := fmt.Fprintln(c.OutOrStdout(), greeting); err != nil {
				return fmt.Errorf("failed to write greeting: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.home, "home", "", "settings directory (default $HELLO_HOME or .hello)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(version.NewCommand())
	return cmd
}
