// Package cli provides the command-line interface of liteorm.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinywasm/liteorm"
	"github.com/tinywasm/liteorm/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "liteorm",
		Short: "liteorm - manage the tables of the demo models",
		Long: `liteorm creates, drops and queries the tables of the Game and Test models
in a single embedded database file.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := cfg.NewLogger(cmd.ErrOrStderr())
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./liteorm.yaml)")
	rootCmd.PersistentFlags().String("driver", "", "database driver (sqlite|duckdb)")
	rootCmd.PersistentFlags().String("database", "", "path to the database file (:memory: for in-memory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text|json)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "result format (table|csv|markdown)")

	_ = rootCmd.RegisterFlagCompletionFunc("driver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.DriverSQLite, config.DriverDuckDB}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "csv", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newCreateTablesCommand())
	rootCmd.AddCommand(newDropTablesCommand())
	rootCmd.AddCommand(newSQLCommand())
	rootCmd.AddCommand(newFetchCommand())
	rootCmd.AddCommand(newExecCommand())
	rootCmd.AddCommand(newQueryCommand())
	rootCmd.AddCommand(newVersionCommand())

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

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Driver:    config.DefaultDriver,
		Database:  config.DefaultDatabase,
		LogLevel:  config.DefaultLogLevel,
		LogFormat: config.DefaultLogFormat,
		Output:    config.DefaultOutput,
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// openConnector opens the configured database. The caller closes it.
func openConnector(cmd *cobra.Command) (*liteorm.Connector, error) {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := GetLogger(ctx)

	conn, err := liteorm.Open(ctx, cfg.Driver, cfg.DSN(), liteorm.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("connected", "driver", cfg.Driver, "database", cfg.Database)
	return conn, nil
}
