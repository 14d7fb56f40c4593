// Package cli provides the command-line interface for petlinks.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/petlinks/internal/config"
	"github.com/mmynk/petlinks/internal/service"
	"github.com/mmynk/petlinks/internal/storage/sqlite"
	"github.com/mmynk/petlinks/pkg/logging"
)

// Version is set at build time.
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "petlinks",
		Short: "People, dogs and who owns whom",
		Long: `petlinks keeps people and dogs in a SQLite database, linked through a
join table that records whether each person is an owner of the dog.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logging.Setup(cfg.LogLevel)
			if cfg.File != "" {
				slog.Debug("Using config file", "path", cfg.File)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./"+config.DefaultConfigFile+" if present)")
	pf.String("db-path", config.DefaultDBPath, "SQLite database path")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.StringP("output", "o", config.OutputText, "output format: text, table, json")

	rootCmd.AddCommand(
		newInitCommand(),
		newDemoCommand(),
		newOwnersCommand(),
		newLinksCommand(),
	)

	return rootCmd
}

// getConfig returns the config stored by PersistentPreRunE.
func getConfig(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{DBPath: config.DefaultDBPath, Output: config.OutputText}
}

// withService opens the store, runs fn and closes the store on every path.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc *service.KennelService, r *renderer) error) error {
	cfg := getConfig(cmd)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Debug("Storage initialized", "database", cfg.DBPath)

	r := &renderer{w: cmd.OutOrStdout(), format: cfg.Output}
	return fn(cmd.Context(), service.NewKennelService(store), r)
}
