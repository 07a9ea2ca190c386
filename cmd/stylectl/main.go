// stylectl administers a StyleLove deployment from the command line:
// seeding the outfit catalog, syncing the search index and classifying
// quiz answers offline.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stylelove/internal/config"
	"stylelove/internal/logging"
	"stylelove/internal/storage"
)

var (
	envFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "stylectl",
	Short:         "StyleLove catalog and index administration",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			cfg, _ = config.Load(envFile)
		} else {
			cfg, _ = config.Load()
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level, true)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load (default: .env if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(classifyCmd)
}

func openStore(ctx context.Context) (*storage.Store, error) {
	store, err := storage.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}
	return store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
