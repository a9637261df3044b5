package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ZacBi/ai-hedge-fund/config"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hedgefund",
		Short: "Prompt resolution and model catalog tools for the hedge-fund agents",
	}

	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newModelsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads configuration and installs the configured default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return cfg, nil
}
