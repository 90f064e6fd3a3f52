package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string

	rootCmd = &cobra.Command{
		Use:          "smctpd",
		Short:        "SM-CPTD workflow scheduling engine",
		Long:         "smctpd schedules a DAG workflow across a VM pool using DCP ranking, stable-matching placement, and entry-task duplication, then reports SLR/AVU/VF metrics.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
)

// Execute runs the smctpd root command, printing any error to stderr and
// exiting non-zero on failure.
func Execute() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $HOME/.smctpd/config.yaml)")
}
