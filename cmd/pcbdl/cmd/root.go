package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Per-invocation state built in the root PersistentPreRunE
	cfg    Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pcbdl",
	Short: "pcbdl - KiCad netlist import and circuit graph tools",
	Long: `pcbdl imports KiCad netlist exports into an in-memory circuit graph
of parts, pins, and nets.

Examples:
  pcbdl netlist info design.net            # Show netlist summary
  pcbdl netlist parts design.net           # List part instances
  pcbdl netlist nets design.net GND        # Show GND net connections
  pcbdl netlist graph design.net -o g.svg  # Render connectivity graph`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return err
		}

		level := cfg.Level()
		if verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		})
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")
}
