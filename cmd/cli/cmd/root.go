// Package cmd provides the CLI commands for gerber-estimate.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gerber-estimate/internal/config"
	"gerber-estimate/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gerber-estimate",
	Short: "Estimate board size and layer count from Gerber files",
	Long: `gerber-estimate reads PCB manufacturing files (Gerber RS-274X, Excellon,
optionally bundled in a zip archive) and estimates the board outline size in
millimeters and the number of copper layers, ready to pre-fill a quote.

Examples:
  gerber-estimate analyze gerbers.zip
  gerber-estimate analyze --format json ./gerbers
  gerber-estimate layers board-F_Cu.gtl board-B_Cu.gbl`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, .json or .hcl (default is $HOME/.gerber-estimate.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(layersCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + string(os.PathSeparator) + ".gerber-estimate.json"
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gerber-estimate version %s\n", version)
	},
}
