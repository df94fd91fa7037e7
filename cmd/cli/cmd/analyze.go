// Package cmd - analyze command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gerber-estimate/core/analyzer"
	"gerber-estimate/core/input"
	"gerber-estimate/core/output"
	"gerber-estimate/internal/config"
	"gerber-estimate/internal/logging"
)

var (
	outputFormat string
	showDetail   bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>...",
	Short: "Estimate board dimensions and copper layer count",
	Long: `Analyze Gerber files and estimate the board outline and layer count.

Each path can be a single file, a directory of files, or one zip archive.

Examples:
  gerber-estimate analyze gerbers.zip
  gerber-estimate analyze ./gerbers
  gerber-estimate analyze --format json --detail board-*.g*`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	formats := strings.Join(output.NewRegistry().Formats(), ", ")
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "",
		fmt.Sprintf("output format (%s); defaults to the configured format", formats))
	analyzeCmd.Flags().BoolVarP(&showDetail, "detail", "d", false, "include per-file classification")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.NewRegistry().Get(format)
	if err != nil {
		return err
	}

	env, err := input.NewEnvelopeFromPaths(args)
	if err != nil {
		return err
	}
	logging.Debug("Starting analysis",
		zap.Int("uploads", len(env.Uploads)),
		zap.Int64("bytes", env.TotalBytes()),
	)

	report, err := analyzer.New(logging.Named("analyzer")).Analyze(cmd.Context(), env.Uploads)
	if err != nil {
		return err
	}
	logging.Debug("Analysis finished",
		zap.String("input_hash", env.ContentHash),
		zap.Time("started", env.CreatedAt),
	)

	return formatter.Render(cmd.OutOrStdout(), report, showDetail || cfg.Output.Detail)
}
