// Package cmd - layers command
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gerber-estimate/core/input"
	"gerber-estimate/core/layers"
	"gerber-estimate/core/types"
)

// layersCmd classifies files by name without reading geometry
var layersCmd = &cobra.Command{
	Use:   "layers <path>...",
	Short: "Show how each file is classified and the resulting layer count",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLayers,
}

func runLayers(cmd *cobra.Command, args []string) error {
	env, err := input.NewEnvelopeFromPaths(args)
	if err != nil {
		return err
	}
	files, err := input.Expand(cmd.Context(), env.Uploads)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tLAYER")

	classified := make([]types.Layer, len(files))
	for i, f := range files {
		classified[i] = layers.Classify(f.Name)
		fmt.Fprintf(tw, "%s\t%s\n", f.Name, classified[i])
	}

	detected := layers.Count(classified)
	fmt.Fprintf(tw, "\nDetected copper layers:\t%d\n", detected)
	fmt.Fprintf(tw, "Order layer count:\t%d\n", layers.NormalizeCount(detected, len(env.Uploads)))
	return tw.Flush()
}
