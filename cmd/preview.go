package cmd

import (
	"github.com/mouse-blink/bufsafe/internal/domain"
	"github.com/spf13/cobra"
)

var previewCountFlag int
var previewSeedFlag int64
var previewTautOnlyFlag bool
var previewNoCommentsFlag bool

// previewCmd represents the preview command.
var previewCmd = newPreviewCmd()

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print generated instances without writing files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Preview(domain.PreviewArgs{
				Count:    previewCountFlag,
				Seed:     previewSeedFlag,
				TautOnly: previewTautOnlyFlag,
				Annotate: currentConfig().Output.Annotate && !previewNoCommentsFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&previewCountFlag, "count", "n", 1, "number of instances to print")
	cmd.Flags().Int64Var(&previewSeedFlag, "seed", 0, "random seed; -1 seeds from entropy")
	cmd.Flags().BoolVar(&previewTautOnlyFlag, "taut-only", false, "generate only flow-insensitive (decoy) buffer writes")
	cmd.Flags().BoolVar(&previewNoCommentsFlag, "no-comments", false, "do not append tags as trailing comments")

	return cmd
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
