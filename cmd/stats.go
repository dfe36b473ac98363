package cmd

import (
	"github.com/mouse-blink/bufsafe/internal/domain"
	m "github.com/mouse-blink/bufsafe/internal/model"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <metadata-file>",
		Short: "Summarize the tags recorded in a metadata file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Stats(domain.StatsArgs{MetadataFile: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
