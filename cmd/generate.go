package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/bufsafe/internal/domain"
	m "github.com/mouse-blink/bufsafe/internal/model"
)

const defaultNumInstances = 12000

var generateNumFlag int
var generateSeedFlag int64
var generateMetadataFlag string
var generateTautOnlyFlag bool
var generateLinearOnlyFlag bool
var generateNoCommentsFlag bool
var generateParallelFlag int

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <outdir>",
		Short: "Generate a tagged corpus into an existing directory",
		Long: `Generate writes --num-instances C files into <outdir>, which must already
exist. Each file is named after a hash of its contents; instances whose
name is already taken are discarded and regenerated.

With --metadata-file the per-line tags of every file are stored as JSON:
  {"working_dir": ..., "num_instances": N, "tags": {"<file>.c": [1, 1, ...]}}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := currentConfig()

			threads := generateParallelFlag
			if threads <= 0 {
				threads = c.Output.Parallel
			}

			return workflow.Generate(cmd.Context(), domain.GenerateArgs{
				OutDir:       m.Path(args[0]),
				Count:        generateNumFlag,
				Seed:         generateSeedFlag,
				TautOnly:     generateTautOnlyFlag,
				LinearOnly:   generateLinearOnlyFlag,
				MetadataFile: m.Path(generateMetadataFlag),
				Threads:      threads,
				Annotate:     c.Output.Annotate && !generateNoCommentsFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&generateNumFlag, "num-instances", "n", defaultNumInstances, "number of instance files to create")
	cmd.Flags().Int64Var(&generateSeedFlag, "seed", 0, "random seed for reproducible output; -1 seeds from entropy")
	cmd.Flags().StringVarP(&generateMetadataFlag, "metadata-file", "m", "", "write JSON tag metadata to this path")
	cmd.Flags().BoolVar(&generateTautOnlyFlag, "taut-only", false, "generate only flow-insensitive (decoy) buffer writes")
	cmd.Flags().BoolVar(&generateLinearOnlyFlag, "linear-only", false, "accepted for compatibility; has no effect")
	cmd.Flags().BoolVar(&generateNoCommentsFlag, "no-comments", false, "do not append tags as trailing comments")
	cmd.Flags().IntVarP(&generateParallelFlag, "parallel", "p", 0, "number of parallel file writers (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
