package cmd

import (
	"github.com/spf13/cobra"

	"ridge.dev/pkg/ridge/internal/domain"
)

var (
	keepFlag   string
	removeFlag string
)

// reduceCmd represents the reduce command.
var reduceCmd = newReduceCmd()

func newReduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Reduce one amino acid set to degenerate codons",
		Long: `Find the fewest degenerate codons encoding exactly a set of amino acids.

Use --keep to list the wanted amino acids or --remove to list the ones to
exclude from the 20 standard amino acids.`,
		Example: `  ridge reduce --keep D,E
  ridge reduce --remove C,M --method usage --threshold 0.05`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, threshold, err := policyArgs()
			if err != nil {
				return err
			}

			return workflow.Reduce(cmd.Context(), domain.ReduceArgs{
				Keep:      keepFlag,
				Remove:    removeFlag,
				Usage:     usageSelector(cmd),
				Method:    method,
				Threshold: threshold,
			})
		},
	}

	cmd.Flags().StringVarP(&keepFlag, "keep", "k", "", "amino acids to encode, e.g. D,E")
	cmd.Flags().StringVarP(&removeFlag, "remove", "r", "", "amino acids to leave out")
	cmd.MarkFlagsMutuallyExclusive("keep", "remove")
	cmd.MarkFlagsOneRequired("keep", "remove")

	return cmd
}

func init() {
	rootCmd.AddCommand(reduceCmd)
}
