package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"ridge.dev/pkg/ridge/internal/domain"
)

// explodeCmd represents the explode command.
var explodeCmd = newExplodeCmd()

func newExplodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "explode CODON[,CODON...]",
		Short:   "Expand degenerate codons into literal codons",
		Long:    "List the literal codons and amino acids behind each degenerate codon.",
		Example: "  ridge explode GAW,TGY\n  ridge explode NNK",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Explode(cmd.Context(), domain.ExplodeArgs{Codons: strings.Join(args, ",")})
		},
	}
}

func init() {
	rootCmd.AddCommand(explodeCmd)
}
