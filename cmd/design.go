package cmd

import (
	"github.com/spf13/cobra"

	"ridge.dev/pkg/ridge/internal/domain"
	m "ridge.dev/pkg/ridge/internal/model"
)

var (
	backboneFlag string
	editsFlag    string
	saveFlag     string
	concreteFlag string
)

// designCmd represents the design command.
var designCmd = newDesignCmd()

func newDesignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Design degenerate sequences for a backbone and its edits",
		Long: `Resolve every backbone position to degenerate codons and print all
assembled sequences.

` + editsHelp,
		Example: `  ridge design --backbone AC --edits A1DE
  ridge design -b MKTAYIAK -e K2R,T3-P --method usage --threshold 0.1 --save design.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, threshold, err := policyArgs()
			if err != nil {
				return err
			}

			return workflow.Design(cmd.Context(), domain.DesignArgs{
				Backbone:  backboneFlag,
				Edits:     editsFlag,
				Usage:     usageSelector(cmd),
				Method:    method,
				Threshold: threshold,
				Save:      m.Path(saveFlag),
				Concrete:  m.Path(concreteFlag),
			})
		},
	}

	configureDesignFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(designCmd)
}

func configureDesignFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&backboneFlag, "backbone", "b", "", "backbone protein sequence (one-letter codes)")
	cmd.Flags().StringVarP(&editsFlag, "edits", "e", "", "comma separated edits, e.g. A12DE,G20-C")
	cmd.Flags().StringVarP(&saveFlag, "save", "s", "", "write the design result as YAML to this file")
	cmd.Flags().StringVarP(&concreteFlag, "concrete", "c", "", "write every literal DNA sequence to this file")

	cobra.CheckErr(cmd.MarkFlagRequired("backbone"))
}
