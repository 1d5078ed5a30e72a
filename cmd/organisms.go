package cmd

import (
	"github.com/spf13/cobra"
)

// organismsCmd represents the organisms command.
var organismsCmd = newOrganismsCmd()

func newOrganismsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "organisms",
		Short: "List the named codon usage tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Organisms(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(organismsCmd)
}
