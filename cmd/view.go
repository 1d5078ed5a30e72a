package cmd

import (
	"github.com/spf13/cobra"

	"ridge.dev/pkg/ridge/internal/domain"
	m "ridge.dev/pkg/ridge/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "View a saved design result",
		Long:  "View a design result previously written with 'ridge design --save'.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
