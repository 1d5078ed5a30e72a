// Package controller renders design results to the terminal.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "ridge.dev/pkg/ridge/internal/model"
)

// UI displays the outcome of each workflow operation.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDesign(ctx context.Context, result m.DesignResult) error
	DisplayReduction(ctx context.Context, reduction m.Reduction) error
	DisplayExplosion(ctx context.Context, expansions []m.Expansion) error
	DisplayOrganisms(ctx context.Context, organisms []m.Organism) error
}

// NewUI returns a TUI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
