package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "ridge.dev/pkg/ridge/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDesign prints the request summary, the per-position codons and every variant.
func (s *SimpleUI) DisplayDesign(ctx context.Context, result m.DesignResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderDesignSummary(result))
	s.printf("\n%s", renderPositionTable(result.Positions))
	s.printf("\nSequences (%d):\n", len(result.Variants))

	for _, variant := range result.Variants {
		s.printf("%s\n", variant)
	}

	return nil
}

// DisplayReduction prints the reduced codons of one amino acid set.
func (s *SimpleUI) DisplayReduction(ctx context.Context, reduction m.Reduction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Organism:  %s\n", reduction.Organism)
	s.printf("Keep:      %s\n", reduction.Set)

	if !reduction.Removed.IsEmpty() {
		s.printf("Removed:   %s\n", reduction.Removed)
	}

	s.printf("%s\n", thresholdLine(reduction.Method, reduction.Threshold))
	s.printf("Codons:    %s\n\n", joinCodons(reduction.Codons))
	s.printf("%s", renderExpansionTable(reduction.Expansions))

	return nil
}

// DisplayExplosion prints the literal codons behind each degenerate codon.
func (s *SimpleUI) DisplayExplosion(ctx context.Context, expansions []m.Expansion) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderExpansionTable(expansions))

	return nil
}

// DisplayOrganisms prints the usage table catalogue.
func (s *SimpleUI) DisplayOrganisms(ctx context.Context, organisms []m.Organism) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Key", "Organism", "Table"})
	for _, organism := range organisms {
		table.Append([]string{organism.Key, organism.Name, organism.File})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func renderDesignSummary(result m.DesignResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Organism:  %s\n", result.Organism)
	fmt.Fprintf(&b, "Backbone:  %s\n", result.Backbone)

	edits := result.Edits
	if strings.TrimSpace(edits) == "" {
		edits = "(none)"
	}

	fmt.Fprintf(&b, "Edits:     %s\n", edits)
	fmt.Fprintf(&b, "%s\n", thresholdLine(result.Method, result.Threshold))

	return b.String()
}

func thresholdLine(method m.Method, threshold string) string {
	if method == m.MethodRank {
		return "Rank:      " + threshold
	}

	return "Usage:     " + threshold
}

func renderPositionTable(positions []m.PositionCodons) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Position", "Ref", "Residues", "Codons"})

	total := 1

	for _, pos := range positions {
		label := fmt.Sprintf("%d", pos.Position+1)
		if pos.Edited {
			label += " *"
		}

		table.Append([]string{label, residueLabel(pos.Residue), pos.Set.String(), joinCodons(pos.Codons)})
		total *= len(pos.Codons)
	}

	if len(positions) == 0 {
		total = 0
	}

	table.SetFooter([]string{fmt.Sprintf("%d positions", len(positions)), "", "", fmt.Sprintf("%d sequences", total)})
	table.Render()

	return tableBuffer.String()
}

// residueLabel renders the reference residue, or "-" when it is unknown.
func residueLabel(aa m.AminoAcid) string {
	if aa == 0 {
		return "-"
	}

	return aa.String()
}

func renderExpansionTable(expansions []m.Expansion) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Codon", "Expands to", "Residues"})

	for _, e := range expansions {
		residues := e.AminoAcids.String()
		if e.HasStop {
			residues += " +stop"
		}

		table.Append([]string{string(e.Codon), joinCodons(e.Codons), residues})
	}

	table.Render()

	return tableBuffer.String()
}

func joinCodons(codons []m.Codon) string {
	parts := make([]string, 0, len(codons))
	for _, codon := range codons {
		parts = append(parts, string(codon))
	}

	return strings.Join(parts, ", ")
}
