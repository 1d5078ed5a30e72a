package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "ridge.dev/pkg/ridge/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	editedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type keyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Top:      key.NewBinding(key.WithKeys("g", "home")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end")),
	PageDown: key.NewBinding(key.WithKeys("d", "pgdown")),
	PageUp:   key.NewBinding(key.WithKeys("u", "pgup")),
}

// TUI implements UI using Bubble Tea. Long sequence lists open a pager; short
// ones are printed directly.
type TUI struct {
	output io.Writer
	simple *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	cmd := newOutputCommand(output)

	return &TUI{output: output, simple: NewSimpleUI(cmd)}
}

// DisplayDesign shows the design result, paging through the sequences when
// they do not fit on screen.
func (p *TUI) DisplayDesign(ctx context.Context, result m.DesignResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newDesignModel(result)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayReduction delegates to the plain renderer.
func (p *TUI) DisplayReduction(ctx context.Context, reduction m.Reduction) error {
	return p.simple.DisplayReduction(ctx, reduction)
}

// DisplayExplosion delegates to the plain renderer.
func (p *TUI) DisplayExplosion(ctx context.Context, expansions []m.Expansion) error {
	return p.simple.DisplayExplosion(ctx, expansions)
}

// DisplayOrganisms delegates to the plain renderer.
func (p *TUI) DisplayOrganisms(ctx context.Context, organisms []m.Organism) error {
	return p.simple.DisplayOrganisms(ctx, organisms)
}

// designModel is the Bubble Tea model paging through assembled sequences.
type designModel struct {
	result   m.DesignResult
	header   []string
	height   int
	width    int
	offset   int
	quitting bool
}

func newDesignModel(result m.DesignResult) designModel {
	return designModel{
		result: result,
		header: strings.Split(strings.TrimRight(renderDesignSummary(result)+"\n"+renderPositionSummary(result.Positions), "\n"), "\n"),
	}
}

func (dm designModel) Init() tea.Cmd {
	return nil
}

func (dm designModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		dm.height = msg.Height
		dm.width = msg.Width

		return dm, nil

	case tea.KeyMsg:
		return dm.handleKeyPress(msg)
	}

	return dm, nil
}

func (dm designModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		dm.quitting = true
		return dm, tea.Quit

	case key.Matches(msg, keys.Down):
		dm.offset = dm.clamp(dm.offset + 1)

	case key.Matches(msg, keys.Up):
		dm.offset = dm.clamp(dm.offset - 1)

	case key.Matches(msg, keys.Top):
		dm.offset = 0

	case key.Matches(msg, keys.Bottom):
		dm.offset = dm.maxOffset()

	case key.Matches(msg, keys.PageDown):
		dm.offset = dm.clamp(dm.offset + dm.itemsPerPage())

	case key.Matches(msg, keys.PageUp):
		dm.offset = dm.clamp(dm.offset - dm.itemsPerPage())
	}

	return dm, nil
}

func (dm designModel) clamp(offset int) int {
	if offset < 0 {
		return 0
	}

	if maxOff := dm.maxOffset(); offset > maxOff {
		return maxOff
	}

	return offset
}

// itemsPerPage calculates how many sequences fit below the header.
func (dm designModel) itemsPerPage() int {
	if dm.height == 0 {
		return 10
	}

	// title (2) + header + sequences title (2) + footer (3)
	reserved := 7 + len(dm.header)

	available := dm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (dm designModel) maxOffset() int {
	maxOff := len(dm.result.Variants) - dm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the sequences do not fit on screen.
func (dm designModel) needsPagination() bool {
	return dm.height > 0 && len(dm.result.Variants) > dm.itemsPerPage()
}

func (dm designModel) View() string {
	if dm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Ridge - Variant Design") + "\n\n")

	for _, line := range dm.header {
		b.WriteString(line + "\n")
	}

	total := len(dm.result.Variants)
	fmt.Fprintf(&b, "\nSequences (%d):\n", total)

	if total == 0 {
		b.WriteString(faintStyle.Render("  no sequences") + "\n")
		return b.String()
	}

	start, end := 0, total
	if dm.needsPagination() {
		start = dm.offset
		end = start + dm.itemsPerPage()

		if end > total {
			end = total
		}
	}

	for _, variant := range dm.result.Variants[start:end] {
		b.WriteString("  " + variant + "\n")
	}

	if dm.needsPagination() {
		perPage := dm.itemsPerPage()
		currentPage := (dm.offset / perPage) + 1
		totalPages := (total + perPage - 1) / perPage

		b.WriteString("\n")
		fmt.Fprintf(&b, "  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, total)
		b.WriteString(faintStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit") + "\n")
	}

	return b.String()
}

// renderPositionSummary lists each position with its codons, marking edits.
func renderPositionSummary(positions []m.PositionCodons) string {
	var b strings.Builder

	for _, pos := range positions {
		line := fmt.Sprintf("  %4d %s %-6s %s", pos.Position+1, residueLabel(pos.Residue), pos.Set.String(), joinCodons(pos.Codons))
		if pos.Edited {
			line = editedStyle.Render(line)
		}

		b.WriteString(line + "\n")
	}

	return b.String()
}

// newOutputCommand gives SimpleUI a writer-backed command to print through.
func newOutputCommand(output io.Writer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(output)

	return cmd
}
