package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	m "ridge.dev/pkg/ridge/internal/model"
)

// AssemblerOptions bounds sequence assembly.
type AssemblerOptions struct {
	// MaxVariants caps the number of assembled sequences. Zero means no cap.
	// The count grows multiplicatively with every position that resolves to
	// more than one codon.
	MaxVariants int
}

// Assembler builds every full-length sequence for a backbone and its edits.
type Assembler interface {
	Assemble(ctx context.Context, backbone string, edited m.EditedPositions, table m.UsageTable, policy m.Policy) ([]string, []m.PositionCodons, error)
}

type assembler struct {
	resolver Resolver
	opts     AssemblerOptions
}

// NewAssembler returns an Assembler asking resolver for the codons of every
// position. Pass a caching resolver so repeated sets are resolved once.
func NewAssembler(resolver Resolver, opts AssemblerOptions) Assembler {
	return &assembler{
		resolver: resolver,
		opts:     opts,
	}
}

// Assemble walks the backbone left to right and folds each position's codons
// into the running cartesian product. The first position varies slowest and
// the last fastest.
func (a *assembler) Assemble(ctx context.Context, backbone string, edited m.EditedPositions, table m.UsageTable, policy m.Policy) ([]string, []m.PositionCodons, error) {
	if err := validateBackbone(backbone); err != nil {
		return nil, nil, err
	}

	positions, err := a.resolvePositions(ctx, backbone, edited, table, policy)
	if err != nil {
		return nil, nil, err
	}

	if err := a.checkBound(positions); err != nil {
		return nil, nil, err
	}

	var variants []string

	for i, pos := range positions {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		if i == 0 {
			variants = make([]string, 0, len(pos.Codons))
			for _, codon := range pos.Codons {
				variants = append(variants, string(codon))
			}

			continue
		}

		next := make([]string, 0, len(variants)*len(pos.Codons))

		for _, prefix := range variants {
			for _, codon := range pos.Codons {
				next = append(next, prefix+string(codon))
			}
		}

		variants = next
	}

	if variants == nil {
		variants = []string{}
	}

	slog.Debug("Assembled variants", "backbone", backbone, "positions", len(positions), "variants", len(variants))

	return variants, positions, nil
}

func (a *assembler) resolvePositions(ctx context.Context, backbone string, edited m.EditedPositions, table m.UsageTable, policy m.Policy) ([]m.PositionCodons, error) {
	positions := make([]m.PositionCodons, 0, len(backbone))

	for pos := 0; pos < len(backbone); pos++ {
		set := edited.SetAt(backbone, pos)
		_, isEdited := edited[pos]

		codons, err := a.resolver.Resolve(ctx, set, table, policy)
		if err != nil {
			slog.Error("Failed to resolve codons", "position", pos+1, "set", set.String(), "error", err)
			return nil, fmt.Errorf("position %d (%s): %w", pos+1, set, err)
		}

		if len(codons) == 0 {
			return nil, fmt.Errorf("position %d (%s): %w: empty codon list", pos+1, set, ErrResolverFailure)
		}

		positions = append(positions, m.PositionCodons{
			Position: pos,
			Residue:  m.AminoAcid(backbone[pos]),
			Set:      set,
			Edited:   isEdited,
			Codons:   codons,
		})
	}

	return positions, nil
}

func (a *assembler) checkBound(positions []m.PositionCodons) error {
	if a.opts.MaxVariants <= 0 {
		return nil
	}

	total := 1

	for _, pos := range positions {
		total *= len(pos.Codons)
		if total > a.opts.MaxVariants {
			return fmt.Errorf("%w: more than %d sequences", ErrTooManyVariants, a.opts.MaxVariants)
		}
	}

	return nil
}

func validateBackbone(backbone string) error {
	for i := 0; i < len(backbone); i++ {
		if !m.AminoAcid(backbone[i]).IsStandard() {
			return fmt.Errorf("%w: residue %q at position %d", ErrInvalidBackbone, backbone[i], i+1)
		}
	}

	return nil
}

// NormalizeBackbone upper-cases the backbone and drops whitespace.
func NormalizeBackbone(backbone string) string {
	return strings.ToUpper(strings.Join(strings.Fields(backbone), ""))
}

// VariantCount returns the number of sequences the positions assemble into,
// saturating at math.MaxInt.
func VariantCount(positions []m.PositionCodons) int {
	if len(positions) == 0 {
		return 0
	}

	total := 1

	for _, pos := range positions {
		n := len(pos.Codons)
		if n == 0 {
			return 0
		}

		if total > math.MaxInt/n {
			total = math.MaxInt
			continue
		}

		total *= n
	}

	return total
}
