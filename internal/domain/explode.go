package domain

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	m "ridge.dev/pkg/ridge/internal/model"
	"ridge.dev/pkg/ridge/pkg"
)

// ParseCodons splits a comma or whitespace separated codon list. Codons are
// upper-cased and U is read as T.
func ParseCodons(list string) ([]m.Codon, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	codons := make([]m.Codon, 0, len(fields))

	for _, field := range fields {
		codon := strings.ReplaceAll(strings.ToUpper(field), "U", "T")
		if len(codon) != 3 {
			return nil, fmt.Errorf("codon %q: expected 3 symbols", field)
		}

		codons = append(codons, m.Codon(codon))
	}

	if len(codons) == 0 {
		return nil, fmt.Errorf("no codons given")
	}

	return codons, nil
}

// ExpandCodons expands each degenerate codon into its literal codons and the
// amino acids they encode. With a usage table, every literal codon also gets
// its usage fraction within its amino acid.
func ExpandCodons(rules m.Rules, codons []m.Codon, table m.UsageTable) ([]m.Expansion, error) {
	var totals map[m.AminoAcid]float64

	if table != nil {
		totals = make(map[m.AminoAcid]float64)

		for codon, weight := range table {
			if aa, ok := m.Translate(codon); ok {
				totals[aa] += weight
			}
		}
	}

	expansions := make([]m.Expansion, 0, len(codons))

	for _, codon := range codons {
		literal, err := rules.Expand(codon)
		if err != nil {
			return nil, fmt.Errorf("expand: %w", err)
		}

		expansion := m.Expansion{Codon: codon, Codons: literal}

		var aas []m.AminoAcid

		for _, c := range literal {
			aa, _ := m.Translate(c)
			if aa == m.AnyAminoAcid {
				expansion.HasStop = true
			} else {
				aas = append(aas, aa)
			}

			if totals != nil {
				fraction := 0.0
				if total := totals[aa]; total > 0 {
					fraction = table[c] / total
				}

				expansion.Frequencies = append(expansion.Frequencies, fraction)
			}
		}

		expansion.AminoAcids = m.NewAminoAcidSet(aas...)
		expansions = append(expansions, expansion)
	}

	return expansions, nil
}

// parseLetterList reads amino acids given as "D,E", "D E" or "DE".
func parseLetterList(list string) (m.AminoAcidSet, error) {
	var aas []m.AminoAcid

	for _, r := range strings.ToUpper(list) {
		switch {
		case r == ',' || r == ' ' || r == '\t':
			continue
		case r > 0xff:
			return m.AminoAcidSet{}, fmt.Errorf("%w: unknown amino acid %q", ErrInvalidEditSyntax, r)
		}

		aa := m.AminoAcid(r)
		if !aa.IsStandard() && aa != m.AnyAminoAcid {
			return m.AminoAcidSet{}, fmt.Errorf("%w: unknown amino acid %q", ErrInvalidEditSyntax, r)
		}

		aas = append(aas, aa)
	}

	if len(aas) == 0 {
		return m.AminoAcidSet{}, fmt.Errorf("%w: no amino acids given", ErrInvalidEditSyntax)
	}

	return m.NewAminoAcidSet(aas...), nil
}

// ConcreteCount returns how many literal sequences the degenerate variants
// expand into, stopping early once limit is passed (limit 0 means no limit).
func ConcreteCount(rules m.Rules, variants []string, limit int) (int, error) {
	total := 0

	for _, variant := range variants {
		count := 1

		for i := 0; i+3 <= len(variant); i += 3 {
			literal, err := rules.Expand(m.Codon(variant[i : i+3]))
			if err != nil {
				return 0, err
			}

			count *= len(literal)
			if limit > 0 && count > limit {
				return count, nil
			}
		}

		total += count
		if limit > 0 && total > limit {
			return total, nil
		}
	}

	return total, nil
}

// expandVariant calls emit for every literal sequence of one degenerate
// variant, first codon varying slowest.
func expandVariant(rules m.Rules, variant string, emit func(string) error) error {
	options := make([][]m.Codon, 0, len(variant)/3)

	for i := 0; i+3 <= len(variant); i += 3 {
		literal, err := rules.Expand(m.Codon(variant[i : i+3]))
		if err != nil {
			return err
		}

		options = append(options, literal)
	}

	var walk func(depth int, prefix string) error

	walk = func(depth int, prefix string) error {
		if depth == len(options) {
			return emit(prefix)
		}

		for _, codon := range options[depth] {
			if err := walk(depth+1, prefix+string(codon)); err != nil {
				return err
			}
		}

		return nil
	}

	return walk(0, "")
}

// writeConcrete spills every literal sequence to disk first so that the
// output file is only created once the whole expansion has succeeded.
func (w *workflow) writeConcrete(ctx context.Context, path m.Path, rules m.Rules, variants []string) error {
	count, err := ConcreteCount(rules, variants, w.opts.MaxConcrete)
	if err != nil {
		return err
	}

	if w.opts.MaxConcrete > 0 && count > w.opts.MaxConcrete {
		return fmt.Errorf("%w: more than %d literal sequences", ErrTooManyVariants, w.opts.MaxConcrete)
	}

	spill, err := pkg.NewFileSpill[string](w.opts.SpillDir)
	if err != nil {
		return err
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Error("Failed to close spill", "path", spill.Path(), "error", err)
		}
	}()

	for _, variant := range variants {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := expandVariant(rules, variant, spill.Append); err != nil {
			return err
		}
	}

	file, err := os.Create(string(path))
	if err != nil {
		slog.Error("Failed to create concrete output", "path", path, "error", err)
		return fmt.Errorf("create %s: %w", path, err)
	}

	out := bufio.NewWriter(file)

	rangeErr := spill.Range(func(_ uint64, sequence string) error {
		_, err := out.WriteString(sequence + "\n")
		return err
	})
	flushErr := out.Flush()
	closeErr := file.Close()

	if err := firstError(rangeErr, flushErr, closeErr); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Info("Wrote concrete sequences", "path", path, "count", spill.Len())

	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
