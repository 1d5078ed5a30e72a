// Package adapter contains the infrastructure ports of ridge: usage tables,
// IUPAC rules and result storage.
package adapter

import (
	"bufio"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	m "ridge.dev/pkg/ridge/internal/model"
)

//go:embed data/*.txt
var builtinData embed.FS

// ErrUnknownOrganism is returned for organism keys outside the catalogue.
var ErrUnknownOrganism = errors.New("unknown organism")

// catalogue lists the named usage tables in display order.
var catalogue = []m.Organism{
	{Key: "Ecoli", Name: "E. coli", File: "ecoli.txt"},
	{Key: "yeast", Name: "yeast", File: "yeast.txt"},
	{Key: "human", Name: "human", File: "hsapiens.txt"},
	{Key: "mouse", Name: "mouse", File: "mmusculus.txt"},
	{Key: "Dmel", Name: "D. melanogaster", File: "dmelanogaster.txt"},
	{Key: "Cele", Name: "C. elegans", File: "celegans.txt"},
}

// UsageSource loads codon usage tables, either from the organism catalogue or
// from a table file supplied by the user.
type UsageSource interface {
	// Organisms lists the catalogue.
	Organisms(ctx context.Context) []m.Organism
	// LoadOrganism loads the table of a catalogued organism.
	LoadOrganism(ctx context.Context, key string) (m.UsageTable, m.Organism, error)
	// LoadFile loads a user supplied table.
	LoadFile(ctx context.Context, path m.Path) (m.UsageTable, error)
}

// LocalUsageSource reads tables from a directory, falling back to the tables
// compiled into the binary.
type LocalUsageSource struct {
	dir string
}

// NewLocalUsageSource returns a LocalUsageSource looking in dir first. An
// empty dir uses only the built-in tables.
func NewLocalUsageSource(dir string) *LocalUsageSource {
	return &LocalUsageSource{dir: dir}
}

// Organisms returns a copy of the catalogue.
func (s *LocalUsageSource) Organisms(_ context.Context) []m.Organism {
	return append([]m.Organism(nil), catalogue...)
}

// LookupOrganism finds a catalogue entry by key, ignoring case.
func LookupOrganism(key string) (m.Organism, bool) {
	for _, organism := range catalogue {
		if strings.EqualFold(organism.Key, strings.TrimSpace(key)) {
			return organism, true
		}
	}

	return m.Organism{}, false
}

// LoadOrganism loads the table of key.
func (s *LocalUsageSource) LoadOrganism(ctx context.Context, key string) (m.UsageTable, m.Organism, error) {
	organism, ok := LookupOrganism(key)
	if !ok {
		return nil, m.Organism{}, fmt.Errorf("%w: %q", ErrUnknownOrganism, key)
	}

	if err := ctx.Err(); err != nil {
		return nil, m.Organism{}, err
	}

	if s.dir != "" {
		path := filepath.Join(s.dir, organism.File)

		f, err := os.Open(path)
		if err == nil {
			defer func() {
				_ = f.Close()
			}()

			table, err := ParseUsageTable(f)
			if err != nil {
				return nil, m.Organism{}, fmt.Errorf("usage table %s: %w", path, err)
			}

			return table, organism, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("Failed to open usage table", "path", path, "error", err)
			return nil, m.Organism{}, fmt.Errorf("open usage table: %w", err)
		}
	}

	f, err := builtinData.Open("data/" + organism.File)
	if err != nil {
		return nil, m.Organism{}, fmt.Errorf("usage table for %s is not built in; place %s in the usage directory: %w", organism.Key, organism.File, err)
	}

	defer func() {
		_ = f.Close()
	}()

	table, err := ParseUsageTable(f)
	if err != nil {
		return nil, m.Organism{}, fmt.Errorf("built-in usage table %s: %w", organism.File, err)
	}

	return table, organism, nil
}

// LoadFile loads a user supplied table.
func (s *LocalUsageSource) LoadFile(ctx context.Context, path m.Path) (m.UsageTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(string(path))
	if err != nil {
		slog.Error("Failed to open usage table", "path", path, "error", err)
		return nil, fmt.Errorf("open usage table: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	table, err := ParseUsageTable(f)
	if err != nil {
		return nil, fmt.Errorf("usage table %s: %w", path, err)
	}

	return table, nil
}

// ParseUsageTable reads one codon per line as "CODON WEIGHT" or
// "CODON AA WEIGHT". Blank lines and lines starting with # are skipped. When
// the amino acid column is present it must agree with the standard code; stop
// codons may be written as X or *.
func ParseUsageTable(r io.Reader) (m.UsageTable, error) {
	table := make(m.UsageTable)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 2 or 3 fields, got %d", lineNo, len(fields))
		}

		codon := m.Codon(strings.ToUpper(strings.ReplaceAll(fields[0], "U", "T")))

		aa, ok := m.Translate(codon)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid codon %q", lineNo, fields[0])
		}

		if len(fields) == 3 {
			stated := strings.ToUpper(fields[1])
			if stated == "*" {
				stated = string(m.AnyAminoAcid)
			}

			if stated != aa.String() {
				return nil, fmt.Errorf("line %d: codon %s encodes %s, not %s", lineNo, codon, aa, fields[1])
			}
		}

		weight, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil || weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("line %d: invalid weight %q", lineNo, fields[len(fields)-1])
		}

		if _, dup := table[codon]; dup {
			return nil, fmt.Errorf("line %d: duplicate codon %s", lineNo, codon)
		}

		table[codon] = weight
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(table) == 0 {
		return nil, errors.New("no codons found")
	}

	return table, nil
}
