package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	m "ridge.dev/pkg/ridge/internal/model"
)

// RulesSource loads the IUPAC rules used to compress codons.
type RulesSource interface {
	Load(ctx context.Context) (m.Rules, error)
}

// LocalRulesSource reads rules from a file, or from the built-in rules.txt
// when no path is configured.
type LocalRulesSource struct {
	path string
}

// NewLocalRulesSource returns a LocalRulesSource for path.
func NewLocalRulesSource(path string) *LocalRulesSource {
	return &LocalRulesSource{path: path}
}

// Load parses the configured rules file.
func (s *LocalRulesSource) Load(ctx context.Context) (m.Rules, error) {
	if err := ctx.Err(); err != nil {
		return m.Rules{}, err
	}

	var (
		r   io.ReadCloser
		err error
	)

	if s.path == "" {
		r, err = builtinData.Open("data/rules.txt")
	} else {
		r, err = os.Open(s.path)
	}

	if err != nil {
		slog.Error("Failed to open rules", "path", s.path, "error", err)
		return m.Rules{}, fmt.Errorf("open rules: %w", err)
	}

	defer func() {
		_ = r.Close()
	}()

	return ParseRules(r)
}

// ParseRules reads "SYMBOL BASES" lines, e.g. "R AG" or "R A,G".
func ParseRules(r io.Reader) (m.Rules, error) {
	table := make(map[byte]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields[0]) != 1 {
			return m.Rules{}, fmt.Errorf("line %d: expected SYMBOL BASES", lineNo)
		}

		symbol := strings.ToUpper(fields[0])[0]
		bases := strings.ToUpper(strings.ReplaceAll(strings.Join(fields[1:], ""), ",", ""))

		if _, dup := table[symbol]; dup {
			return m.Rules{}, fmt.Errorf("line %d: duplicate symbol %c", lineNo, symbol)
		}

		table[symbol] = bases
	}

	if err := scanner.Err(); err != nil {
		return m.Rules{}, err
	}

	if len(table) == 0 {
		return m.Rules{}, errors.New("no rules found")
	}

	return m.NewRules(table)
}
