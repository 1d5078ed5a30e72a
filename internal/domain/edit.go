// Package domain contains the variant design workflow: edit parsing, codon
// resolution and sequence assembly.
package domain

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	m "ridge.dev/pkg/ridge/internal/model"
)

var editPattern = regexp.MustCompile(`^([A-Z])(\d+)(-?)([A-Z]+)$`)

// ParseEdit parses one token of the form <AA><position>[-]<AA+>, e.g. "A12DE"
// or "A12-DE". Positions are 1-based in the token and 0-based in the result.
// The "-" marker inverts the targets against the standard alphabet.
func ParseEdit(token string) (m.Edit, error) {
	match := editPattern.FindStringSubmatch(token)
	if match == nil {
		return m.Edit{}, &EditError{Token: token, Err: ErrInvalidEditSyntax}
	}

	pos, err := strconv.Atoi(match[2])
	if errors.Is(err, strconv.ErrRange) {
		// Too large for any backbone; FoldEdits reports it as out of range.
		pos = math.MaxInt
	} else if err != nil || pos < 1 {
		return m.Edit{}, &EditError{Token: token, Err: ErrInvalidEditSyntax, Reason: "position must be 1 or greater"}
	}

	inverted := match[3] == "-"
	named := m.ParseAminoAcidSet(match[4])

	targets := named
	if inverted {
		targets = named.Complement()
	}

	if targets.IsEmpty() {
		return m.Edit{}, &EditError{Token: token, Err: ErrInvalidEditSyntax, Reason: "no target residues"}
	}

	return m.Edit{
		Token:    token,
		Original: m.AminoAcid(match[1][0]),
		Position: pos - 1,
		Targets:  targets,
		Inverted: inverted,
	}, nil
}

// ParseEdits parses a comma separated list of edit tokens. Empty tokens, such
// as those left by trailing or doubled commas, are skipped.
func ParseEdits(edits string) ([]m.Edit, error) {
	tokens := strings.Split(edits, ",")
	out := make([]m.Edit, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		edit, err := ParseEdit(token)
		if err != nil {
			return nil, err
		}

		out = append(out, edit)
	}

	return out, nil
}
