package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Method selects how codons are reduced per amino acid.
type Method string

const (
	// MethodRank keeps the N most used codons of each amino acid.
	MethodRank Method = "rank"
	// MethodUsage keeps codons whose usage fraction is above a cutoff.
	MethodUsage Method = "usage"
)

// ParseMethod accepts "rank", "usage" and the long form "usage-fraction".
func ParseMethod(value string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "rank", "r":
		return MethodRank, nil
	case "usage", "usage-fraction", "fraction", "u":
		return MethodUsage, nil
	}

	return "", fmt.Errorf("unknown reduction method %q", value)
}

// Policy is a reduction method with its parsed threshold.
type Policy struct {
	Method   Method
	Rank     int
	Fraction float64
}

// ParsePolicy parses the threshold string according to method.
func ParsePolicy(method Method, threshold string) (Policy, error) {
	threshold = strings.TrimSpace(threshold)

	switch method {
	case MethodRank:
		rank, err := strconv.Atoi(threshold)
		if err != nil {
			return Policy{}, fmt.Errorf("rank threshold %q: %w", threshold, err)
		}

		if rank < 1 {
			return Policy{}, fmt.Errorf("rank threshold must be at least 1, got %d", rank)
		}

		return Policy{Method: method, Rank: rank}, nil
	case MethodUsage:
		fraction, err := strconv.ParseFloat(threshold, 64)
		if err != nil {
			return Policy{}, fmt.Errorf("usage threshold %q: %w", threshold, err)
		}

		if fraction < 0 || fraction >= 1 {
			return Policy{}, fmt.Errorf("usage threshold must be in [0, 1), got %v", fraction)
		}

		return Policy{Method: method, Fraction: fraction}, nil
	}

	return Policy{}, fmt.Errorf("unknown reduction method %q", method)
}

// Canonical renders the threshold so that equal policies render identically.
func (p Policy) Canonical() string {
	if p.Method == MethodRank {
		return strconv.Itoa(p.Rank)
	}

	return strconv.FormatFloat(p.Fraction, 'g', -1, 64)
}

func (p Policy) String() string {
	return string(p.Method) + ":" + p.Canonical()
}

// UsageSelector names where a usage table comes from: a catalogued organism or
// a table file supplied by the user.
type UsageSelector struct {
	Organism string
	Table    Path
}

// Organism is one entry of the named usage-table catalogue.
type Organism struct {
	Key  string
	Name string
	File string
}

// PositionCodons records the codons chosen for one backbone position.
type PositionCodons struct {
	Position int          `yaml:"position"`
	Residue  AminoAcid    `yaml:"residue"`
	Set      AminoAcidSet `yaml:"set"`
	Edited   bool         `yaml:"edited"`
	Codons   []Codon      `yaml:"codons"`
}

// DesignResult is the outcome of one design request. Everything but Variants
// and Positions is echoed back for display.
type DesignResult struct {
	Organism  string           `yaml:"organism"`
	Backbone  string           `yaml:"backbone"`
	Edits     string           `yaml:"edits"`
	Method    Method           `yaml:"method"`
	Threshold string           `yaml:"threshold"`
	Positions []PositionCodons `yaml:"positions"`
	Variants  []string         `yaml:"variants"`
}

// Reduction is the reduced codon list for one amino acid set.
type Reduction struct {
	Organism   string       `yaml:"organism"`
	Set        AminoAcidSet `yaml:"set"`
	Removed    AminoAcidSet `yaml:"removed"`
	Method     Method       `yaml:"method"`
	Threshold  string       `yaml:"threshold"`
	Codons     []Codon      `yaml:"codons"`
	Expansions []Expansion  `yaml:"expansions"`
}

// Path represents a file system path.
type Path string
