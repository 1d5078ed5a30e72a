package model

import (
	"fmt"
	"math/bits"
)

// Base masks, one bit per nucleotide.
const (
	BaseA uint8 = 1 << iota
	BaseC
	BaseG
	BaseT
)

// BaseMask returns the mask of a literal nucleotide, or 0 for anything else.
func BaseMask(b byte) uint8 {
	switch b {
	case 'A':
		return BaseA
	case 'C':
		return BaseC
	case 'G':
		return BaseG
	case 'T':
		return BaseT
	}

	return 0
}

// MaskSize returns how many nucleotides a mask covers.
func MaskSize(mask uint8) int {
	return bits.OnesCount8(mask)
}

// Rules maps IUPAC symbols to the nucleotides they stand for.
type Rules struct {
	symbols map[byte]uint8
	inverse map[uint8]byte
}

// NewRules builds Rules from symbol -> nucleotides, e.g. 'R' -> "AG".
func NewRules(table map[byte]string) (Rules, error) {
	r := Rules{
		symbols: make(map[byte]uint8, len(table)),
		inverse: make(map[uint8]byte, len(table)),
	}

	for symbol, bases := range table {
		var mask uint8

		for i := 0; i < len(bases); i++ {
			bm := BaseMask(bases[i])
			if bm == 0 {
				return Rules{}, fmt.Errorf("rule %q: invalid nucleotide %q", symbol, bases[i])
			}

			mask |= bm
		}

		if mask == 0 {
			return Rules{}, fmt.Errorf("rule %q: no nucleotides", symbol)
		}

		r.symbols[symbol] = mask

		if prev, ok := r.inverse[mask]; !ok || symbol < prev {
			r.inverse[mask] = symbol
		}
	}

	return r, nil
}

// Len returns the number of symbols.
func (r Rules) Len() int {
	return len(r.symbols)
}

// Mask returns the nucleotide mask of symbol.
func (r Rules) Mask(symbol byte) (uint8, bool) {
	mask, ok := r.symbols[symbol]
	return mask, ok
}

// Symbol returns the symbol standing for exactly the nucleotides in mask.
func (r Rules) Symbol(mask uint8) (byte, bool) {
	symbol, ok := r.inverse[mask]
	return symbol, ok
}

// Expand lists the literal codons of a degenerate codon in ACGT order.
func (r Rules) Expand(codon Codon) ([]Codon, error) {
	if len(codon) != 3 {
		return nil, fmt.Errorf("codon %q: expected 3 symbols", codon)
	}

	options := make([][]byte, 3)

	for i := 0; i < 3; i++ {
		mask, ok := r.symbols[codon[i]]
		if !ok {
			return nil, fmt.Errorf("codon %q: unknown symbol %q", codon, codon[i])
		}

		for _, b := range []byte("ACGT") {
			if mask&BaseMask(b) != 0 {
				options[i] = append(options[i], b)
			}
		}
	}

	out := make([]Codon, 0, len(options[0])*len(options[1])*len(options[2]))

	for _, a := range options[0] {
		for _, b := range options[1] {
			for _, c := range options[2] {
				out = append(out, Codon([]byte{a, b, c}))
			}
		}
	}

	return out, nil
}

// Expansion is a degenerate codon with the literal codons and amino acids it covers.
type Expansion struct {
	Codon       Codon        `yaml:"codon"`
	Codons      []Codon      `yaml:"codons"`
	AminoAcids  AminoAcidSet `yaml:"amino_acids"`
	HasStop     bool         `yaml:"has_stop"`
	Frequencies []float64    `yaml:"frequencies,omitempty"`
}
