package model

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strconv"
)

// Codon is a three-symbol nucleotide string. It is either literal (ACGT) or
// degenerate (IUPAC ambiguity codes).
type Codon string

// standardCode maps every literal codon to its amino acid. Stop codons map to X.
var standardCode = map[Codon]AminoAcid{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": 'X', "TAG": 'X',
	"TGT": 'C', "TGC": 'C', "TGA": 'X', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate returns the amino acid encoded by a literal codon.
func Translate(codon Codon) (AminoAcid, bool) {
	aa, ok := standardCode[codon]
	return aa, ok
}

// CodonUsage is one codon of a usage table with its weight.
type CodonUsage struct {
	Codon  Codon
	Weight float64
}

// UsageTable maps literal codons to usage weights. Tables are shared and
// read-only; anything that filters destructively works on a Clone.
type UsageTable map[Codon]float64

// Clone returns an isolated copy of the table.
func (t UsageTable) Clone() UsageTable {
	out := make(UsageTable, len(t))
	for codon, weight := range t {
		out[codon] = weight
	}

	return out
}

// Fingerprint returns a stable hash of the table contents. Two tables with the
// same codons and weights always share a fingerprint.
func (t UsageTable) Fingerprint() string {
	codons := make([]string, 0, len(t))
	for codon := range t {
		codons = append(codons, string(codon))
	}

	sort.Strings(codons)

	h := sha256.New()
	for _, codon := range codons {
		fmt.Fprintf(h, "%s=%s;", codon, strconv.FormatFloat(t[Codon(codon)], 'g', -1, 64))
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}

// ByAminoAcid groups the table by encoded amino acid. Each group is sorted by
// weight, highest first, ties broken by codon.
func (t UsageTable) ByAminoAcid() map[AminoAcid][]CodonUsage {
	out := make(map[AminoAcid][]CodonUsage)

	for codon, weight := range t {
		aa, ok := Translate(codon)
		if !ok {
			continue
		}

		out[aa] = append(out[aa], CodonUsage{Codon: codon, Weight: weight})
	}

	for aa := range out {
		group := out[aa]
		sort.Slice(group, func(i, j int) bool {
			if group[i].Weight != group[j].Weight {
				return group[i].Weight > group[j].Weight
			}

			return group[i].Codon < group[j].Codon
		})
	}

	return out
}
