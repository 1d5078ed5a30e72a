package domain

import (
	"fmt"

	m "ridge.dev/pkg/ridge/internal/model"
)

// rankedCodon is a usage table entry with its rank (1 = most used) and its
// share of the usage of its amino acid.
type rankedCodon struct {
	codon    m.Codon
	rank     int
	fraction float64
}

type aminoGroup struct {
	aa     m.AminoAcid
	codons []rankedCodon
}

// restrictUsage keeps the table entries of the amino acids in set, in set order.
func restrictUsage(set m.AminoAcidSet, table m.UsageTable) ([]aminoGroup, error) {
	byAA := table.ByAminoAcid()
	groups := make([]aminoGroup, 0, set.Len())

	for _, aa := range set.Members() {
		usage := byAA[aa]
		if len(usage) == 0 {
			return nil, fmt.Errorf("%w: usage table has no codons for %s", ErrResolverFailure, aa)
		}

		total := 0.0
		for _, u := range usage {
			total += u.Weight
		}

		codons := make([]rankedCodon, 0, len(usage))

		for i, u := range usage {
			fraction := 0.0
			if total > 0 {
				fraction = u.Weight / total
			}

			codons = append(codons, rankedCodon{codon: u.Codon, rank: i + 1, fraction: fraction})
		}

		groups = append(groups, aminoGroup{aa: aa, codons: codons})
	}

	return groups, nil
}

// reduceByRank keeps the rank most used codons of every amino acid.
func reduceByRank(groups []aminoGroup, rank int) []aminoGroup {
	out := make([]aminoGroup, 0, len(groups))

	for _, g := range groups {
		keep := g.codons
		if len(keep) > rank {
			keep = keep[:rank]
		}

		out = append(out, aminoGroup{aa: g.aa, codons: keep})
	}

	return out
}

// reduceByUsage keeps codons whose usage fraction is strictly above threshold.
// An amino acid left without codons is a resolver failure.
func reduceByUsage(groups []aminoGroup, threshold float64) ([]aminoGroup, error) {
	out := make([]aminoGroup, 0, len(groups))

	for _, g := range groups {
		keep := make([]rankedCodon, 0, len(g.codons))

		for _, c := range g.codons {
			if c.fraction > threshold {
				keep = append(keep, c)
			}
		}

		if len(keep) == 0 {
			return nil, fmt.Errorf("%w: no codons above usage %v for %s", ErrResolverFailure, threshold, g.aa)
		}

		out = append(out, aminoGroup{aa: g.aa, codons: keep})
	}

	return out, nil
}

func reduceGroups(groups []aminoGroup, policy m.Policy) ([]aminoGroup, error) {
	switch policy.Method {
	case m.MethodRank:
		if policy.Rank < 1 {
			return nil, fmt.Errorf("%w: rank threshold %d", ErrResolverFailure, policy.Rank)
		}

		return reduceByRank(groups, policy.Rank), nil
	case m.MethodUsage:
		return reduceByUsage(groups, policy.Fraction)
	}

	return nil, fmt.Errorf("unknown reduction method %q", policy.Method)
}
