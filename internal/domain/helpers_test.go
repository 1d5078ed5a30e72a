package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ridge.dev/pkg/ridge/internal/adapter"
	m "ridge.dev/pkg/ridge/internal/model"
)

func iupacRules(t *testing.T) m.Rules {
	t.Helper()

	rules, err := adapter.NewLocalRulesSource("").Load(context.Background())
	require.NoError(t, err)

	return rules
}

func ecoliTable(t *testing.T) m.UsageTable {
	t.Helper()

	table, _, err := adapter.NewLocalUsageSource("").LoadOrganism(context.Background(), "Ecoli")
	require.NoError(t, err)

	return table
}

func rankPolicy(rank int) m.Policy {
	return m.Policy{Method: m.MethodRank, Rank: rank}
}

// fakeResolver answers from a fixed map keyed by the canonical set.
func fakeResolver(answers map[string][]m.Codon) Resolver {
	return ResolverFunc(func(_ context.Context, set m.AminoAcidSet, _ m.UsageTable, _ m.Policy) ([]m.Codon, error) {
		return answers[set.String()], nil
	})
}
