package domain

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ridge.dev/pkg/ridge/internal/model"
)

func countingResolver(calls *atomic.Int32, codons []m.Codon) Resolver {
	return ResolverFunc(func(_ context.Context, _ m.AminoAcidSet, _ m.UsageTable, _ m.Policy) ([]m.Codon, error) {
		calls.Add(1)
		return codons, nil
	})
}

func TestNewCacheKey_ValueEquality(t *testing.T) {
	a := NewCacheKey(m.ParseAminoAcidSet("DE"), m.UsageTable{"GAT": 0.6, "GAA": 0.4}, rankPolicy(2))
	b := NewCacheKey(m.NewAminoAcidSet('E', 'D', 'E'), m.UsageTable{"GAA": 0.4, "GAT": 0.6}, m.Policy{Method: m.MethodRank, Rank: 2})

	assert.Equal(t, a, b)
	assert.Equal(t, a.String(), b.String())

	tests := []struct {
		name string
		key  CacheKey
	}{
		{"different set", NewCacheKey(m.ParseAminoAcidSet("D"), m.UsageTable{"GAT": 0.6, "GAA": 0.4}, rankPolicy(2))},
		{"different table", NewCacheKey(m.ParseAminoAcidSet("DE"), m.UsageTable{"GAT": 0.5, "GAA": 0.4}, rankPolicy(2))},
		{"different threshold", NewCacheKey(m.ParseAminoAcidSet("DE"), m.UsageTable{"GAT": 0.6, "GAA": 0.4}, rankPolicy(3))},
		{"different method", NewCacheKey(m.ParseAminoAcidSet("DE"), m.UsageTable{"GAT": 0.6, "GAA": 0.4}, m.Policy{Method: m.MethodUsage, Fraction: 2})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, a, tt.key)
		})
	}
}

func TestCachingResolver_ValueEqualArgumentsResolveOnce(t *testing.T) {
	var calls atomic.Int32

	cache := NewCodonCache()
	resolver := NewCachingResolver(countingResolver(&calls, []m.Codon{"GAW"}), cache)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, m.ParseAminoAcidSet("DE"), m.UsageTable{"GAT": 0.6, "GAA": 0.4}, rankPolicy(2))
	require.NoError(t, err)

	second, err := resolver.Resolve(ctx, m.NewAminoAcidSet('E', 'D'), m.UsageTable{"GAA": 0.4, "GAT": 0.6}, m.Policy{Method: m.MethodRank, Rank: 2})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, cache.Len())

	_, err = resolver.Resolve(ctx, m.ParseAminoAcidSet("C"), m.UsageTable{"GAT": 0.6, "GAA": 0.4}, rankPolicy(2))
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, cache.Len())
}

func TestCachingResolver_ConcurrentCallersShareOneComputation(t *testing.T) {
	var calls atomic.Int32

	resolver := NewCachingResolver(countingResolver(&calls, []m.Codon{"TGY"}), NewCodonCache())

	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			codons, err := resolver.Resolve(context.Background(), m.ParseAminoAcidSet("C"), m.UsageTable{"TGT": 1}, rankPolicy(1))
			assert.NoError(t, err)
			assert.Equal(t, []m.Codon{"TGY"}, codons)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestCachingResolver_ReturnsIsolatedCopies(t *testing.T) {
	var calls atomic.Int32

	resolver := NewCachingResolver(countingResolver(&calls, []m.Codon{"GAT", "GAA"}), NewCodonCache())
	ctx := context.Background()
	set := m.ParseAminoAcidSet("DE")
	table := m.UsageTable{"GAT": 1}

	first, err := resolver.Resolve(ctx, set, table, rankPolicy(2))
	require.NoError(t, err)

	first[0] = "NNN"

	second, err := resolver.Resolve(ctx, set, table, rankPolicy(2))
	require.NoError(t, err)
	assert.Equal(t, []m.Codon{"GAT", "GAA"}, second)
}

func TestCachingResolver_InnerSeesPrivateTable(t *testing.T) {
	inner := ResolverFunc(func(_ context.Context, _ m.AminoAcidSet, table m.UsageTable, _ m.Policy) ([]m.Codon, error) {
		delete(table, "GAT")
		table["TTT"] = 9

		return []m.Codon{"GAT"}, nil
	})

	table := m.UsageTable{"GAT": 0.6, "GAA": 0.4}

	_, err := NewCachingResolver(inner, NewCodonCache()).Resolve(context.Background(), m.ParseAminoAcidSet("D"), table, rankPolicy(1))
	require.NoError(t, err)

	assert.Equal(t, m.UsageTable{"GAT": 0.6, "GAA": 0.4}, table)
}

func TestCachingResolver_ErrorsAreNotCached(t *testing.T) {
	var calls atomic.Int32

	boom := errors.New("boom")
	inner := ResolverFunc(func(_ context.Context, _ m.AminoAcidSet, _ m.UsageTable, _ m.Policy) ([]m.Codon, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}

		return []m.Codon{"ATG"}, nil
	})

	cache := NewCodonCache()
	resolver := NewCachingResolver(inner, cache)
	ctx := context.Background()

	_, err := resolver.Resolve(ctx, m.ParseAminoAcidSet("M"), m.UsageTable{"ATG": 1}, rankPolicy(1))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Len())

	codons, err := resolver.Resolve(ctx, m.ParseAminoAcidSet("M"), m.UsageTable{"ATG": 1}, rankPolicy(1))
	require.NoError(t, err)
	assert.Equal(t, []m.Codon{"ATG"}, codons)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCachingResolver_EmptyListIsResolverFailure(t *testing.T) {
	var calls atomic.Int32

	resolver := NewCachingResolver(countingResolver(&calls, nil), NewCodonCache())

	_, err := resolver.Resolve(context.Background(), m.ParseAminoAcidSet("M"), m.UsageTable{"ATG": 1}, rankPolicy(1))
	require.ErrorIs(t, err, ErrResolverFailure)
}

func TestCodonCache_Clear(t *testing.T) {
	var calls atomic.Int32

	cache := NewCodonCache()
	resolver := NewCachingResolver(countingResolver(&calls, []m.Codon{"ATG"}), cache)
	ctx := context.Background()

	_, err := resolver.Resolve(ctx, m.ParseAminoAcidSet("M"), m.UsageTable{"ATG": 1}, rankPolicy(1))
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())

	_, err = resolver.Resolve(ctx, m.ParseAminoAcidSet("M"), m.UsageTable{"ATG": 1}, rankPolicy(1))
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
