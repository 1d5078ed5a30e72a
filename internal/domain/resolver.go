package domain

import (
	"context"
	"fmt"
	"log/slog"

	m "ridge.dev/pkg/ridge/internal/model"
)

// Resolver reduces an amino acid set to the codons that realise it under a
// usage table and policy. The returned list is authoritative and its order is
// kept by callers.
type Resolver interface {
	Resolve(ctx context.Context, set m.AminoAcidSet, table m.UsageTable, policy m.Policy) ([]m.Codon, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(ctx context.Context, set m.AminoAcidSet, table m.UsageTable, policy m.Policy) ([]m.Codon, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, set m.AminoAcidSet, table m.UsageTable, policy m.Policy) ([]m.Codon, error) {
	return f(ctx, set, table, policy)
}

type cachingResolver struct {
	inner Resolver
	cache *CodonCache
}

// NewCachingResolver memoizes inner through cache. The inner resolver only
// ever sees a private copy of the usage table.
func NewCachingResolver(inner Resolver, cache *CodonCache) Resolver {
	return &cachingResolver{
		inner: inner,
		cache: cache,
	}
}

func (r *cachingResolver) Resolve(ctx context.Context, set m.AminoAcidSet, table m.UsageTable, policy m.Policy) ([]m.Codon, error) {
	key := NewCacheKey(set, table, policy)

	return r.cache.GetOrCompute(ctx, key, func(ctx context.Context) ([]m.Codon, error) {
		slog.Debug("Resolving codons", "set", key.Set, "method", key.Method, "threshold", key.Threshold)

		codons, err := r.inner.Resolve(ctx, set, table.Clone(), policy)
		if err != nil {
			return nil, err
		}

		if len(codons) == 0 {
			return nil, fmt.Errorf("%w: no codons for %s", ErrResolverFailure, key.Set)
		}

		return codons, nil
	})
}
