package domain

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	m "ridge.dev/pkg/ridge/internal/model"
)

// CacheKey identifies one resolver request by value.
type CacheKey struct {
	Set       string
	Table     string
	Method    m.Method
	Threshold string
}

// NewCacheKey derives the key from the canonical form of each argument.
func NewCacheKey(set m.AminoAcidSet, table m.UsageTable, policy m.Policy) CacheKey {
	return CacheKey{
		Set:       set.String(),
		Table:     table.Fingerprint(),
		Method:    policy.Method,
		Threshold: policy.Canonical(),
	}
}

func (k CacheKey) String() string {
	return k.Set + "|" + k.Table + "|" + string(k.Method) + "|" + k.Threshold
}

// CodonCache memoizes resolver results for the lifetime of its owner.
// Concurrent requests for the same key share one computation. Errors are not
// cached. There is no eviction beyond Clear.
type CodonCache struct {
	mu      sync.RWMutex
	entries map[CacheKey][]m.Codon
	group   singleflight.Group
}

// NewCodonCache returns an empty cache.
func NewCodonCache() *CodonCache {
	return &CodonCache{
		entries: make(map[CacheKey][]m.Codon),
	}
}

// GetOrCompute returns the cached codons for key, calling compute on a miss.
func (c *CodonCache) GetOrCompute(ctx context.Context, key CacheKey, compute func(ctx context.Context) ([]m.Codon, error)) ([]m.Codon, error) {
	if codons, ok := c.lookup(key); ok {
		return codons, nil
	}

	value, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		if codons, ok := c.lookup(key); ok {
			return codons, nil
		}

		codons, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		stored := append([]m.Codon(nil), codons...)

		c.mu.Lock()
		c.entries[key] = stored
		c.mu.Unlock()

		return stored, nil
	})
	if err != nil {
		return nil, err
	}

	codons, _ := value.([]m.Codon)

	return append([]m.Codon(nil), codons...), nil
}

func (c *CodonCache) lookup(key CacheKey) ([]m.Codon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	codons, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	return append([]m.Codon(nil), codons...), true
}

// Len returns the number of cached entries.
func (c *CodonCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear drops every entry. Call it when usage tables or rules change.
func (c *CodonCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[CacheKey][]m.Codon)
}
