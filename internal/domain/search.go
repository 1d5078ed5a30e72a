package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"sort"

	"golang.org/x/sync/errgroup"

	m "ridge.dev/pkg/ridge/internal/model"
)

// Search defaults.
const (
	DefaultSearchWorkers   = 3
	DefaultSearchMaxStates = 1 << 22
)

// SearchOptions bounds the codon search.
type SearchOptions struct {
	// Workers is the number of goroutines enumerating degenerate codons.
	Workers int
	// MaxStates caps how many partial covers are explored for one set.
	MaxStates int
}

type searchResolver struct {
	rules m.Rules
	masks []uint8
	opts  SearchOptions
}

// NewSearchResolver returns a Resolver that filters the usage table by policy,
// then looks for the fewest degenerate codons that together encode every
// amino acid of the set exactly once.
func NewSearchResolver(rules m.Rules, opts SearchOptions) Resolver {
	if opts.Workers < 1 {
		opts.Workers = DefaultSearchWorkers
	}

	if opts.MaxStates < 1 {
		opts.MaxStates = DefaultSearchMaxStates
	}

	return &searchResolver{
		rules: rules,
		masks: expressibleMasks(rules),
		opts:  opts,
	}
}

// expressibleMasks lists the nucleotide masks the rules have a symbol for.
func expressibleMasks(rules m.Rules) []uint8 {
	var masks []uint8

	for mask := uint8(1); mask <= m.BaseA|m.BaseC|m.BaseG|m.BaseT; mask++ {
		if _, ok := rules.Symbol(mask); ok {
			masks = append(masks, mask)
		}
	}

	return masks
}

// degenerateCodon is a codon whose literal codons are all kept and encode
// pairwise different amino acids. cover has one bit per amino acid group.
type degenerateCodon struct {
	codon m.Codon
	cover uint32
	score float64
}

type keptCodon struct {
	group  int
	ranked rankedCodon
}

func (r *searchResolver) Resolve(ctx context.Context, set m.AminoAcidSet, table m.UsageTable, policy m.Policy) ([]m.Codon, error) {
	if set.IsEmpty() {
		return nil, fmt.Errorf("%w: empty amino acid set", ErrResolverFailure)
	}

	groups, err := restrictUsage(set, table)
	if err != nil {
		return nil, err
	}

	groups, err = reduceGroups(groups, policy)
	if err != nil {
		return nil, err
	}

	candidates, err := r.candidates(ctx, groups, policy.Method)
	if err != nil {
		return nil, err
	}

	search := newCoverSearch(ctx, candidates, len(groups), policy.Method, r.opts.MaxStates)

	full := uint32(1)<<len(groups) - 1

	best, err := search.solve(full)
	if err != nil {
		return nil, err
	}

	slog.Debug("Searched codon covers", "set", set.String(), "candidates", len(candidates), "states", len(search.memo))

	if !best.ok {
		return nil, fmt.Errorf("%w: no degenerate codons cover %s", ErrResolverFailure, set)
	}

	return search.codons(full), nil
}

// candidates enumerates every expressible degenerate codon that only expands
// to kept codons of distinct amino acids. The first position is split across
// workers; the result is sorted by codon.
func (r *searchResolver) candidates(ctx context.Context, groups []aminoGroup, method m.Method) ([]degenerateCodon, error) {
	kept := make(map[m.Codon]keptCodon)

	for i, g := range groups {
		for _, c := range g.codons {
			kept[c.codon] = keptCodon{group: i, ranked: c}
		}
	}

	workers := r.opts.Workers
	if workers > len(r.masks) {
		workers = len(r.masks)
	}

	found := make([][]degenerateCodon, workers)
	group, groupCtx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		worker := w

		group.Go(func() error {
			for i := worker; i < len(r.masks); i += workers {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				for _, second := range r.masks {
					for _, third := range r.masks {
						c, ok := r.candidate([3]uint8{r.masks[i], second, third}, kept, method)
						if ok {
							found[worker] = append(found[worker], c)
						}
					}
				}
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var out []degenerateCodon
	for _, f := range found {
		out = append(out, f...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].codon < out[j].codon })

	return out, nil
}

func (r *searchResolver) candidate(masks [3]uint8, kept map[m.Codon]keptCodon, method m.Method) (degenerateCodon, bool) {
	var c degenerateCodon

	symbols := make([]byte, 3)
	for i, mask := range masks {
		symbols[i], _ = r.rules.Symbol(mask)
	}

	c.codon = m.Codon(symbols)

	for _, a := range maskBases(masks[0]) {
		for _, b := range maskBases(masks[1]) {
			for _, n := range maskBases(masks[2]) {
				k, ok := kept[m.Codon([]byte{a, b, n})]
				if !ok {
					return degenerateCodon{}, false
				}

				bit := uint32(1) << k.group
				if c.cover&bit != 0 {
					return degenerateCodon{}, false
				}

				c.cover |= bit

				if method == m.MethodRank {
					c.score += float64(k.ranked.rank)
				} else {
					c.score += k.ranked.fraction
				}
			}
		}
	}

	return c, true
}

func maskBases(mask uint8) []byte {
	out := make([]byte, 0, 4)

	for _, b := range []byte("ACGT") {
		if mask&m.BaseMask(b) != 0 {
			out = append(out, b)
		}
	}

	return out
}

// coverState is the best exact cover found for a set of remaining groups.
type coverState struct {
	ok     bool
	count  int
	score  float64
	choice int
}

// better orders covers: fewer codons first, then the policy score. Ties keep
// the earlier cover.
func (s coverState) better(other coverState, method m.Method) bool {
	if !other.ok {
		return s.ok
	}

	if !s.ok {
		return false
	}

	if s.count != other.count {
		return s.count < other.count
	}

	if method == m.MethodRank {
		return s.score < other.score
	}

	return s.score > other.score
}

// coverSearch finds a minimum exact cover of the amino acid groups by
// degenerate codons, memoized on the set of groups still uncovered.
type coverSearch struct {
	ctx        context.Context
	candidates []degenerateCodon
	byGroup    [][]int
	method     m.Method
	limit      int
	memo       map[uint32]coverState
}

func newCoverSearch(ctx context.Context, candidates []degenerateCodon, groups int, method m.Method, limit int) *coverSearch {
	byGroup := make([][]int, groups)

	for i, c := range candidates {
		for g := 0; g < groups; g++ {
			if c.cover&(1<<g) != 0 {
				byGroup[g] = append(byGroup[g], i)
			}
		}
	}

	return &coverSearch{
		ctx:        ctx,
		candidates: candidates,
		byGroup:    byGroup,
		method:     method,
		limit:      limit,
		memo:       make(map[uint32]coverState),
	}
}

// solve branches on the lowest uncovered group, so every cover is visited in
// one canonical order.
func (s *coverSearch) solve(remaining uint32) (coverState, error) {
	if remaining == 0 {
		return coverState{ok: true, choice: -1}, nil
	}

	if state, seen := s.memo[remaining]; seen {
		return state, nil
	}

	if len(s.memo) >= s.limit {
		return coverState{}, fmt.Errorf("%w: more than %d partial covers", ErrResolverFailure, s.limit)
	}

	if len(s.memo)%4096 == 0 {
		if err := s.ctx.Err(); err != nil {
			return coverState{}, err
		}
	}

	// Remaining only shrinks, so the placeholder is never read back.
	s.memo[remaining] = coverState{}

	var best coverState

	for _, idx := range s.byGroup[bits.TrailingZeros32(remaining)] {
		c := s.candidates[idx]
		if c.cover&^remaining != 0 {
			continue
		}

		rest, err := s.solve(remaining &^ c.cover)
		if err != nil {
			return coverState{}, err
		}

		if !rest.ok {
			continue
		}

		next := coverState{ok: true, count: rest.count + 1, score: rest.score + c.score, choice: idx}
		if next.better(best, s.method) {
			best = next
		}
	}

	s.memo[remaining] = best

	return best, nil
}

// codons walks the recorded choices from a solved state.
func (s *coverSearch) codons(remaining uint32) []m.Codon {
	var out []m.Codon

	for remaining != 0 {
		c := s.candidates[s.memo[remaining].choice]
		out = append(out, c.codon)
		remaining &^= c.cover
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
