package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"ridge.dev/pkg/ridge/internal/adapter"
	"ridge.dev/pkg/ridge/internal/controller"
	m "ridge.dev/pkg/ridge/internal/model"
)

// DesignArgs contains the arguments of one design request.
type DesignArgs struct {
	Backbone  string
	Edits     string
	Usage     m.UsageSelector
	Method    m.Method
	Threshold string
	// Save writes the result as YAML when set.
	Save m.Path
	// Concrete writes every literal sequence behind the degenerate variants when set.
	Concrete m.Path
}

// ReduceArgs contains the arguments of a single set reduction. Exactly one of
// Keep and Remove is used; Remove takes the complement of its letters.
type ReduceArgs struct {
	Keep      string
	Remove    string
	Usage     m.UsageSelector
	Method    m.Method
	Threshold string
}

// ExplodeArgs lists degenerate codons to expand, comma separated.
type ExplodeArgs struct {
	Codons string
}

// ViewArgs names a saved design result.
type ViewArgs struct {
	Path m.Path
}

// WorkflowOptions bounds the work done per request.
type WorkflowOptions struct {
	MaxVariants int
	// MaxConcrete caps the literal sequences written for --concrete. Zero means no cap.
	MaxConcrete int
	// SpillDir holds the temporary spill file used while writing literal sequences.
	SpillDir string
}

// ResolverFactory builds the resolver used for a rules table.
type ResolverFactory func(rules m.Rules) Resolver

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Design(ctx context.Context, args DesignArgs) error
	Reduce(ctx context.Context, args ReduceArgs) error
	Explode(ctx context.Context, args ExplodeArgs) error
	Organisms(ctx context.Context) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.UsageSource
	adapter.RulesSource
	adapter.ResultStore
	controller.UI

	newResolver ResolverFactory
	opts        WorkflowOptions
	cache       *CodonCache

	mu        sync.Mutex
	rules     *m.Rules
	resolver  Resolver
	assembler Assembler
}

// NewWorkflow creates a new Workflow. Rules are loaded on first use and the
// resolver built by newResolver is memoized through a cache owned by the
// workflow.
func NewWorkflow(
	usageSource adapter.UsageSource,
	rulesSource adapter.RulesSource,
	resultStore adapter.ResultStore,
	ui controller.UI,
	newResolver ResolverFactory,
	opts WorkflowOptions,
) Workflow {
	return &workflow{
		UsageSource: usageSource,
		RulesSource: rulesSource,
		ResultStore: resultStore,
		UI:          ui,
		newResolver: newResolver,
		opts:        opts,
		cache:       NewCodonCache(),
	}
}

func (w *workflow) Design(ctx context.Context, args DesignArgs) error {
	policy, err := m.ParsePolicy(args.Method, args.Threshold)
	if err != nil {
		return fmt.Errorf("policy: %w", err)
	}

	table, organism, err := w.loadUsage(ctx, args.Usage)
	if err != nil {
		return err
	}

	backbone := NormalizeBackbone(args.Backbone)

	edits, err := ParseEdits(args.Edits)
	if err != nil {
		return fmt.Errorf("parse edits: %w", err)
	}

	edited, err := FoldEdits(backbone, edits)
	if err != nil {
		return fmt.Errorf("fold edits: %w", err)
	}

	rules, err := w.loadRules(ctx)
	if err != nil {
		return err
	}

	variants, positions, err := w.assembler.Assemble(ctx, backbone, edited, table, policy)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	result := m.DesignResult{
		Organism:  organism,
		Backbone:  backbone,
		Edits:     args.Edits,
		Method:    policy.Method,
		Threshold: policy.Canonical(),
		Positions: positions,
		Variants:  variants,
	}

	slog.Info("Designed variants", "organism", organism, "backbone", backbone, "edits", len(edits), "variants", len(variants))

	if err := w.DisplayDesign(ctx, result); err != nil {
		return fmt.Errorf("display design: %w", err)
	}

	if args.Save != "" {
		if err := w.SaveResult(ctx, args.Save, result); err != nil {
			return fmt.Errorf("save result: %w", err)
		}
	}

	if args.Concrete != "" {
		if err := w.writeConcrete(ctx, args.Concrete, rules, variants); err != nil {
			return fmt.Errorf("write concrete sequences: %w", err)
		}
	}

	return nil
}

func (w *workflow) Reduce(ctx context.Context, args ReduceArgs) error {
	policy, err := m.ParsePolicy(args.Method, args.Threshold)
	if err != nil {
		return fmt.Errorf("policy: %w", err)
	}

	set, removed, err := reductionSet(args.Keep, args.Remove)
	if err != nil {
		return err
	}

	table, organism, err := w.loadUsage(ctx, args.Usage)
	if err != nil {
		return err
	}

	rules, err := w.loadRules(ctx)
	if err != nil {
		return err
	}

	codons, err := w.resolver.Resolve(ctx, set, table, policy)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", set, err)
	}

	expansions, err := ExpandCodons(rules, codons, table)
	if err != nil {
		return err
	}

	return w.DisplayReduction(ctx, m.Reduction{
		Organism:   organism,
		Set:        set,
		Removed:    removed,
		Method:     policy.Method,
		Threshold:  policy.Canonical(),
		Codons:     codons,
		Expansions: expansions,
	})
}

func (w *workflow) Explode(ctx context.Context, args ExplodeArgs) error {
	codons, err := ParseCodons(args.Codons)
	if err != nil {
		return err
	}

	rules, err := w.loadRules(ctx)
	if err != nil {
		return err
	}

	expansions, err := ExpandCodons(rules, codons, nil)
	if err != nil {
		return err
	}

	return w.DisplayExplosion(ctx, expansions)
}

func (w *workflow) Organisms(ctx context.Context) error {
	return w.DisplayOrganisms(ctx, w.UsageSource.Organisms(ctx))
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	result, err := w.LoadResult(ctx, args.Path)
	if err != nil {
		return fmt.Errorf("load result: %w", err)
	}

	return w.DisplayDesign(ctx, result)
}

// loadUsage resolves the selector into a table and the organism label shown
// back to the user.
func (w *workflow) loadUsage(ctx context.Context, selector m.UsageSelector) (m.UsageTable, string, error) {
	if selector.Table != "" {
		table, err := w.LoadFile(ctx, selector.Table)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %w", ErrUnknownUsageSource, err)
		}

		if err != nil {
			return nil, "", fmt.Errorf("load usage table: %w", err)
		}

		return table, string(selector.Table), nil
	}

	table, organism, err := w.LoadOrganism(ctx, selector.Organism)
	if err != nil {
		if errors.Is(err, adapter.ErrUnknownOrganism) {
			return nil, "", fmt.Errorf("%w: %w", ErrUnknownUsageSource, err)
		}

		return nil, "", fmt.Errorf("load usage table: %w", err)
	}

	return table, organism.Name, nil
}

// loadRules loads the rules once and builds the resolver chain on top of them.
func (w *workflow) loadRules(ctx context.Context) (m.Rules, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.rules != nil {
		return *w.rules, nil
	}

	rules, err := w.Load(ctx)
	if err != nil {
		slog.Error("Failed to load rules", "error", err)
		return m.Rules{}, fmt.Errorf("load rules: %w", err)
	}

	w.rules = &rules
	w.resolver = NewCachingResolver(w.newResolver(rules), w.cache)
	w.assembler = NewAssembler(w.resolver, AssemblerOptions{MaxVariants: w.opts.MaxVariants})

	return rules, nil
}

func reductionSet(keep, remove string) (m.AminoAcidSet, m.AminoAcidSet, error) {
	switch {
	case keep != "" && remove != "":
		return m.AminoAcidSet{}, m.AminoAcidSet{}, fmt.Errorf("%w: keep and remove are exclusive", ErrInvalidEditSyntax)
	case keep != "":
		set, err := parseLetterList(keep)
		if err != nil {
			return m.AminoAcidSet{}, m.AminoAcidSet{}, err
		}

		return set, m.AminoAcidSet{}, nil
	case remove != "":
		removed, err := parseLetterList(remove)
		if err != nil {
			return m.AminoAcidSet{}, m.AminoAcidSet{}, err
		}

		set := removed.Complement()
		if set.IsEmpty() {
			return m.AminoAcidSet{}, m.AminoAcidSet{}, fmt.Errorf("%w: nothing left after removing %s", ErrInvalidEditSyntax, removed)
		}

		return set, removed, nil
	}

	return m.AminoAcidSet{}, m.AminoAcidSet{}, fmt.Errorf("%w: no amino acids given", ErrInvalidEditSyntax)
}
