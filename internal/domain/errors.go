package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUsageSource is returned when a named usage table does not exist.
	ErrUnknownUsageSource = errors.New("unknown usage source")
	// ErrInvalidEditSyntax is returned for edit tokens that do not match the grammar.
	ErrInvalidEditSyntax = errors.New("invalid edit syntax")
	// ErrEditOutOfRangeOrMismatch is returned for edits past the backbone end or
	// whose original residue disagrees with the backbone.
	ErrEditOutOfRangeOrMismatch = errors.New("edit out of range or residue mismatch")
	// ErrResolverFailure is returned when no codon list can realise a set.
	ErrResolverFailure = errors.New("codon resolver failure")
	// ErrInvalidBackbone is returned for backbones with non-standard residues.
	ErrInvalidBackbone = errors.New("invalid backbone")
	// ErrTooManyVariants is returned when assembly would exceed the variant bound.
	ErrTooManyVariants = errors.New("too many sequence variants")
)

// EditError ties an edit failure to the offending token.
type EditError struct {
	Token  string
	Reason string
	Err    error
}

func (e *EditError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("edit %q: %v", e.Token, e.Err)
	}

	return fmt.Sprintf("edit %q: %v: %s", e.Token, e.Err, e.Reason)
}

func (e *EditError) Unwrap() error {
	return e.Err
}
