// Package model defines the data structures for codon-compressed variant design.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// AminoAcid is a one-letter amino acid code.
type AminoAcid byte

// AnyAminoAcid is the sentinel for "any/unknown". Usage tables also file stop
// codons under it.
const AnyAminoAcid AminoAcid = 'X'

// Alphabet lists the 20 standard amino acids in canonical order.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// IsStandard reports whether aa is one of the 20 standard amino acids.
func (aa AminoAcid) IsStandard() bool {
	return strings.IndexByte(Alphabet, byte(aa)) >= 0
}

func (aa AminoAcid) String() string {
	return string(aa)
}

// MarshalYAML stores the amino acid as its letter.
func (aa AminoAcid) MarshalYAML() (interface{}, error) {
	return aa.String(), nil
}

// UnmarshalYAML reads an amino acid from a single letter.
func (aa *AminoAcid) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var letter string
	if err := unmarshal(&letter); err != nil {
		return err
	}

	if len(letter) != 1 {
		return fmt.Errorf("amino acid %q: expected one letter", letter)
	}

	*aa = AminoAcid(letter[0])

	return nil
}

// AminoAcidSet is an immutable set of amino acids. The zero value is the empty set.
type AminoAcidSet struct {
	members map[AminoAcid]struct{}
}

// NewAminoAcidSet builds a set from the given amino acids. Duplicates collapse.
func NewAminoAcidSet(aas ...AminoAcid) AminoAcidSet {
	members := make(map[AminoAcid]struct{}, len(aas))
	for _, aa := range aas {
		members[aa] = struct{}{}
	}

	return AminoAcidSet{members: members}
}

// ParseAminoAcidSet builds a set from a string of one-letter codes.
func ParseAminoAcidSet(letters string) AminoAcidSet {
	aas := make([]AminoAcid, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		aas = append(aas, AminoAcid(letters[i]))
	}

	return NewAminoAcidSet(aas...)
}

// Singleton returns the set holding only aa.
func Singleton(aa AminoAcid) AminoAcidSet {
	return NewAminoAcidSet(aa)
}

// Len returns the number of members.
func (s AminoAcidSet) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s AminoAcidSet) IsEmpty() bool {
	return len(s.members) == 0
}

// Contains reports whether aa is a member.
func (s AminoAcidSet) Contains(aa AminoAcid) bool {
	_, ok := s.members[aa]
	return ok
}

// Union returns a new set with the members of both sets.
func (s AminoAcidSet) Union(other AminoAcidSet) AminoAcidSet {
	members := make(map[AminoAcid]struct{}, len(s.members)+len(other.members))
	for aa := range s.members {
		members[aa] = struct{}{}
	}

	for aa := range other.members {
		members[aa] = struct{}{}
	}

	return AminoAcidSet{members: members}
}

// Complement returns the standard amino acids that are not in s.
// The sentinel X is never part of the result.
func (s AminoAcidSet) Complement() AminoAcidSet {
	members := make(map[AminoAcid]struct{}, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		aa := AminoAcid(Alphabet[i])
		if !s.Contains(aa) {
			members[aa] = struct{}{}
		}
	}

	return AminoAcidSet{members: members}
}

// Without returns a copy of s with aa removed.
func (s AminoAcidSet) Without(aa AminoAcid) AminoAcidSet {
	members := make(map[AminoAcid]struct{}, len(s.members))
	for member := range s.members {
		if member != aa {
			members[member] = struct{}{}
		}
	}

	return AminoAcidSet{members: members}
}

// Members returns the members in ascending letter order.
func (s AminoAcidSet) Members() []AminoAcid {
	out := make([]AminoAcid, 0, len(s.members))
	for aa := range s.members {
		out = append(out, aa)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Equal reports whether both sets hold the same members.
func (s AminoAcidSet) Equal(other AminoAcidSet) bool {
	if s.Len() != other.Len() {
		return false
	}

	for aa := range s.members {
		if !other.Contains(aa) {
			return false
		}
	}

	return true
}

// String renders the members sorted, e.g. "DE". Value-equal sets always
// render identically, which makes the result usable as a cache key.
func (s AminoAcidSet) String() string {
	var b strings.Builder
	for _, aa := range s.Members() {
		b.WriteByte(byte(aa))
	}

	return b.String()
}

// MarshalYAML stores the set as its canonical letters.
func (s AminoAcidSet) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML reads a set from its canonical letters.
func (s *AminoAcidSet) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var letters string
	if err := unmarshal(&letters); err != nil {
		return err
	}

	*s = ParseAminoAcidSet(letters)

	return nil
}
