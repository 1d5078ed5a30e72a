package model

// Edit is one parsed substitution token.
type Edit struct {
	Token    string
	Original AminoAcid
	Position int // zero-based
	Targets  AminoAcidSet
	Inverted bool
}

// EditedPositions maps a backbone position to the union of its edit targets.
type EditedPositions map[int]AminoAcidSet

// SetAt returns the amino acid set used at position pos of backbone: the edit
// targets when pos is edited, the reference residue otherwise.
func (e EditedPositions) SetAt(backbone string, pos int) AminoAcidSet {
	if targets, ok := e[pos]; ok {
		return targets
	}

	return Singleton(AminoAcid(backbone[pos]))
}
