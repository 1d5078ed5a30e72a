package domain

import (
	"fmt"

	m "ridge.dev/pkg/ridge/internal/model"
)

// FoldEdits checks every edit against the backbone and collects the targets
// per position. Edits on the same position are unioned, so the result does
// not depend on edit order.
func FoldEdits(backbone string, edits []m.Edit) (m.EditedPositions, error) {
	edited := make(m.EditedPositions, len(edits))

	for _, edit := range edits {
		if edit.Position < 0 || edit.Position >= len(backbone) {
			return nil, &EditError{
				Token:  edit.Token,
				Err:    ErrEditOutOfRangeOrMismatch,
				Reason: fmt.Sprintf("position is beyond backbone length %d", len(backbone)),
			}
		}

		if ref := m.AminoAcid(backbone[edit.Position]); ref != edit.Original {
			return nil, &EditError{
				Token:  edit.Token,
				Err:    ErrEditOutOfRangeOrMismatch,
				Reason: fmt.Sprintf("backbone has %s at position %d", ref, edit.Position+1),
			}
		}

		if prev, ok := edited[edit.Position]; ok {
			edited[edit.Position] = prev.Union(edit.Targets)
		} else {
			edited[edit.Position] = edit.Targets
		}
	}

	return edited, nil
}
