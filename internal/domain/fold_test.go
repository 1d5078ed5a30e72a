package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ridge.dev/pkg/ridge/internal/model"
)

func mustParseEdits(t *testing.T, edits string) []m.Edit {
	t.Helper()

	parsed, err := ParseEdits(edits)
	require.NoError(t, err)

	return parsed
}

func TestFoldEdits(t *testing.T) {
	tests := []struct {
		name     string
		backbone string
		edits    string
		want     map[int]string
	}{
		{"no edits", "AC", "", map[int]string{}},
		{"single edit", "AC", "A1DE", map[int]string{0: "DE"}},
		{"two positions", "ACG", "A1D,G3W", map[int]string{0: "D", 2: "W"}},
		{"same position unions", "AC", "A1D,A1E", map[int]string{0: "DE"}},
		{"overlapping union", "AC", "A1DE,A1EK,A1D", map[int]string{0: "DEK"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edited, err := FoldEdits(tt.backbone, mustParseEdits(t, tt.edits))
			require.NoError(t, err)

			got := make(map[int]string, len(edited))
			for pos, set := range edited {
				got[pos] = set.String()
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFoldEdits_OrderIndependent(t *testing.T) {
	forward, err := FoldEdits("ACD", mustParseEdits(t, "A1D,C2K,A1E,D3-C"))
	require.NoError(t, err)

	backward, err := FoldEdits("ACD", mustParseEdits(t, "D3-C,A1E,C2K,A1D"))
	require.NoError(t, err)

	require.Len(t, backward, len(forward))

	for pos, set := range forward {
		assert.True(t, set.Equal(backward[pos]), "position %d", pos)
	}
}

func TestFoldEdits_Failures(t *testing.T) {
	tests := []struct {
		name     string
		backbone string
		edits    string
		token    string
	}{
		{"mismatch", "AC", "C1D", "C1D"},
		{"past the end", "AC", "A3D", "A3D"},
		{"second edit fails", "AC", "A1D,A2E", "A2E"},
		{"empty backbone", "", "A1D", "A1D"},
		{"position overflows int", "AC", "A99999999999999999999D", "A99999999999999999999D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FoldEdits(tt.backbone, mustParseEdits(t, tt.edits))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEditOutOfRangeOrMismatch))

			var editErr *EditError
			require.True(t, errors.As(err, &editErr))
			assert.Equal(t, tt.token, editErr.Token)
		})
	}
}

func TestFoldEdits_EveryMismatchFails(t *testing.T) {
	for i := 0; i < len(m.Alphabet); i++ {
		for j := 0; j < len(m.Alphabet); j++ {
			backbone := string(m.Alphabet[i])
			token := string(m.Alphabet[j]) + "1A"

			_, err := FoldEdits(backbone, mustParseEdits(t, token))
			if i == j {
				assert.NoError(t, err, token)
				continue
			}

			assert.ErrorIs(t, err, ErrEditOutOfRangeOrMismatch, "%s on %s", token, backbone)
		}
	}
}
