package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ridge.dev/pkg/ridge/internal/model"
)

func TestParseEdit(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		wantOriginal m.AminoAcid
		wantPosition int
		wantTargets  string
		wantInverted bool
	}{
		{"single target", "A1D", 'A', 0, "D", false},
		{"multiple targets", "A12DE", 'A', 11, "DE", false},
		{"duplicate targets collapse", "G5DDE", 'G', 4, "DE", false},
		{"any uppercase letter", "A12BC", 'A', 11, "BC", false},
		{"inverted", "A3-ACDEFGHIKLMNPQRSTV", 'A', 2, "WY", true},
		{"inverted ignores X", "K7-XACDEFGHIKLMNPQRSTVW", 'K', 6, "Y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit, err := ParseEdit(tt.token)
			require.NoError(t, err)

			assert.Equal(t, tt.token, edit.Token)
			assert.Equal(t, tt.wantOriginal, edit.Original)
			assert.Equal(t, tt.wantPosition, edit.Position)
			assert.Equal(t, tt.wantTargets, edit.Targets.String())
			assert.Equal(t, tt.wantInverted, edit.Inverted)
		})
	}
}

func TestParseEdit_InversionComplementsAlphabet(t *testing.T) {
	edit, err := ParseEdit("A1-C")
	require.NoError(t, err)

	assert.Equal(t, 19, edit.Targets.Len())
	assert.False(t, edit.Targets.Contains('C'))
	assert.False(t, edit.Targets.Contains(m.AnyAminoAcid))
}

func TestParseEdit_InvalidSyntax(t *testing.T) {
	tokens := []string{
		"",
		"A1",
		"1D",
		"a1D",
		"A1d",
		"A0D",
		"A-1D",
		"A1D-",
		"AB1D",
		"A 1D",
		"A1-ACDEFGHIKLMNPQRSTVWY",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			_, err := ParseEdit(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidEditSyntax))

			var editErr *EditError
			require.True(t, errors.As(err, &editErr))
			assert.Equal(t, token, editErr.Token)
		})
	}
}

func TestParseEdit_HugePosition(t *testing.T) {
	edit, err := ParseEdit("A99999999999999999999D")
	require.NoError(t, err)
	assert.Greater(t, edit.Position, 1<<40)

	_, err = ParseEdit("A000000000000000000000D")
	assert.True(t, errors.Is(err, ErrInvalidEditSyntax))
}

func TestParseEdits(t *testing.T) {
	tests := []struct {
		name       string
		edits      string
		wantTokens []string
	}{
		{"empty", "", []string{}},
		{"only commas", ",,,", []string{}},
		{"single", "A1DE", []string{"A1DE"}},
		{"trailing and doubled commas", "A1D,,C2E,", []string{"A1D", "C2E"}},
		{"surrounding whitespace", " A1D , C2E ", []string{"A1D", "C2E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edits, err := ParseEdits(tt.edits)
			require.NoError(t, err)

			tokens := make([]string, 0, len(edits))
			for _, edit := range edits {
				tokens = append(tokens, edit.Token)
			}

			assert.Equal(t, tt.wantTokens, tokens)
		})
	}
}

func TestParseEdits_EmptyTokensDoNotChangeResult(t *testing.T) {
	plain, err := ParseEdits("A1D,C2E")
	require.NoError(t, err)

	padded, err := ParseEdits(",A1D,,,C2E,,")
	require.NoError(t, err)

	assert.Equal(t, plain, padded)
}

func TestParseEdits_StopsAtFirstBadToken(t *testing.T) {
	_, err := ParseEdits("A1D,bad,C2E")
	require.ErrorIs(t, err, ErrInvalidEditSyntax)

	var editErr *EditError
	require.ErrorAs(t, err, &editErr)
	assert.Equal(t, "bad", editErr.Token)
}

func TestParseEdit_RoundTrip(t *testing.T) {
	for i := 0; i < len(m.Alphabet); i++ {
		original := m.AminoAcid(m.Alphabet[i])
		targets := m.ParseAminoAcidSet(m.Alphabet[:i+1])

		token := original.String() + "42" + targets.String()

		edit, err := ParseEdit(token)
		require.NoError(t, err)
		assert.Equal(t, original, edit.Original)
		assert.Equal(t, 41, edit.Position)
		assert.True(t, targets.Equal(edit.Targets), token)
	}
}
