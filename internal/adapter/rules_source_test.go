package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ridge.dev/pkg/ridge/internal/model"
)

func TestParseRules(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{name: "plain", input: "A A\nR AG\n", wantLen: 2},
		{name: "comma separated bases", input: "# comment\nR A,G\nY c, t\n", wantLen: 2},
		{name: "duplicate symbol", input: "R AG\nR CT\n", wantErr: true},
		{name: "missing bases", input: "R\n", wantErr: true},
		{name: "long symbol", input: "RR AG\n", wantErr: true},
		{name: "invalid base", input: "R AZ\n", wantErr: true},
		{name: "empty", input: "\n# nothing\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := ParseRules(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, rules.Len())
		})
	}
}

func TestLocalRulesSource_Builtin(t *testing.T) {
	rules, err := NewLocalRulesSource("").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 15, rules.Len())

	symbol, ok := rules.Symbol(m.BaseA | m.BaseT)
	require.True(t, ok)
	assert.Equal(t, byte('W'), symbol)

	codons, err := rules.Expand("NNN")
	require.NoError(t, err)
	assert.Len(t, codons, 64)
}

func TestLocalRulesSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.txt")
	require.NoError(t, os.WriteFile(path, []byte("A A\nC C\nG G\nT T\n"), 0o600))

	rules, err := NewLocalRulesSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, rules.Len())

	_, ok := rules.Symbol(m.BaseA | m.BaseG)
	assert.False(t, ok)
}

func TestLocalRulesSource_MissingFile(t *testing.T) {
	_, err := NewLocalRulesSource(filepath.Join(t.TempDir(), "missing.txt")).Load(context.Background())
	require.Error(t, err)
}
