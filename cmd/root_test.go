package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "ridge", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{organismFlagName, tableFlagName, methodFlagName, thresholdFlagName, usageDirFlagName, rulesFlagName, maxVariantsFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newDesignCmd())

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "degenerate codons")
	assert.Contains(t, output.String(), "design")
}

func TestPolicyArgs_RejectsUnknownMethod(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--method", "magic"}))

	_, _, err := policyArgs()
	require.Error(t, err)
}
