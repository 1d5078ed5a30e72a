package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ridge.dev/pkg/ridge/internal/domain"
	domainmocks "ridge.dev/pkg/ridge/internal/domain/mocks"
	m "ridge.dev/pkg/ridge/internal/model"
)

func TestDesignCmd_PassesFlagsThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newDesignCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Design", mock.Anything, mock.MatchedBy(func(args domain.DesignArgs) bool {
		return args.Backbone == "AC" &&
			args.Edits == "A1DE" &&
			args.Usage.Organism == "yeast" &&
			args.Usage.Table == "" &&
			args.Method == m.MethodUsage &&
			args.Threshold == "0.1" &&
			args.Save == m.Path("out.yaml")
	})).Return(nil)

	cmd.SetArgs([]string{"design", "-b", "AC", "-e", "A1DE", "--organism", "yeast", "--method", "usage", "--threshold", "0.1", "--save", "out.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestDesignCmd_DefaultsFromConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newDesignCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Design", mock.Anything, mock.MatchedBy(func(args domain.DesignArgs) bool {
		return args.Usage.Organism == defaultOrganism &&
			args.Method == m.MethodRank &&
			args.Threshold == defaultThreshold &&
			args.Concrete == ""
	})).Return(nil)

	cmd.SetArgs([]string{"design", "--backbone", "MK"})
	require.NoError(t, cmd.Execute())
}

func TestDesignCmd_TableOverridesOrganism(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newDesignCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Design", mock.Anything, mock.MatchedBy(func(args domain.DesignArgs) bool {
		return args.Usage.Table == m.Path("custom.txt") && args.Usage.Organism == ""
	})).Return(nil)

	cmd.SetArgs([]string{"design", "-b", "MK", "--table", "custom.txt"})
	require.NoError(t, cmd.Execute())
}

func TestDesignCmd_BackboneIsRequired(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newDesignCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"design", "--edits", "A1DE"})
	require.Error(t, cmd.Execute())
}

func TestDesignCmd_ReturnsWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newDesignCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Design", mock.Anything, mock.Anything).Return(domain.ErrInvalidEditSyntax)

	cmd.SetArgs([]string{"design", "-b", "AC", "-e", "A1"})
	err := cmd.Execute()
	require.True(t, errors.Is(err, domain.ErrInvalidEditSyntax))
}
