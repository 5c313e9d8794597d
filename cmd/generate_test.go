package cmd

import (
	"bytes"
	"testing"

	"github.com/mouse-blink/alsgen/internal/domain"
	m "github.com/mouse-blink/alsgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateCmd_PassesFlags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newGenerateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Generate", mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Aux == m.Path("a.als") &&
			args.Output == m.Path("b.als") &&
			args.Config.Predicate == m.DefaultPredicate
	})).Return(nil)

	cmd.SetArgs([]string{"generate", "-a", "a.als", "-o", "b.als"})
	require.NoError(t, cmd.Execute())
}

func TestNewGenerateCmd(t *testing.T) {
	cmd := newGenerateCmd()

	assert.Equal(t, "generate", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	aux := cmd.Flags().Lookup("aux")
	require.NotNil(t, aux)
	assert.Equal(t, defaultAuxPath, aux.DefValue)

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, defaultOutputPath, output.DefValue)
}
