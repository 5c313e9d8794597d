package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DisplayDocument_Verbatim(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	text := "open defs\n\n-- aux --\n\n\n"
	require.NoError(t, tui.DisplayDocument(text))
	assert.Equal(t, text, buf.String())
}

func TestTUI_DisplayGenerated(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayGenerated("model_auto.als", sampleDocument()))

	output := buf.String()
	assert.Contains(t, output, "Specification generated")
	assert.Contains(t, output, "model_auto.als")
	assert.Contains(t, output, "permutation checks")
	assert.Contains(t, output, "total checks")
}

func TestTUI_DisplayClauses(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayClauses(sampleDocument().Clauses()))

	output := buf.String()
	assert.Contains(t, output, "5 checks")

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "ops_are_exhaustive")
	assert.Contains(t, lines[5], "check_fs_Unlink_Unlink")
}

func TestTUI_DisplayClauses_Empty(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayClauses(nil))
	assert.Equal(t, "No clauses\n", buf.String())
}

func TestTUI_DisplayGenerated_CountsBothKindsOfFilteredPair(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	doc := sampleDocument()
	doc.Permutations = doc.Permutations[1:2]

	require.NoError(t, tui.DisplayGenerated("model_auto.als", doc))

	var paired string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "kinds paired") {
			paired = line
		}
	}

	require.NotEmpty(t, paired)
	assert.Contains(t, strings.Fields(paired), "2")
}
