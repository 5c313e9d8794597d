package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/alsgen/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// TUI implements UI with styled terminal output.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayDocument prints text unchanged; styling would corrupt the document.
func (t *TUI) DisplayDocument(text string) error {
	_, err := fmt.Fprint(t.output, text)
	return err
}

// DisplayGenerated renders a boxed summary of the written document.
func (t *TUI) DisplayGenerated(output m.Path, doc m.Document) error {
	kinds := make(map[m.OperationKind]struct{})
	for _, clause := range doc.Permutations {
		kinds[clause.Pair.First] = struct{}{}
		kinds[clause.Pair.Second] = struct{}{}
	}

	lines := []string{
		titleStyle.Render("Specification generated"),
		"output " + nameStyle.Render(string(output)),
		fmt.Sprintf("%s  kinds paired", countStyle.Render(fmt.Sprintf("%d", len(kinds)))),
		fmt.Sprintf("%s  permutation checks", countStyle.Render(fmt.Sprintf("%d", len(doc.Permutations)))),
		fmt.Sprintf("%s  total checks", countStyle.Render(fmt.Sprintf("%d", len(doc.Permutations)+1))),
	}

	_, _ = fmt.Fprintln(t.output, boxStyle.Render(strings.Join(lines, "\n")))

	return nil
}

// DisplayClauses renders one styled line per clause.
func (t *TUI) DisplayClauses(clauses []m.Clause) error {
	if len(clauses) == 0 {
		_, _ = fmt.Fprintln(t.output, "No clauses")
		return nil
	}

	_, _ = fmt.Fprintln(t.output, titleStyle.Render(fmt.Sprintf("%d checks", len(clauses))))

	for i, clause := range clauses {
		_, _ = fmt.Fprintf(t.output, "%s  %s %s\n",
			countStyle.Render(fmt.Sprintf("%d", i+1)),
			nameStyle.Render(clause.Name),
			kindStyle.Render(fmt.Sprintf("(%s, %d..%d steps)", clause.Kind, clause.Scope.MinSteps, clause.Scope.MaxSteps)),
		)
	}

	return nil
}
