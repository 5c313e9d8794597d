package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/alsgen/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using plain text on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDocument prints text unchanged.
func (s *SimpleUI) DisplayDocument(text string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)
	return err
}

// DisplayGenerated prints a one-line summary of the written document.
func (s *SimpleUI) DisplayGenerated(output m.Path, doc m.Document) error {
	s.printf("wrote %d clauses (1 exhaustiveness, %d permutations) to %s\n",
		len(doc.Permutations)+1, len(doc.Permutations), output)

	return nil
}

// DisplayClauses prints the clauses as a table.
func (s *SimpleUI) DisplayClauses(clauses []m.Clause) error {
	if len(clauses) == 0 {
		s.printf("No clauses\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Clause", "Kind", "Operations", "Steps"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for i, clause := range clauses {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			clause.Name,
			string(clause.Kind),
			fmt.Sprintf("%d", clause.Scope.Operation),
			fmt.Sprintf("%d..%d", clause.Scope.MinSteps, clause.Scope.MaxSteps),
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", len(clauses)), "", "", ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
