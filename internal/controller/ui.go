// Package controller provides output adapters for displaying generated
// specifications.
package controller

import (
	m "github.com/mouse-blink/alsgen/internal/model"
)

// UI defines how the workflow reports its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayDocument writes the full document text to standard output.
	DisplayDocument(text string) error
	// DisplayGenerated summarises a document written to output.
	DisplayGenerated(output m.Path, doc m.Document) error
	// DisplayClauses lists clauses in emission order.
	DisplayClauses(clauses []m.Clause) error
}
