package model

import "strings"

// ClauseKind identifies how a clause was derived.
type ClauseKind string

const (
	// ClauseExhaustiveness asserts every operation has at least one declared kind.
	ClauseExhaustiveness ClauseKind = "exhaustiveness"
	// ClausePermutation asserts the predicate for one ordered pair of kinds.
	ClausePermutation ClauseKind = "permutation"
)

// Clause is one named check command of the generated document.
type Clause struct {
	Kind        ClauseKind
	Name        string
	Guard       string
	Consequence string
	Scope       Scope
	Pair        Pair // zero for the exhaustiveness clause
}

// Text renders the clause as a check command followed by a blank line.
func (c Clause) Text() string {
	var b strings.Builder

	b.WriteString("check ")
	b.WriteString(c.Name)
	b.WriteString(" {\n")
	b.WriteString(c.Guard)
	b.WriteString("\n")

	if c.Consequence != "" {
		b.WriteString("    ")
		b.WriteString(c.Consequence)
		b.WriteString("\n")
	}

	b.WriteString("} ")
	b.WriteString(c.Scope.String())
	b.WriteString("\n\n")

	return b.String()
}

// Document is the complete generated specification.
type Document struct {
	Prelude        string
	Exhaustiveness Clause
	Permutations   []Clause
}

// Clauses returns the exhaustiveness clause followed by the permutations.
func (d Document) Clauses() []Clause {
	clauses := make([]Clause, 0, len(d.Permutations)+1)
	clauses = append(clauses, d.Exhaustiveness)
	clauses = append(clauses, d.Permutations...)

	return clauses
}

// Text renders the document in emission order.
func (d Document) Text() string {
	var b strings.Builder

	b.WriteString(d.Prelude)

	for _, clause := range d.Clauses() {
		b.WriteString(clause.Text())
	}

	return b.String()
}
