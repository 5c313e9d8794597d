// Package domain contains the specification generator and the workflow that
// drives it.
package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/alsgen/internal/model"
)

// ExhaustivenessClauseName names the clause checking kind coverage.
const ExhaustivenessClauseName = "ops_are_exhaustive"

// Generator defines the interface for building a specification document.
type Generator interface {
	Generate(cfg m.Config, aux string) (m.Document, error)
}

// generator handles pure document generation; it never touches the disk.
type generator struct{}

// NewGenerator creates a new Generator instance.
func NewGenerator() Generator {
	return &generator{}
}

func (g *generator) Generate(cfg m.Config, aux string) (m.Document, error) {
	if err := ValidateConfig(cfg); err != nil {
		return m.Document{}, err
	}

	exhaustiveness, err := ExhaustivenessClause(cfg.OperationKinds, cfg.SingleStepScope)
	if err != nil {
		return m.Document{}, err
	}

	return m.Document{
		Prelude:        Prelude(cfg.Imports, aux),
		Exhaustiveness: exhaustiveness,
		Permutations:   PermutationClauses(cfg.OperationKinds, cfg.Predicate, cfg.TwoStepScope),
	}, nil
}

// Prelude opens every import in order and appends aux verbatim followed by a
// blank line.
func Prelude(imports []string, aux string) string {
	var b strings.Builder

	for _, imp := range imports {
		b.WriteString("open ")
		b.WriteString(imp)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(aux)
	b.WriteString("\n\n")

	return b.String()
}

// ExhaustivenessClause asserts that every Operation is an instance of at
// least one of kinds.
func ExhaustivenessClause(kinds []m.OperationKind, scope m.Scope) (m.Clause, error) {
	if len(kinds) == 0 {
		return m.Clause{}, &ConfigurationError{Err: ErrEmptyDomain}
	}

	disjuncts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		disjuncts = append(disjuncts, fmt.Sprintf("    op in %s", kind))
	}

	return m.Clause{
		Kind:  m.ClauseExhaustiveness,
		Name:  ExhaustivenessClauseName,
		Guard: "  all op: Operation |\n" + strings.Join(disjuncts, " or\n"),
		Scope: scope,
	}, nil
}

// PermutationClauseName derives the clause name for an ordered pair.
func PermutationClauseName(pair m.Pair) string {
	return fmt.Sprintf("check_fs_%s_%s", pair.First, pair.Second)
}

// PermutationClauses returns one clause per ordered pair of kinds, self-pairs
// included, in row-major order of kinds.
func PermutationClauses(kinds []m.OperationKind, predicate string, scope m.Scope) []m.Clause {
	clauses := make([]m.Clause, 0, len(kinds)*len(kinds))

	for _, first := range kinds {
		for _, second := range kinds {
			pair := m.Pair{First: first, Second: second}
			clauses = append(clauses, m.Clause{
				Kind: m.ClausePermutation,
				Name: PermutationClauseName(pair),
				Guard: fmt.Sprintf(
					"  ((first & Operation) in %s and (first & Operation).next in %s) =>",
					first, second,
				),
				Consequence: predicate,
				Scope:       scope,
				Pair:        pair,
			})
		}
	}

	return clauses
}

// FilterPermutations keeps only the permutation clauses named in only, in
// their original order. The exhaustiveness clause is always kept. An empty
// filter returns doc unchanged.
func FilterPermutations(doc m.Document, only []string) (m.Document, error) {
	if len(only) == 0 {
		return doc, nil
	}

	wanted := make(map[string]struct{}, len(only))
	for _, name := range only {
		wanted[name] = struct{}{}
	}

	kept := make([]m.Clause, 0, len(only))

	for _, clause := range doc.Permutations {
		if _, ok := wanted[clause.Name]; ok {
			kept = append(kept, clause)
			delete(wanted, clause.Name)
		}
	}

	// The exhaustiveness clause may be named explicitly; it is always emitted.
	delete(wanted, ExhaustivenessClauseName)

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for _, name := range only {
			if _, ok := wanted[name]; ok {
				unknown = append(unknown, name)
				delete(wanted, name)
			}
		}

		return m.Document{}, &ConfigurationError{
			Err: fmt.Errorf("%w: %s", ErrUnknownClause, strings.Join(unknown, ", ")),
		}
	}

	doc.Permutations = kept

	return doc, nil
}
