package domain

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/alsgen/internal/model"
	"go.uber.org/multierr"
)

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_']*$`)
	// Module paths and predicate references may be qualified: util/integer.
	qualifiedRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_']*(/[A-Za-z][A-Za-z0-9_']*)*$`)
)

// ValidateConfig checks every part of cfg and reports all problems at once.
func ValidateConfig(cfg m.Config) error {
	var err error

	err = multierr.Append(err, validateKinds(cfg.OperationKinds))

	if !qualifiedRe.MatchString(cfg.Predicate) {
		err = multierr.Append(err, fmt.Errorf("%w: predicate %q", ErrInvalidIdentifier, cfg.Predicate))
	}

	for _, imp := range cfg.Imports {
		if !qualifiedRe.MatchString(imp) {
			err = multierr.Append(err, fmt.Errorf("%w: import %q", ErrInvalidIdentifier, imp))
		}
	}

	err = multierr.Append(err, validateScope("single-step", cfg.SingleStepScope, 1))
	err = multierr.Append(err, validateScope("two-step", cfg.TwoStepScope, 2))

	if err != nil {
		return &ConfigurationError{Err: err}
	}

	return nil
}

func validateKinds(kinds []m.OperationKind) error {
	if len(kinds) == 0 {
		return ErrEmptyDomain
	}

	var err error

	seen := make(map[m.OperationKind]struct{}, len(kinds))

	for _, kind := range kinds {
		if !identifierRe.MatchString(string(kind)) {
			err = multierr.Append(err, fmt.Errorf("%w: operation kind %q", ErrInvalidIdentifier, kind))
		}

		if _, ok := seen[kind]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrDuplicateKind, kind))
			continue
		}

		seen[kind] = struct{}{}
	}

	return err
}

// validateScope requires room for at least minOps operations and minOps steps.
func validateScope(name string, s m.Scope, minOps int) error {
	var err error

	bounds := []struct {
		field string
		value int
	}{
		{"Volatile", s.Volatile},
		{"PMObj", s.PMObj},
		{"Root", s.Root},
		{"NoInode", s.NoInode},
		{"NoDentry", s.NoDentry},
	}

	for _, b := range bounds {
		if b.value < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s %s is negative (%d)", ErrInvalidScope, name, b.field, b.value))
		}
	}

	if s.Operation < minOps {
		err = multierr.Append(err, fmt.Errorf("%w: %s scope needs at least %d Operation, got %d", ErrInvalidScope, name, minOps, s.Operation))
	}

	if s.MinSteps < minOps || s.MaxSteps < s.MinSteps {
		err = multierr.Append(err, fmt.Errorf("%w: %s steps %d..%d", ErrInvalidScope, name, s.MinSteps, s.MaxSteps))
	}

	return err
}
