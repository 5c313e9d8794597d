package model

import "fmt"

// Scope is the bounded scope a check command is evaluated in.
// PMObj, Root, NoInode and NoDentry are exact bounds; Volatile and Operation
// are upper bounds.
type Scope struct {
	Volatile  int `yaml:"volatile"`
	PMObj     int `yaml:"pm_obj"`
	Root      int `yaml:"root"`
	NoInode   int `yaml:"no_inode"`
	NoDentry  int `yaml:"no_dentry"`
	Operation int `yaml:"operation"`
	MinSteps  int `yaml:"min_steps"`
	MaxSteps  int `yaml:"max_steps"`
}

// String renders the scope as the trailing "for ..." part of a check command.
func (s Scope) String() string {
	return fmt.Sprintf(
		"for %d Volatile, exactly %d PMObj, exactly %d Root, exactly %d NoInode, exactly %d NoDentry, %d Operation, %d..%d steps",
		s.Volatile, s.PMObj, s.Root, s.NoInode, s.NoDentry, s.Operation, s.MinSteps, s.MaxSteps,
	)
}

// SingleStepScope is the scope used by the exhaustiveness check.
func SingleStepScope() Scope {
	return Scope{
		Volatile:  1,
		PMObj:     10,
		Root:      1,
		NoInode:   1,
		NoDentry:  1,
		Operation: 1,
		MinSteps:  1,
		MaxSteps:  1,
	}
}

// TwoStepScope is the scope used by every permutation check.
func TwoStepScope() Scope {
	return Scope{
		Volatile:  1,
		PMObj:     10,
		Root:      1,
		NoInode:   1,
		NoDentry:  1,
		Operation: 2,
		MinSteps:  30,
		MaxSteps:  30,
	}
}

// DefaultPredicate is the consistency predicate every permutation check asserts.
const DefaultPredicate = "check_fs_pred"

// DefaultImports returns the modules opened at the top of every document.
func DefaultImports() []string {
	return []string{"defs", "transitions", "model2", "util/integer"}
}

// Config holds everything the generator needs besides the auxiliary text.
type Config struct {
	OperationKinds  []OperationKind `yaml:"operation_kinds"`
	Imports         []string        `yaml:"imports"`
	Predicate       string          `yaml:"predicate"`
	SingleStepScope Scope           `yaml:"single_step_scope"`
	TwoStepScope    Scope           `yaml:"two_step_scope"`
}

// DefaultConfig returns the configuration matching the filesystem model.
func DefaultConfig() Config {
	return Config{
		OperationKinds:  DefaultOperationKinds(),
		Imports:         DefaultImports(),
		Predicate:       DefaultPredicate,
		SingleStepScope: SingleStepScope(),
		TwoStepScope:    TwoStepScope(),
	}
}
