// Package model defines the data structures for specification generation.
package model

// OperationKind names a category of filesystem-mutating operation as declared
// by the model's transitions module (e.g. Write, Rename).
type OperationKind string

// Default operation kinds covered by the generated checks.
const (
	OpWrite     OperationKind = "Write"
	OpCreate    OperationKind = "Create"
	OpMkdir     OperationKind = "Mkdir"
	OpFtruncate OperationKind = "Ftruncate"
	OpUnlink    OperationKind = "Unlink"
	OpRename    OperationKind = "Rename"
	OpRmdir     OperationKind = "Rmdir"
)

// DefaultOperationKinds returns the operation kinds in their canonical order.
// A fresh slice is returned on every call.
func DefaultOperationKinds() []OperationKind {
	return []OperationKind{
		OpWrite,
		OpCreate,
		OpMkdir,
		OpFtruncate,
		OpUnlink,
		OpRename,
		OpRmdir,
	}
}

// Pair is an ordered pair of consecutive operation kinds in a trace.
type Pair struct {
	First  OperationKind
	Second OperationKind
}

// Path represents a file system path.
type Path string
