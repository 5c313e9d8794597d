package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/alsgen/internal/model"
)

// Configuration problems. They are always returned wrapped in a
// *ConfigurationError.
var (
	ErrEmptyDomain       = errors.New("operation kind sequence is empty")
	ErrDuplicateKind     = errors.New("duplicate operation kind")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidScope      = errors.New("invalid scope")
	ErrUnknownClause     = errors.New("unknown clause")
	ErrMissingOutput     = errors.New("output path is empty")
)

// ConfigurationError reports an unusable generator configuration. Err may
// combine several problems; errors.Is matches each of them.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// FileAccessError reports a failure to read the auxiliary file or to write
// the output document.
type FileAccessError struct {
	Op   string
	Path m.Path
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
