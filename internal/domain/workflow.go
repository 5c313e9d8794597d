package domain

import (
	"go.uber.org/zap"

	"github.com/mouse-blink/alsgen/internal/adapter"
	"github.com/mouse-blink/alsgen/internal/controller"
	m "github.com/mouse-blink/alsgen/internal/model"
)

const outputPerm = 0o644

// GenerateArgs holds the inputs of one generation run.
type GenerateArgs struct {
	Config m.Config
	Aux    m.Path
	Output m.Path
	// Only restricts permutation clauses to the given names.
	Only []string
	// Stdout prints the document instead of writing Output.
	Stdout bool
}

// ListArgs holds the inputs for listing the clauses a run would emit.
type ListArgs struct {
	Config m.Config
	Only   []string
}

// Workflow defines the interface for specification generation operations.
type Workflow interface {
	Generate(args GenerateArgs) error
	List(args ListArgs) error
}

type workflow struct {
	fsAdapter adapter.FSAdapter
	ui        controller.UI
	generator Generator
	logger    *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.FSAdapter,
	ui controller.UI,
	generator Generator,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		generator: generator,
		logger:    logger,
	}
}

// Generate builds the document and writes it to args.Output, or to standard
// output when args.Stdout is set. Nothing is written unless every step
// before the write succeeds.
func (w *workflow) Generate(args GenerateArgs) error {
	if err := ValidateConfig(args.Config); err != nil {
		return err
	}

	if !args.Stdout && args.Output == "" {
		return &ConfigurationError{Err: ErrMissingOutput}
	}

	w.logger.Debug("reading auxiliary definitions", zap.String("path", string(args.Aux)))

	aux, err := w.fsAdapter.ReadFile(args.Aux)
	if err != nil {
		return &FileAccessError{Op: "read", Path: args.Aux, Err: err}
	}

	doc, err := w.build(args.Config, string(aux), args.Only)
	if err != nil {
		return err
	}

	text := doc.Text()

	if args.Stdout {
		return w.ui.DisplayDocument(text)
	}

	if err := w.fsAdapter.WriteFileAtomic(args.Output, []byte(text), outputPerm); err != nil {
		return &FileAccessError{Op: "write", Path: args.Output, Err: err}
	}

	w.logger.Info("specification written",
		zap.String("output", string(args.Output)),
		zap.Int("kinds", len(args.Config.OperationKinds)),
		zap.Int("permutations", len(doc.Permutations)),
		zap.Int("bytes", len(text)))

	return w.ui.DisplayGenerated(args.Output, doc)
}

// List displays the clauses Generate would emit without reading or writing
// any file.
func (w *workflow) List(args ListArgs) error {
	doc, err := w.build(args.Config, "", args.Only)
	if err != nil {
		return err
	}

	return w.ui.DisplayClauses(doc.Clauses())
}

func (w *workflow) build(cfg m.Config, aux string, only []string) (m.Document, error) {
	doc, err := w.generator.Generate(cfg, aux)
	if err != nil {
		return m.Document{}, err
	}

	doc, err = FilterPermutations(doc, only)
	if err != nil {
		return m.Document{}, err
	}

	w.logger.Debug("document generated",
		zap.Int("clauses", len(doc.Permutations)+1),
		zap.Strings("only", only))

	return doc, nil
}
