package domain_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mouse-blink/alsgen/internal/adapter"
	adaptermocks "github.com/mouse-blink/alsgen/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/alsgen/internal/controller/mocks"
	"github.com/mouse-blink/alsgen/internal/domain"
	domainmocks "github.com/mouse-blink/alsgen/internal/domain/mocks"
	m "github.com/mouse-blink/alsgen/internal/model"
)

func writeUnlinkConfig() m.Config {
	cfg := m.DefaultConfig()
	cfg.OperationKinds = []m.OperationKind{m.OpWrite, m.OpUnlink}

	return cfg
}

func TestWorkflow_Generate_Success(t *testing.T) {
	// Arrange
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	var written string

	mockFS.EXPECT().ReadFile(m.Path("aux.als")).Return([]byte("-- aux --\n"), nil)
	mockFS.EXPECT().WriteFileAtomic(m.Path("model_auto.als"), mock.Anything, os.FileMode(0o644)).
		Run(func(_ m.Path, content []byte, _ os.FileMode) {
			written = string(content)
		}).
		Return(nil)
	mockUI.EXPECT().DisplayGenerated(m.Path("model_auto.als"), mock.MatchedBy(func(doc m.Document) bool {
		return len(doc.Permutations) == 4
	})).Return(nil)

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), zap.NewNop())

	// Act
	err := wf.Generate(domain.GenerateArgs{
		Config: writeUnlinkConfig(),
		Aux:    "aux.als",
		Output: "model_auto.als",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.Contains(written, "-- aux --\n"))
	assert.Equal(t, 4, strings.Count(written, "check check_fs_"))
	for _, name := range []string{
		"check_fs_Write_Write",
		"check_fs_Write_Unlink",
		"check_fs_Unlink_Write",
		"check_fs_Unlink_Unlink",
	} {
		assert.Contains(t, written, "check "+name+" {")
	}
}

func TestWorkflow_Generate_EmptyDomainWritesNothing(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	cfg := m.DefaultConfig()
	cfg.OperationKinds = nil

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), nil)
	err := wf.Generate(domain.GenerateArgs{Config: cfg, Aux: "aux.als", Output: "out.als"})

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, domain.ErrEmptyDomain)
	mockFS.AssertNotCalled(t, "ReadFile", mock.Anything)
	mockFS.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Generate_MissingAuxWritesNothing(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadFile(m.Path("missing.als")).Return(nil, os.ErrNotExist)

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), zap.NewNop())
	err := wf.Generate(domain.GenerateArgs{Config: m.DefaultConfig(), Aux: "missing.als", Output: "out.als"})

	var fileErr *domain.FileAccessError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "read", fileErr.Op)
	assert.Equal(t, m.Path("missing.als"), fileErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	mockFS.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Generate_WriteFailure(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	boom := errors.New("read-only file system")
	mockFS.EXPECT().ReadFile(mock.Anything).Return([]byte(""), nil)
	mockFS.EXPECT().WriteFileAtomic(m.Path("out.als"), mock.Anything, mock.Anything).Return(boom)

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), zap.NewNop())
	err := wf.Generate(domain.GenerateArgs{Config: m.DefaultConfig(), Aux: "aux.als", Output: "out.als"})

	var fileErr *domain.FileAccessError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "write", fileErr.Op)
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_Generate_MissingOutput(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), zap.NewNop())
	err := wf.Generate(domain.GenerateArgs{Config: m.DefaultConfig(), Aux: "aux.als"})

	assert.ErrorIs(t, err, domain.ErrMissingOutput)
}

func TestWorkflow_Generate_Stdout(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadFile(m.Path("aux.als")).Return([]byte("-- aux --\n"), nil)
	mockUI.EXPECT().DisplayDocument(mock.MatchedBy(func(text string) bool {
		return strings.HasPrefix(text, "open defs\n") && strings.Count(text, "check check_fs_") == 4
	})).Return(nil)

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), zap.NewNop())
	err := wf.Generate(domain.GenerateArgs{Config: writeUnlinkConfig(), Aux: "aux.als", Stdout: true})

	require.NoError(t, err)
	mockFS.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Generate_OnlyFiltersPermutations(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadFile(mock.Anything).Return([]byte(""), nil)
	mockFS.EXPECT().WriteFileAtomic(mock.Anything, mock.MatchedBy(func(content []byte) bool {
		text := string(content)
		return strings.Contains(text, "check ops_are_exhaustive {") &&
			strings.Contains(text, "check check_fs_Unlink_Write {") &&
			strings.Count(text, "check check_fs_") == 1
	}), mock.Anything).Return(nil)
	mockUI.EXPECT().DisplayGenerated(mock.Anything, mock.Anything).Return(nil)

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), zap.NewNop())
	err := wf.Generate(domain.GenerateArgs{
		Config: writeUnlinkConfig(),
		Aux:    "aux.als",
		Output: "out.als",
		Only:   []string{"check_fs_Unlink_Write"},
	})

	require.NoError(t, err)
}

func TestWorkflow_Generate_UnknownOnlyWritesNothing(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadFile(mock.Anything).Return([]byte(""), nil)

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), zap.NewNop())
	err := wf.Generate(domain.GenerateArgs{
		Config: writeUnlinkConfig(),
		Aux:    "aux.als",
		Output: "out.als",
		Only:   []string{"check_fs_Write_Mkdir"},
	})

	assert.ErrorIs(t, err, domain.ErrUnknownClause)
	mockFS.AssertNotCalled(t, "WriteFileAtomic", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Generate_GeneratorError(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)
	mockGen := domainmocks.NewMockGenerator(t)

	boom := errors.New("boom")
	mockFS.EXPECT().ReadFile(mock.Anything).Return([]byte("aux"), nil)
	mockGen.EXPECT().Generate(mock.Anything, "aux").Return(m.Document{}, boom)

	wf := domain.NewWorkflow(mockFS, mockUI, mockGen, zap.NewNop())
	err := wf.Generate(domain.GenerateArgs{Config: m.DefaultConfig(), Aux: "aux.als", Output: "out.als"})

	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_List(t *testing.T) {
	mockFS := adaptermocks.NewMockFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockUI.EXPECT().DisplayClauses(mock.MatchedBy(func(clauses []m.Clause) bool {
		return len(clauses) == 5 &&
			clauses[0].Name == domain.ExhaustivenessClauseName &&
			clauses[4].Name == "check_fs_Unlink_Unlink"
	})).Return(nil)

	wf := domain.NewWorkflow(mockFS, mockUI, domain.NewGenerator(), zap.NewNop())
	require.NoError(t, wf.List(domain.ListArgs{Config: writeUnlinkConfig()}))

	mockFS.AssertNotCalled(t, "ReadFile", mock.Anything)
}

func TestWorkflow_Generate_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	auxPath := filepath.Join(dir, "aux.als")
	outPath := filepath.Join(dir, "model_auto.als")
	require.NoError(t, os.WriteFile(auxPath, []byte("-- aux --\n"), 0o644))

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().DisplayGenerated(m.Path(outPath), mock.Anything).Return(nil).Twice()

	wf := domain.NewWorkflow(adapter.NewLocalFSAdapter(), mockUI, domain.NewGenerator(), zap.NewNop())
	args := domain.GenerateArgs{Config: writeUnlinkConfig(), Aux: m.Path(auxPath), Output: m.Path(outPath)}

	require.NoError(t, wf.Generate(args))
	first, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.NoError(t, wf.Generate(args))
	second, err := os.ReadFile(outPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), "op in Write or\n    op in Unlink\n")
}

func TestWorkflow_Generate_EndToEndMissingAux(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "model_auto.als")

	mockUI := controllermocks.NewMockUI(t)

	wf := domain.NewWorkflow(adapter.NewLocalFSAdapter(), mockUI, domain.NewGenerator(), zap.NewNop())
	err := wf.Generate(domain.GenerateArgs{
		Config: m.DefaultConfig(),
		Aux:    m.Path(filepath.Join(dir, "missing.als")),
		Output: m.Path(outPath),
	})

	var fileErr *domain.FileAccessError
	require.ErrorAs(t, err, &fileErr)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}
