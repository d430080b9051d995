//go:build unit

package vacuum

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/solvac/pkg/classifier"
	"github.com/lerenn/solvac/pkg/config"
	"github.com/lerenn/solvac/pkg/deletion"
	deletionmocks "github.com/lerenn/solvac/pkg/deletion/mocks"
	"github.com/lerenn/solvac/pkg/dependencies"
	"github.com/lerenn/solvac/pkg/logger"
	"github.com/lerenn/solvac/pkg/occurrence"
	occurrencemocks "github.com/lerenn/solvac/pkg/occurrence/mocks"
	"github.com/lerenn/solvac/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root   string
	output *bytes.Buffer
	vacuum Vacuum
}

func newFixture(t *testing.T, files map[string]string) fixture {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	output := &bytes.Buffer{}
	deps := dependencies.New().
		WithConfig(config.NewManager(filepath.Join(root, config.DefaultConfigFileName))).
		WithReporter(report.NewJSONReporter(output))

	v, err := NewVacuum(NewVacuumParams{Dependencies: deps})
	require.NoError(t, err)

	return fixture{root: root, output: output, vacuum: v}
}

func (f fixture) path(name string) string {
	return filepath.Join(f.root, name)
}

func (f fixture) read(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(f.path(name))
	require.NoError(t, err)
	return string(content)
}

func (f fixture) report(t *testing.T) report.JSONReport {
	t.Helper()
	var r report.JSONReport
	require.NoError(t, json.Unmarshal(f.output.Bytes(), &r))
	return r
}

func TestRun_ReportOnly(t *testing.T) {
	source := "function foo() { return 1; }\nfunction bar() { foo(); }\n"
	f := newFixture(t, map[string]string{"A.sol": source})

	summary, err := f.vacuum.Run(context.Background(), RunParams{File: f.path("A.sol"), Root: f.root})
	require.NoError(t, err)

	require.Len(t, summary.Files, 1)
	assert.Equal(t, []classifier.Decision{
		{Name: "foo", Count: 2},
		{Name: "bar", Count: 1, Remove: true},
	}, summary.Files[0].Decisions)
	assert.Equal(t, []string{"bar"}, summary.Files[0].Unused)
	assert.Equal(t, 1, summary.TotalUnused)
	assert.Equal(t, 0, summary.TotalRemoved)

	assert.Equal(t, source, f.read(t, "A.sol"))

	r := f.report(t)
	assert.Equal(t, 1, r.TotalUnused)
	require.Len(t, r.Files, 1)
	assert.False(t, r.Files[0].Updated)
}

func TestRun_DeleteThenReanalyze(t *testing.T) {
	f := newFixture(t, map[string]string{
		"A.sol": "function foo() { return 1; }\nfunction bar() { foo(); }\n",
	})
	params := RunParams{File: f.path("A.sol"), Root: f.root, Delete: true}

	summary, err := f.vacuum.Run(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalRemoved)
	assert.Equal(t, []string{"bar"}, summary.Files[0].Removed)
	assert.Equal(t, "function foo() { return 1; }\n", f.read(t, "A.sol"))

	// foo lost its only caller
	f.output.Reset()
	summary, err = f.vacuum.Run(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, summary.Files[0].Unused)
	assert.Equal(t, "", f.read(t, "A.sol"))
}

func TestRun_IgnoredFunctionsAreKept(t *testing.T) {
	source := "function testHelper() {}\n"
	f := newFixture(t, map[string]string{"T.sol": source})

	summary, err := f.vacuum.Run(context.Background(), RunParams{File: f.path("T.sol"), Root: f.root, Delete: true})
	require.NoError(t, err)

	assert.Equal(t, []classifier.Decision{{Name: "testHelper", Count: 1, Ignored: true}}, summary.Files[0].Decisions)
	assert.Empty(t, summary.Files[0].Unused)
	assert.Equal(t, source, f.read(t, "T.sol"))
}

func TestRun_EmptyIgnoreListKeepsNothing(t *testing.T) {
	f := newFixture(t, map[string]string{"T.sol": "function testHelper() {}\n"})

	summary, err := f.vacuum.Run(context.Background(), RunParams{
		File:   f.path("T.sol"),
		Root:   f.root,
		Ignore: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"testHelper"}, summary.Files[0].Unused)
}

func TestRun_DeletionDoesNotAffectOtherFiles(t *testing.T) {
	f := newFixture(t, map[string]string{
		"contracts/a.sol": "function caller() { helper(); }\n",
		"contracts/b.sol": "function helper() {}\n",
	})

	summary, err := f.vacuum.Run(context.Background(), RunParams{
		Dir:    f.path("contracts"),
		Root:   f.root,
		Delete: true,
	})
	require.NoError(t, err)

	require.Len(t, summary.Files, 2)
	assert.Equal(t, []string{"caller"}, summary.Files[0].Removed)
	assert.Empty(t, summary.Files[1].Unused)
	assert.Equal(t, "", f.read(t, "contracts/a.sol"))
	assert.Equal(t, "function helper() {}\n", f.read(t, "contracts/b.sol"))
}

func TestRun_FileAndDirOverlap(t *testing.T) {
	f := newFixture(t, map[string]string{
		"src/A.sol": "function foo() {}\n",
		"src/B.sol": "function bar() { foo(); }\n",
	})

	summary, err := f.vacuum.Run(context.Background(), RunParams{
		File: f.path("src/A.sol"),
		Dir:  f.path("src"),
		Root: f.root,
	})
	require.NoError(t, err)

	require.Len(t, summary.Files, 2)
	assert.Equal(t, f.path("src/A.sol"), summary.Files[0].Path)
	assert.Equal(t, f.path("src/B.sol"), summary.Files[1].Path)
	assert.Equal(t, 1, summary.TotalUnused)
}

func TestRun_FileAndDirOverlapWithDifferentSpellings(t *testing.T) {
	f := newFixture(t, map[string]string{
		"A.sol": "function foo() { return 1; }\nfunction bar() { foo(); }\n",
	})
	t.Chdir(f.root)

	summary, err := f.vacuum.Run(context.Background(), RunParams{
		File:   f.path("A.sol"),
		Dir:    ".",
		Root:   ".",
		Delete: true,
	})
	require.NoError(t, err)

	require.Len(t, summary.Files, 1)
	assert.Equal(t, 1, summary.TotalUnused)
	assert.Equal(t, 1, summary.TotalRemoved)
	assert.Equal(t, "function foo() { return 1; }\n", f.read(t, "A.sol"))
}

func TestRun_NonSolidityFileWarns(t *testing.T) {
	f := newFixture(t, map[string]string{"notes.txt": "function foo() {}\n"})

	_, err := f.vacuum.Run(context.Background(), RunParams{File: f.path("notes.txt"), Root: f.root})
	require.NoError(t, err)

	r := f.report(t)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "does not have a .sol extension")
}

func TestRun_UnresolvableSpanIsSkipped(t *testing.T) {
	source := "function broken() {\n"
	f := newFixture(t, map[string]string{"A.sol": source})

	summary, err := f.vacuum.Run(context.Background(), RunParams{File: f.path("A.sol"), Root: f.root, Delete: true})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalRemoved)
	require.Len(t, summary.Files[0].Skipped, 1)
	assert.Equal(t, "broken", summary.Files[0].Skipped[0].Name)
	assert.Equal(t, source, f.read(t, "A.sol"))
}

func TestRun_Errors(t *testing.T) {
	f := newFixture(t, map[string]string{
		"A.sol":        "function foo() {}\n",
		"nested/B.sol": "function bar() {}\n",
	})

	tests := []struct {
		name   string
		params RunParams
		err    error
	}{
		{
			name:   "no target",
			params: RunParams{Root: f.root},
			err:    ErrNoTarget,
		},
		{
			name:   "missing file",
			params: RunParams{File: f.path("Missing.sol"), Root: f.root},
			err:    ErrTargetNotFound,
		},
		{
			name:   "missing dir",
			params: RunParams{Dir: f.path("missing"), Root: f.root},
			err:    ErrTargetNotFound,
		},
		{
			name:   "missing root",
			params: RunParams{File: f.path("A.sol"), Root: f.path("missing")},
			err:    ErrRootNotFound,
		},
		{
			name:   "root is a file",
			params: RunParams{File: f.path("A.sol"), Root: f.path("A.sol")},
			err:    ErrRootNotDir,
		},
		{
			name:   "unreadable file target",
			params: RunParams{File: f.path("nested"), Root: f.root},
			err:    ErrReadTarget,
		},
		{
			name:   "invalid ignore pattern",
			params: RunParams{File: f.path("A.sol"), Root: f.root, Ignore: []string{"("}},
			err:    classifier.ErrInvalidIgnorePattern,
		},
		{
			name:   "invalid extension",
			params: RunParams{File: f.path("A.sol"), Root: f.root, Extensions: []string{"sol"}},
			err:    config.ErrInvalidExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.vacuum.Run(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewVacuum_MissingReporter(t *testing.T) {
	deps := dependencies.New().WithConfig(config.NewManager(config.DefaultConfigFileName))

	_, err := NewVacuum(NewVacuumParams{Dependencies: deps})
	assert.ErrorIs(t, err, dependencies.ErrReporterMissing)
}

func TestRun_ProviderErrors(t *testing.T) {
	f := newFixture(t, map[string]string{"A.sol": "function foo() {}\n"})
	params := RunParams{File: f.path("A.sol"), Root: f.root, Delete: true}

	t.Run("write error is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := deletionmocks.NewMockEngine(ctrl)
		engine.EXPECT().
			Apply(deletion.ApplyParams{Path: f.path("A.sol"), Content: "function foo() {}\n", Names: []string{"foo"}}).
			Return(deletion.Result{Content: "function foo() {}\n"}, deletion.ErrWriteFile)

		deps := dependencies.New().
			WithConfig(config.NewManager(f.path(config.DefaultConfigFileName))).
			WithReporter(report.NewJSONReporter(&bytes.Buffer{})).
			WithEngineProvider(func(deletion.NewEngineParams) deletion.Engine { return engine })
		v, err := NewVacuum(NewVacuumParams{Dependencies: deps})
		require.NoError(t, err)

		summary, err := v.Run(context.Background(), params)
		assert.ErrorIs(t, err, deletion.ErrWriteFile)
		require.Len(t, summary.Files, 1)
		assert.Empty(t, summary.Files[0].Removed)
	})

	t.Run("count error is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		counter := occurrencemocks.NewMockCounter(ctrl)
		counter.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(nil, occurrence.ErrListFiles)

		deps := dependencies.New().
			WithConfig(config.NewManager(f.path(config.DefaultConfigFileName))).
			WithReporter(report.NewJSONReporter(&bytes.Buffer{})).
			WithCounterProvider(func(occurrence.NewCounterParams) occurrence.Counter { return counter })
		v, err := NewVacuum(NewVacuumParams{Dependencies: deps})
		require.NoError(t, err)

		_, err = v.Run(context.Background(), params)
		assert.ErrorIs(t, err, occurrence.ErrListFiles)
		assert.Equal(t, "function foo() {}\n", f.read(t, "A.sol"))
	})

	t.Run("counted once for every target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		counter := occurrencemocks.NewMockCounter(ctrl)
		var counted occurrence.CountParams
		counter.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params occurrence.CountParams) (occurrence.Counts, error) {
				counted = params
				return occurrence.Counts{"foo": 2}, nil
			}).
			Times(1)

		deps := dependencies.New().
			WithConfig(config.NewManager(f.path(config.DefaultConfigFileName))).
			WithReporter(report.NewJSONReporter(&bytes.Buffer{})).
			WithCounterProvider(func(occurrence.NewCounterParams) occurrence.Counter { return counter })
		v, err := NewVacuum(NewVacuumParams{Dependencies: deps})
		require.NoError(t, err)

		summary, err := v.Run(context.Background(), RunParams{File: f.path("A.sol"), Dir: f.root, Root: f.root})
		require.NoError(t, err)
		assert.Equal(t, 0, summary.TotalUnused)
		assert.Equal(t, f.root, counted.Root)
		assert.Equal(t, []string{"foo"}, counted.Names)
		assert.Equal(t, []string{".sol"}, counted.Extensions)
	})
}

func TestRun_LogsIgnorePatterns(t *testing.T) {
	f := newFixture(t, map[string]string{"A.sol": "function foo() {}\n"})
	logs := &bytes.Buffer{}
	deps := dependencies.New().
		WithConfig(config.NewManager(f.path(config.DefaultConfigFileName))).
		WithReporter(report.NewJSONReporter(&bytes.Buffer{})).
		WithLogger(logger.NewWriterLogger(logs))
	v, err := NewVacuum(NewVacuumParams{Dependencies: deps})
	require.NoError(t, err)

	_, err = v.Run(context.Background(), RunParams{File: f.path("A.sol"), Root: f.root, Ignore: []string{"^_", "Mock$"}})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `keeping functions matching ["^_" "Mock$"]`)
}
