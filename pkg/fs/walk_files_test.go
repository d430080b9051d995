//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestFS_WalkFiles_FiltersByExtension(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"A.sol":              "",
		"README.md":          "",
		"lib/B.sol":          "",
		"lib/deep/C.sol":     "",
		"lib/deep/notes.txt": "",
	})

	var visited []string
	err := fs.WalkFiles(WalkParams{Root: root, Extensions: []string{".sol"}}, func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol", "lib/B.sol", "lib/deep/C.sol"}, visited)
}

func TestFS_WalkFiles_ExcludeDirs(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"A.sol":                  "",
		"node_modules/dep/B.sol": "",
	})

	var visited []string
	err := fs.WalkFiles(WalkParams{
		Root:        root,
		Extensions:  []string{".sol"},
		ExcludeDirs: []string{"node_modules"},
	}, func(path string) error {
		visited = append(visited, filepath.Base(path))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol"}, visited)
}

func TestFS_WalkFiles_EmptyExtensionsMatchesAll(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{"A.sol": "", "B.txt": ""})

	count := 0
	err := fs.WalkFiles(WalkParams{Root: root}, func(string) error {
		count++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFS_WalkFiles_MissingRoot(t *testing.T) {
	fs := NewFS()

	err := fs.WalkFiles(WalkParams{Root: filepath.Join(t.TempDir(), "missing")}, func(string) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrWalkRoot)
}

func TestFS_WalkFiles_UnreadableDirIsReported(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{"A.sol": "", "locked/B.sol": ""})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	defer os.Chmod(locked, 0755)

	var reported []string
	var visited []string
	err := fs.WalkFiles(WalkParams{
		Root:       root,
		Extensions: []string{".sol"},
		OnError:    func(path string, _ error) { reported = append(reported, path) },
	}, func(path string) error {
		visited = append(visited, filepath.Base(path))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol"}, visited)
	assert.Equal(t, []string{locked}, reported)
}

func TestFS_WalkFiles_FollowsFileSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges")
	}

	fs := NewFS()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/A.sol":      "",
		"shared/Lib.sol": "",
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "shared", "Lib.sol"), filepath.Join(root, "src", "Lib.sol")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.sol"), filepath.Join(root, "src", "Dangling.sol")))

	var reported []string
	var visited []string
	err := fs.WalkFiles(WalkParams{
		Root:       filepath.Join(root, "src"),
		Extensions: []string{".sol"},
		OnError:    func(path string, _ error) { reported = append(reported, filepath.Base(path)) },
	}, func(path string) error {
		visited = append(visited, filepath.Base(path))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol", "Lib.sol"}, visited)
	assert.Equal(t, []string{"Dangling.sol"}, reported)
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		extensions []string
		want       bool
	}{
		{name: "matching", path: "src/A.sol", extensions: []string{".sol"}, want: true},
		{name: "not matching", path: "src/A.vy", extensions: []string{".sol"}, want: false},
		{name: "several", path: "src/A.vy", extensions: []string{".sol", ".vy"}, want: true},
		{name: "no extension", path: "Makefile", extensions: []string{".sol"}, want: false},
		{name: "empty list", path: "Makefile", extensions: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasExtension(tt.path, tt.extensions))
		})
	}
}
