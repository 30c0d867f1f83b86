package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/itergen/pkg/types"
	"github.com/stretchr/testify/require"
)

// WriteTree creates files below root on disk. Keys are slash separated
// paths relative to root; parent directories are created as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// WriteFiles creates files in fsys. Keys are absolute or relative paths.
func WriteFiles(t *testing.T, fsys types.FS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
	}
}
