package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for sketch discovery:
// - Default patterns find .ino and .pde files, including at the root
// - build/ and .git/ trees are ignored by default
// - Custom directory ignore patterns cover their contents
// - Results are sorted

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("void setup(){}\nvoid loop(){}\n"), 0o644))
}

func TestDiscover_Defaults(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "blink.ino")
	writeFile(t, root, "projects/servo/servo.ino")
	writeFile(t, root, "legacy/old.pde")
	writeFile(t, root, "notes/readme.md")
	writeFile(t, root, "build/generated.ino")
	writeFile(t, root, ".git/hooks/sample.ino")

	sd, err := New(root, nil, nil)
	require.NoError(t, err)

	found, err := sd.Discover()
	require.NoError(t, err)

	rel := make([]string, len(found))
	for i, f := range found {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel[i] = filepath.ToSlash(r)
	}

	assert.Equal(t, []string{"blink.ino", "legacy/old.pde", "projects/servo/servo.ino"}, rel)
}

func TestDiscover_CustomIgnore(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "keep/a.ino")
	writeFile(t, root, "skip/b.ino")

	sd, err := New(root, nil, []string{"skip/**"})
	require.NoError(t, err)

	found, err := sd.Discover()
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Contains(t, filepath.ToSlash(found[0]), "keep/a.ino")
}

func TestNew_BadPattern(t *testing.T) {
	t.Parallel()

	_, err := New(t.TempDir(), []string{"[unclosed"}, nil)
	assert.Error(t, err)
}
