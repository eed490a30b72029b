package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushchain/push-testnet/testnet/types"
)

// keepWd restores the working directory once the test is done.
func keepWd(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func evalPath(t *testing.T, p string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(p)
	require.NoError(t, err)
	return resolved
}

func TestEnsureHomeCreatesAndEnters(t *testing.T) {
	root := t.TempDir()
	keepWd(t)

	home, err := EnsureHome(root, "lighthouse")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "lighthouse"), home)

	fi, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, evalPath(t, home), evalPath(t, wd))
}

func TestEnsureHomeIsIdempotent(t *testing.T) {
	root := t.TempDir()
	keepWd(t)
	home := filepath.Join(root, "lighthouse")
	require.NoError(t, os.Mkdir(home, 0o755))
	marker := filepath.Join(home, "vars.env")
	require.NoError(t, os.WriteFile(marker, []byte("A=1\n"), 0o644))

	for i := 0; i < 2; i++ {
		got, err := EnsureHome(root, "lighthouse")
		require.NoError(t, err)
		assert.Equal(t, home, got)
	}

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "A=1\n", string(data))
}

func TestPrepareDoesNotChangeDirectory(t *testing.T) {
	keepWd(t)
	before, err := os.Getwd()
	require.NoError(t, err)

	home, err := Prepare(t.TempDir(), "lighthouse")
	require.NoError(t, err)
	assert.DirExists(t, home)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEnsureHomeErrors(t *testing.T) {
	keepWd(t)

	t.Run("missing root", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "absent")

		_, err := EnsureHome(root, "lighthouse")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrScaffold))
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.NoDirExists(t, root)
	})

	t.Run("root is a file", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(root, nil, 0o644))

		_, err := EnsureHome(root, "lighthouse")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrScaffold))
	})

	t.Run("home exists as a file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "lighthouse"), nil, 0o644))

		_, err := EnsureHome(root, "lighthouse")
		require.Error(t, err)

		var scaffoldErr *types.ScaffoldError
		require.True(t, errors.As(err, &scaffoldErr))
		assert.Equal(t, filepath.Join(root, "lighthouse"), scaffoldErr.Path)
	})
}
