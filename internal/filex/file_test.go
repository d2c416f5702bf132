package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAll_CreatesParents(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "reports", "2026", "r.csv")

	f, err := CreateAll(path)
	require.NoError(t, err)
	_, err = f.WriteString("a,b\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a,b\n", string(b))
}

func TestCreateAll_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.csv")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o660))

	f, err := CreateAll(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestCreateAll_FailsIfParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "reports")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o660))

	_, err := CreateAll(filepath.Join(blocker, "r.csv"))
	require.Error(t, err)
}
