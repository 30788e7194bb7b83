package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haloos/shell/internal/vfs"
)

// newTestFS builds a filesystem seeded with the standard write zones and a
// working project directory.
func newTestFS(t *testing.T) *vfs.MemFS {
	t.Helper()
	ctx := context.Background()
	fs := vfs.NewMemFS()
	for _, dir := range []string{"/tmp", "/projects", "/projects/demo"} {
		require.NoError(t, fs.Mkdir(ctx, dir))
	}
	return fs
}

func mustWrite(t *testing.T, fs vfs.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.WriteFile(context.Background(), path, []byte(content)))
}

func mustMkdir(t *testing.T, fs vfs.FS, path string) {
	t.Helper()
	require.NoError(t, fs.Mkdir(context.Background(), path))
}

func readString(t *testing.T, fs vfs.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(context.Background(), path)
	require.NoError(t, err)
	return string(data)
}

func exists(fs vfs.FS, path string) bool {
	_, err := fs.Stat(context.Background(), path)
	return err == nil
}

// mutations counts the write-side operations a recorder saw.
func mutations(rec *vfs.Recorder) int {
	n := 0
	for _, call := range rec.Calls() {
		switch call.Op {
		case "write", "mkdir", "rename", "remove":
			n++
		}
	}
	return n
}
