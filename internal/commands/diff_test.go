package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haloos/shell/internal/vfs"
)

func TestDiffIdentical(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "same\ncontent\n")
	mustWrite(t, fs, "/tmp/b.txt", "same\ncontent\n")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"a.txt", "b.txt"}, "/tmp", "")
	assert.Equal(t, 0, res.ExitCode)
	assert.Empty(t, res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestDiffChangedLine(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "hello\nworld\n")
	mustWrite(t, fs, "/tmp/b.txt", "hello\nplanet\n")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"a.txt", "b.txt"}, "/tmp", "")
	assert.Equal(t, 1, res.ExitCode)
	assert.Empty(t, res.Stdout)
	assert.Equal(t, "2c2\n< world\n---\n> planet\n", res.Stderr)
}

func TestDiffAppendedLine(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "hello\n")
	mustWrite(t, fs, "/tmp/b.txt", "hello\nworld\n")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"a.txt", "b.txt"}, "/tmp", "")
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "1a2,2\n> world\n", res.Stderr)
}

func TestDiffDeletedLines(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "one\ntwo\nthree\n")
	mustWrite(t, fs, "/tmp/b.txt", "one\n")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"a.txt", "b.txt"}, "/tmp", "")
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "2,3d1\n< two\n< three\n", res.Stderr)
}

func TestDiffUnified(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "one\ntwo\nthree\n")
	mustWrite(t, fs, "/tmp/b.txt", "one\ntwo\n3\n")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"-u", "a.txt", "b.txt"}, "/tmp", "")
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t,
		"--- a.txt\n+++ b.txt\n@@ -1,3 +1,3 @@\n one\n two\n-three\n+3\n",
		res.Stderr)
}

func TestDiffUnifiedContextWindow(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "l1\nl2\nl3\nl4\nl5\nold\nl7\nl8\nl9\nl10\n")
	mustWrite(t, fs, "/tmp/b.txt", "l1\nl2\nl3\nl4\nl5\nnew\nl7\nl8\nl9\nl10\n")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"-u", "a.txt", "b.txt"}, "/tmp", "")
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t,
		"--- a.txt\n+++ b.txt\n@@ -3,7 +3,7 @@\n l3\n l4\n l5\n-old\n+new\n l7\n l8\n l9\n",
		res.Stderr)
}

func TestDiffNoTrailingNewline(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "hello")
	mustWrite(t, fs, "/tmp/b.txt", "world")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"a.txt", "b.txt"}, "/tmp", "")
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "1c1\n< hello\n---\n> world\n", res.Stderr)
}

func TestDiffTrailingNewlineOnly(t *testing.T) {
	// Byte-wise unequal, line-wise equal: exits 1 with nothing to render.
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "hello")
	mustWrite(t, fs, "/tmp/b.txt", "hello\n")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"a.txt", "b.txt"}, "/tmp", "")
	assert.Equal(t, 1, res.ExitCode)
	assert.Empty(t, res.Stderr)
}

func TestDiffMissingFile(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "x\n")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"a.txt", "nope.txt"}, "/tmp", "")
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, "diff: nope.txt: No such file or directory", res.Stderr)
}

func TestDiffDirectory(t *testing.T) {
	fs := newTestFS(t)
	mustWrite(t, fs, "/tmp/a.txt", "x\n")
	mustMkdir(t, fs, "/tmp/d")
	diff := NewDiff(fs)

	res := diff.Execute(context.Background(), []string{"a.txt", "d"}, "/tmp", "")
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, "diff: d: Is a directory", res.Stderr)
}

func TestDiffAbsolutePathRejected(t *testing.T) {
	rec := vfs.NewRecorder(newTestFS(t))
	diff := NewDiff(rec)

	res := diff.Execute(context.Background(), []string{"/etc/passwd", "b.txt"}, "/tmp", "")
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, "diff: /etc/passwd: absolute paths are not supported", res.Stderr)
	assert.Empty(t, rec.Calls())
}

func TestDiffOperandErrors(t *testing.T) {
	diff := NewDiff(newTestFS(t))
	ctx := context.Background()

	res := diff.Execute(ctx, []string{"a.txt"}, "/tmp", "")
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, "diff: missing operand\nUsage: diff [-u] <file1> <file2>", res.Stderr)

	res = diff.Execute(ctx, []string{"a.txt", "b.txt", "c.txt"}, "/tmp", "")
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, "diff: extra operand 'c.txt'\nUsage: diff [-u] <file1> <file2>", res.Stderr)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a", "", "b"}, splitLines("a\n\nb\n"))
	assert.Empty(t, splitLines(""))
}
