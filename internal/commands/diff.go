package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	gopath "path"
	"strings"

	"github.com/haloos/shell/internal/shared/paths"
	"github.com/haloos/shell/internal/shared/types"
	"github.com/haloos/shell/internal/vfs"
)

// Diff compares two files line by line. It is read-only and never consults
// the write sandbox; instead it rejects absolute paths outright, since it
// has no reason to read outside the working directory.
//
// Exit codes follow the Unix diff convention: 0 means identical, 1 means
// differences were found, 2 means trouble.
type Diff struct {
	fs vfs.FS
}

// NewDiff creates the diff command against fs.
func NewDiff(fs vfs.FS) *Diff {
	return &Diff{fs: fs}
}

func (d *Diff) Name() string        { return "diff" }
func (d *Diff) Description() string { return "Compare two files line by line" }
func (d *Diff) Usage() string       { return "diff [-u] <file1> <file2>" }

// Execute compares exactly one pair of files. When they differ, the rendered
// diff goes to stderr with exit code 1.
func (d *Diff) Execute(ctx context.Context, args []string, cwd string, stdin string) types.Result {
	pa := parseArgs(args)
	unified := pa.flags['u']

	pos := pa.positionals
	if len(pos) < 2 {
		return usageErrorCode(2, d.Name(), "missing operand", d.Usage())
	}
	if len(pos) > 2 {
		return usageErrorCode(2, d.Name(), fmt.Sprintf("extra operand '%s'", pos[2]), d.Usage())
	}

	contents := make([][]byte, 2)
	for i, name := range pos[:2] {
		if paths.IsAbsolute(name) {
			return failure(2, fmt.Sprintf("diff: %s: absolute paths are not supported", name))
		}
		full := gopath.Join(cwd, name)

		info, err := d.fs.Stat(ctx, full)
		if err != nil {
			if errors.Is(err, vfs.ErrNotExist) {
				return failure(2, fmt.Sprintf("diff: %s: No such file or directory", name))
			}
			return failure(2, fmt.Sprintf("diff: %s: %s", name, errPhrase(err)))
		}
		if info.IsDir {
			return failure(2, fmt.Sprintf("diff: %s: Is a directory", name))
		}

		data, err := d.fs.ReadFile(ctx, full)
		if err != nil {
			return failure(2, fmt.Sprintf("diff: %s: %s", name, errPhrase(err)))
		}
		contents[i] = data
	}

	if bytes.Equal(contents[0], contents[1]) {
		return success("")
	}

	a := splitLines(string(contents[0]))
	b := splitLines(string(contents[1]))

	var out string
	if unified {
		out = renderUnified(pos[0], pos[1], a, b)
	} else {
		out = renderNormal(a, b)
	}
	return types.Result{ExitCode: 1, Stderr: out}
}

// splitLines splits on newlines, dropping the empty element a trailing
// newline produces so line numbering matches what users count.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// commonPrefix returns the number of leading lines shared by a and b.
func commonPrefix(a, b []string) int {
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		p++
	}
	return p
}

// renderNormal renders the classic ed-style format. The comparison is a
// common-prefix simplification, exact only for a single contiguous edit
// region; it is kept bug-for-bug compatible with the legacy behavior.
func renderNormal(a, b []string) string {
	p := commonPrefix(a, b)

	var sb strings.Builder
	switch {
	case len(a) < len(b):
		// Pure append.
		fmt.Fprintf(&sb, "%da%d,%d\n", p, p+1, len(b))
		for _, line := range b[p:] {
			sb.WriteString("> " + line + "\n")
		}
	case len(a) > len(b):
		// Pure deletion.
		fmt.Fprintf(&sb, "%d,%dd%d\n", p+1, len(a), p)
		for _, line := range a[p:] {
			sb.WriteString("< " + line + "\n")
		}
	default:
		// Same length: one change block per differing line.
		for i := p; i < len(a); i++ {
			if a[i] == b[i] {
				continue
			}
			fmt.Fprintf(&sb, "%dc%d\n< %s\n---\n> %s\n", i+1, i+1, a[i], b[i])
		}
	}
	return sb.String()
}

// renderUnified renders a single @@ hunk covering the whole change, with up
// to three lines of context on each side. One hunk total, even for files
// with multiple separated edits; preserving that simplification is part of
// the output contract.
func renderUnified(name1, name2 string, a, b []string) string {
	var sb strings.Builder
	sb.WriteString("--- " + name1 + "\n")
	sb.WriteString("+++ " + name2 + "\n")

	d := commonPrefix(a, b)

	// Shared tail after the change.
	s := 0
	for s < len(a)-d && s < len(b)-d && a[len(a)-1-s] == b[len(b)-1-s] {
		s++
	}

	ctxStart := d - 3
	if ctxStart < 0 {
		ctxStart = 0
	}

	tailStart := len(a) - s
	tailEnd := tailStart + 3
	if tailEnd > len(a) {
		tailEnd = len(a)
	}

	lead := d - ctxStart
	trail := tailEnd - tailStart
	len1 := lead + (len(a) - s - d) + trail
	len2 := lead + (len(b) - s - d) + trail

	fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", ctxStart+1, len1, ctxStart+1, len2)

	for _, line := range a[ctxStart:d] {
		sb.WriteString(" " + line + "\n")
	}
	for _, line := range a[d : len(a)-s] {
		sb.WriteString("-" + line + "\n")
	}
	for _, line := range b[d : len(b)-s] {
		sb.WriteString("+" + line + "\n")
	}
	for _, line := range a[tailStart:tailEnd] {
		sb.WriteString(" " + line + "\n")
	}
	return sb.String()
}
