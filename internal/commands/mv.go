package commands

import (
	"context"
	"errors"
	"fmt"
	gopath "path"

	"github.com/haloos/shell/internal/shared/paths"
	"github.com/haloos/shell/internal/shared/types"
	"github.com/haloos/shell/internal/vfs"
)

// Mv moves files and directories. It refuses to overwrite an existing
// destination; callers that want replacement must remove the target first.
type Mv struct {
	fs vfs.FS
}

// NewMv creates the mv command against fs.
func NewMv(fs vfs.FS) *Mv {
	return &Mv{fs: fs}
}

func (m *Mv) Name() string        { return "mv" }
func (m *Mv) Description() string { return "Move or rename files and directories" }
func (m *Mv) Usage() string       { return "mv <source>... <destination>" }

// Execute moves each source in argument order and stops at the first
// failure. Sources are write-validated as well as the destination, since a
// move deletes its source. Already-applied moves are not rolled back when a
// later one fails.
func (m *Mv) Execute(ctx context.Context, args []string, cwd string, stdin string) types.Result {
	pa := parseArgs(args)

	pos := pa.positionals
	if len(pos) == 0 {
		return usageError(m.Name(), "missing file operand", m.Usage())
	}
	if len(pos) == 1 {
		return usageError(m.Name(), fmt.Sprintf("missing destination file operand after '%s'", pos[0]), m.Usage())
	}

	dest := pos[len(pos)-1]
	sources := pos[:len(pos)-1]

	if err := paths.ValidateWritePath(dest, m.Name(), cwd); err != nil {
		return failure(1, err.Error())
	}
	for _, src := range sources {
		if err := paths.ValidateWritePath(src, m.Name(), cwd); err != nil {
			return failure(1, err.Error())
		}
	}

	destFull := resolvePath(dest, cwd)
	destInfo, err := m.fs.Stat(ctx, destFull)
	if err != nil && !errors.Is(err, vfs.ErrNotExist) {
		return failure(1, fmt.Sprintf("mv: %s: %s", dest, errPhrase(err)))
	}
	destIsDir := err == nil && destInfo.IsDir

	if len(sources) > 1 && !destIsDir {
		return failure(1, fmt.Sprintf("mv: target '%s' is not a directory", dest))
	}

	for _, src := range sources {
		srcFull := resolvePath(src, cwd)
		if _, err := m.fs.Stat(ctx, srcFull); err != nil {
			if errors.Is(err, vfs.ErrNotExist) {
				return failure(1, fmt.Sprintf("mv: cannot stat '%s': No such file or directory", src))
			}
			return failure(1, fmt.Sprintf("mv: %s: %s", src, errPhrase(err)))
		}

		target := destFull
		display := dest
		if destIsDir {
			base := gopath.Base(srcFull)
			target = gopath.Join(destFull, base)
			display = gopath.Join(dest, base)
		}

		if _, err := m.fs.Stat(ctx, target); err == nil {
			return failure(1, fmt.Sprintf("mv: %s: File exists", display))
		} else if !errors.Is(err, vfs.ErrNotExist) {
			return failure(1, fmt.Sprintf("mv: %s: %s", display, errPhrase(err)))
		}

		if err := ensureDirs(ctx, m.fs, gopath.Dir(target)); err != nil {
			return failure(1, fmt.Sprintf("mv: %s: %s", display, errPhrase(err)))
		}
		if err := m.fs.Rename(ctx, srcFull, target); err != nil {
			return failure(1, fmt.Sprintf("mv: %s: %s", src, errPhrase(err)))
		}
	}
	return success("")
}
