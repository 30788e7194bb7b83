package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/haloos/shell/internal/shared/paths"
	"github.com/haloos/shell/internal/shared/types"
	"github.com/haloos/shell/internal/vfs"
)

// Mkdir creates directories.
type Mkdir struct {
	fs vfs.FS
}

// NewMkdir creates the mkdir command against fs.
func NewMkdir(fs vfs.FS) *Mkdir {
	return &Mkdir{fs: fs}
}

func (m *Mkdir) Name() string        { return "mkdir" }
func (m *Mkdir) Description() string { return "Create directories" }
func (m *Mkdir) Usage() string       { return "mkdir [-p] <directory>..." }

// Execute creates each directory in order and stops at the first failure.
// With -p, missing ancestors are created and existing directories are not an
// error.
func (m *Mkdir) Execute(ctx context.Context, args []string, cwd string, stdin string) types.Result {
	pa := parseArgs(args)
	if len(pa.positionals) == 0 {
		return usageError(m.Name(), "missing operand", m.Usage())
	}

	for _, arg := range pa.positionals {
		if err := paths.ValidateWritePath(arg, m.Name(), cwd); err != nil {
			return failure(1, err.Error())
		}
		full := resolvePath(arg, cwd)

		if pa.flags['p'] {
			if err := ensureDirs(ctx, m.fs, full); err != nil {
				// A non-directory anywhere in the chain reports the
				// originally requested path, not the intermediate node.
				if errors.Is(err, vfs.ErrExist) || errors.Is(err, vfs.ErrNotDir) {
					return failure(1, fmt.Sprintf("mkdir: %s: File exists", arg))
				}
				return failure(1, fmt.Sprintf("mkdir: %s: %s", arg, errPhrase(err)))
			}
			continue
		}

		if _, err := m.fs.Stat(ctx, full); err == nil {
			return failure(1, fmt.Sprintf("mkdir: %s: File exists", arg))
		} else if !errors.Is(err, vfs.ErrNotExist) {
			return failure(1, fmt.Sprintf("mkdir: %s: %s", arg, errPhrase(err)))
		}
		if err := m.fs.Mkdir(ctx, full); err != nil {
			return failure(1, fmt.Sprintf("mkdir: %s: %s", arg, errPhrase(err)))
		}
	}
	return success("")
}
