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

// Touch creates empty files.
type Touch struct {
	fs vfs.FS
}

// NewTouch creates the touch command against fs.
func NewTouch(fs vfs.FS) *Touch {
	return &Touch{fs: fs}
}

func (t *Touch) Name() string        { return "touch" }
func (t *Touch) Description() string { return "Create empty files" }
func (t *Touch) Usage() string       { return "touch <file>..." }

// Execute processes each target in order and stops at the first failure.
func (t *Touch) Execute(ctx context.Context, args []string, cwd string, stdin string) types.Result {
	pa := parseArgs(args)
	if len(pa.positionals) == 0 {
		return usageError(t.Name(), "missing file operand", t.Usage())
	}

	for _, arg := range pa.positionals {
		if err := paths.ValidateWritePath(arg, t.Name(), cwd); err != nil {
			return failure(1, err.Error())
		}
		full := resolvePath(arg, cwd)

		info, err := t.fs.Stat(ctx, full)
		switch {
		case err == nil && info.IsDir:
			return failure(1, fmt.Sprintf("touch: %s: Is a directory", arg))
		case err == nil:
			// Existing file: no-op. The capability tracks no timestamps,
			// so there is nothing to update.
			continue
		case !errors.Is(err, vfs.ErrNotExist):
			return failure(1, fmt.Sprintf("touch: %s: %s", arg, errPhrase(err)))
		}

		if _, err := t.fs.Stat(ctx, gopath.Dir(full)); err != nil {
			return failure(1, fmt.Sprintf("touch: %s: No such file or directory", arg))
		}
		if err := t.fs.WriteFile(ctx, full, nil); err != nil {
			return failure(1, fmt.Sprintf("touch: %s: %s", arg, errPhrase(err)))
		}
	}
	return success("")
}
