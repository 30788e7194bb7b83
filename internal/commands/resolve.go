package commands

import (
	"context"
	"errors"
	gopath "path"

	"github.com/haloos/shell/internal/shared/paths"
	"github.com/haloos/shell/internal/vfs"
)

// resolvePath turns a user-supplied path into the fully resolved absolute
// path the filesystem capability requires.
func resolvePath(p, cwd string) string {
	if paths.IsAbsolute(p) {
		return paths.Normalize(p)
	}
	return gopath.Join(cwd, p)
}

// errPhrase maps a capability error onto the fixed Unix phrase surfaced to
// the user. Unknown failures pass their message through unchanged.
func errPhrase(err error) string {
	switch {
	case errors.Is(err, vfs.ErrNotExist):
		return "No such file or directory"
	case errors.Is(err, vfs.ErrExist):
		return "File exists"
	case errors.Is(err, vfs.ErrIsDir):
		return "Is a directory"
	case errors.Is(err, vfs.ErrNotDir):
		return "Not a directory"
	case errors.Is(err, vfs.ErrPermission):
		return "Permission denied"
	default:
		return err.Error()
	}
}

// ensureDirs creates path and any missing ancestors, depth-first. The upward
// scan short-circuits at the first ancestor that already exists as a
// directory; an ancestor existing as anything else fails with ErrExist.
func ensureDirs(ctx context.Context, fsys vfs.FS, path string) error {
	info, err := fsys.Stat(ctx, path)
	if err == nil {
		if info.IsDir {
			return nil
		}
		return &vfs.PathError{Op: "mkdir", Path: path, Err: vfs.ErrExist}
	}
	if !errors.Is(err, vfs.ErrNotExist) {
		return err
	}

	// Parent of the root is the root itself; recursing past it would never
	// terminate.
	parent := gopath.Dir(path)
	if parent != path {
		if err := ensureDirs(ctx, fsys, parent); err != nil {
			return err
		}
	}
	return fsys.Mkdir(ctx, path)
}
