package commands

import (
	"context"
	"errors"
	"fmt"
	gopath "path"
	"strings"

	"github.com/haloos/shell/internal/shared/paths"
	"github.com/haloos/shell/internal/shared/types"
	"github.com/haloos/shell/internal/vfs"
)

// Cp copies files and directories.
type Cp struct {
	fs vfs.FS
}

// NewCp creates the cp command against fs.
func NewCp(fs vfs.FS) *Cp {
	return &Cp{fs: fs}
}

func (c *Cp) Name() string        { return "cp" }
func (c *Cp) Description() string { return "Copy files and directories" }
func (c *Cp) Usage() string       { return "cp [-r] <source>... <destination>" }

// Execute copies each source in argument order and stops at the first
// failure. Only the destination is write-validated; sources may be read from
// anywhere the capability exposes.
func (c *Cp) Execute(ctx context.Context, args []string, cwd string, stdin string) types.Result {
	pa := parseArgs(args)
	recursive := pa.flags['r'] || pa.flags['R']

	pos := pa.positionals
	if len(pos) == 0 {
		return usageError(c.Name(), "missing file operand", c.Usage())
	}
	if len(pos) == 1 {
		return usageError(c.Name(), fmt.Sprintf("missing destination file operand after '%s'", pos[0]), c.Usage())
	}

	dest := pos[len(pos)-1]
	sources := pos[:len(pos)-1]

	if err := paths.ValidateWritePath(dest, c.Name(), cwd); err != nil {
		return failure(1, err.Error())
	}

	destFull := resolvePath(dest, cwd)
	destInfo, err := c.fs.Stat(ctx, destFull)
	if err != nil && !errors.Is(err, vfs.ErrNotExist) {
		return failure(1, fmt.Sprintf("cp: %s: %s", dest, errPhrase(err)))
	}
	destIsDir := err == nil && destInfo.IsDir

	if len(sources) > 1 && !destIsDir {
		return failure(1, fmt.Sprintf("cp: target '%s' is not a directory", dest))
	}

	for _, src := range sources {
		srcFull := resolvePath(src, cwd)
		info, err := c.fs.Stat(ctx, srcFull)
		if err != nil {
			return failure(1, fmt.Sprintf("cp: %s: %s", src, errPhrase(err)))
		}

		target := destFull
		if destIsDir {
			target = gopath.Join(destFull, gopath.Base(srcFull))
		}

		if info.IsDir {
			if !recursive {
				return failure(1, fmt.Sprintf("cp: -r not specified; omitting directory '%s'", src))
			}
			// A target inside the source would be created by copyDir and
			// then re-listed by it, recursing without bound.
			if target == srcFull || strings.HasPrefix(target, srcFull+"/") {
				display := dest
				if destIsDir {
					display = gopath.Join(dest, gopath.Base(srcFull))
				}
				return failure(1, fmt.Sprintf("cp: cannot copy a directory, '%s', into itself, '%s'", src, display))
			}
			if err := c.copyDir(ctx, srcFull, target); err != nil {
				return failure(1, fmt.Sprintf("cp: %s: %s", src, errPhrase(err)))
			}
			continue
		}
		if err := c.copyFile(ctx, srcFull, target); err != nil {
			return failure(1, fmt.Sprintf("cp: %s: %s", src, errPhrase(err)))
		}
	}
	return success("")
}

// copyDir copies a directory tree depth-first, parent before child.
func (c *Cp) copyDir(ctx context.Context, src, dst string) error {
	if err := ensureDirs(ctx, c.fs, dst); err != nil {
		return err
	}
	entries, err := c.fs.ReadDir(ctx, src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		s := gopath.Join(src, entry.Name)
		d := gopath.Join(dst, entry.Name)
		if entry.IsDir {
			if err := c.copyDir(ctx, s, d); err != nil {
				return err
			}
			continue
		}
		if err := c.copyFile(ctx, s, d); err != nil {
			return err
		}
	}
	return nil
}

// copyFile reads the whole source and writes it to dst, overwriting any
// existing content. Missing ancestors of dst are created.
func (c *Cp) copyFile(ctx context.Context, src, dst string) error {
	if err := ensureDirs(ctx, c.fs, gopath.Dir(dst)); err != nil {
		return err
	}
	data, err := c.fs.ReadFile(ctx, src)
	if err != nil {
		return err
	}
	return c.fs.WriteFile(ctx, dst, data)
}
