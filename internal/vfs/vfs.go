package vfs

import (
	"context"
	"time"
)

// FileInfo represents file metadata
type FileInfo struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	IsDir    bool      `json:"is_dir"`
	Modified time.Time `json:"modified"`
}

// FS is the virtual filesystem capability.
//
// Every path argument must be a fully resolved absolute path. Implementations
// are shared across invocations and must be safe for concurrent use, but they
// provide no transactional isolation: concurrent commands over overlapping
// paths interleave however the store happens to schedule them.
type FS interface {
	// Stat returns metadata for the node at path.
	Stat(ctx context.Context, path string) (FileInfo, error)

	// ReadFile returns the full content of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile creates or overwrites the file at path. The parent
	// directory must already exist.
	WriteFile(ctx context.Context, path string, data []byte) error

	// Mkdir creates a single directory. The parent must already exist and
	// the target must not.
	Mkdir(ctx context.Context, path string) error

	// ReadDir lists the entries of a directory, sorted by name.
	ReadDir(ctx context.Context, path string) ([]FileInfo, error)

	// Rename atomically moves oldpath to newpath. The destination must not
	// already exist.
	Rename(ctx context.Context, oldpath, newpath string) error

	// Remove deletes a file or an empty directory.
	Remove(ctx context.Context, path string) error
}
