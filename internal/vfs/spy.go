package vfs

import (
	"context"
	"sync"
)

// Call records one operation issued against a Recorder.
type Call struct {
	Op   string
	Path string
}

// Recorder wraps an FS and records every operation issued through it.
// Tests use it to assert that denied commands never reach the capability.
type Recorder struct {
	FS FS

	mu    sync.Mutex
	calls []Call
}

// NewRecorder wraps fs with call recording.
func NewRecorder(fs FS) *Recorder {
	return &Recorder{FS: fs}
}

// Calls returns a snapshot of the recorded operations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *Recorder) record(op, path string) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Op: op, Path: path})
	r.mu.Unlock()
}

func (r *Recorder) Stat(ctx context.Context, path string) (FileInfo, error) {
	r.record("stat", path)
	return r.FS.Stat(ctx, path)
}

func (r *Recorder) ReadFile(ctx context.Context, path string) ([]byte, error) {
	r.record("read", path)
	return r.FS.ReadFile(ctx, path)
}

func (r *Recorder) WriteFile(ctx context.Context, path string, data []byte) error {
	r.record("write", path)
	return r.FS.WriteFile(ctx, path, data)
}

func (r *Recorder) Mkdir(ctx context.Context, path string) error {
	r.record("mkdir", path)
	return r.FS.Mkdir(ctx, path)
}

func (r *Recorder) ReadDir(ctx context.Context, path string) ([]FileInfo, error) {
	r.record("readdir", path)
	return r.FS.ReadDir(ctx, path)
}

func (r *Recorder) Rename(ctx context.Context, oldpath, newpath string) error {
	r.record("rename", oldpath)
	return r.FS.Rename(ctx, oldpath, newpath)
}

func (r *Recorder) Remove(ctx context.Context, path string) error {
	r.record("remove", path)
	return r.FS.Remove(ctx, path)
}
