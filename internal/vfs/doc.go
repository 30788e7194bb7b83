// Package vfs defines the virtual filesystem capability consumed by the
// shell commands, together with an in-memory implementation.
//
// The capability is deliberately small: stat, read, write, mkdir, readdir,
// rename, remove. All paths handed to it must already be fully resolved
// absolute paths; resolution against a working directory is the caller's job.
//
// Failures are reported through a closed error set (ErrNotExist, ErrExist,
// ErrIsDir, ErrNotDir, ErrNotEmpty, ErrPermission, ErrInvalid) wrapped in a
// *PathError. Callers classify with errors.Is; message text is never part of
// the contract, so implementations backed by different stores cannot break
// error mapping by phrasing things differently.
//
// Backing stores other than MemFS (browser storage, a native filesystem) can
// satisfy the same interface as long as they return the same error set.
package vfs
