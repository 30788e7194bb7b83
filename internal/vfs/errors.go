package vfs

import "errors"

// Closed error set for the capability contract. Implementations must report
// failures through these sentinels so callers can classify with errors.Is
// instead of sniffing message text.
var (
	ErrNotExist   = errors.New("no such file or directory")
	ErrExist      = errors.New("file exists")
	ErrIsDir      = errors.New("is a directory")
	ErrNotDir     = errors.New("not a directory")
	ErrNotEmpty   = errors.New("directory not empty")
	ErrPermission = errors.New("permission denied")
	ErrInvalid    = errors.New("invalid argument")
)

// PathError records an operation, the path it failed on, and the sentinel
// that classifies the failure.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}
