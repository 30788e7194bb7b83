package paths

import (
	"fmt"
	gopath "path"
	"strings"
)

// Write zones
const (
	// Tmp holds scratch files; always writable.
	Tmp = "/tmp"

	// Projects holds project workspaces; always writable.
	Projects = "/projects"
)

// StandardDirectories returns the directories that should exist on a fresh
// virtual filesystem.
func StandardDirectories() []string {
	return []string{
		Tmp,
		Projects,
	}
}

// IsAbsolute reports whether path uses an absolute grammar: a leading slash,
// a leading backslash, or a drive-letter prefix such as "C:\".
func IsAbsolute(path string) bool {
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) {
		return true
	}
	return hasDrivePrefix(path)
}

// hasDrivePrefix matches "<letter>:" followed by a slash or backslash.
func hasDrivePrefix(path string) bool {
	if len(path) < 3 || path[1] != ':' {
		return false
	}
	c := path[0]
	if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
		return false
	}
	return path[2] == '/' || path[2] == '\\'
}

// Normalize collapses separators and dot segments into a canonical
// slash-separated form for zone comparison.
func Normalize(path string) string {
	return gopath.Clean(strings.ReplaceAll(path, `\`, "/"))
}

// IsWriteAllowed reports whether a mutating operation may target path.
// Relative paths are always allowed; absolute paths must normalize to a
// write zone or a descendant of one. An empty cwd means no working-directory
// zone applies.
func IsWriteAllowed(path, cwd string) bool {
	if !IsAbsolute(path) {
		return true
	}

	norm := Normalize(path)

	zones := []string{Tmp, Projects}
	if cwd != "" && IsAbsolute(cwd) {
		zones = append(zones, Normalize(cwd))
	}

	for _, zone := range zones {
		if norm == zone || strings.HasPrefix(norm, zone+"/") {
			return true
		}
	}
	return false
}

// SecurityError reports a write denied by the sandbox policy. Denial is
// terminal for the path: it is never retried or downgraded.
type SecurityError struct {
	Op   string
	Path string
	Cwd  string
}

func (e *SecurityError) Error() string {
	msg := fmt.Sprintf("%s: write access denied to %s. Write operations are only allowed in project directories and /tmp", e.Op, e.Path)
	if cwdAddsZone(e.Cwd) {
		msg += " or " + e.Cwd
	}
	return msg
}

// cwdAddsZone reports whether cwd names a write zone the standard ones do not
// already cover; denial messages only mention it when it does.
func cwdAddsZone(cwd string) bool {
	if cwd == "" {
		return false
	}
	norm := Normalize(cwd)
	return norm != Tmp && norm != Projects
}

// ValidateWritePath is the single enforcement point for the write sandbox.
// Every mutating command must call it, for every path it intends to write,
// before touching the filesystem capability.
func ValidateWritePath(path, op, cwd string) error {
	if IsWriteAllowed(path, cwd) {
		return nil
	}
	return &SecurityError{Op: op, Path: path, Cwd: cwd}
}

// DescribeDenied produces a long-form explanation of a denied write, listing
// the allowed zones with example paths. Callers surface this when they want
// richer diagnostics than the short validation error.
func DescribeDenied(path, tool, cwd string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s cannot write to %s.\n\n", tool, path)
	b.WriteString("Writes are restricted to the sandbox:\n")
	fmt.Fprintf(&b, "  %s        temporary files (e.g. %s/scratch.txt)\n", Tmp, Tmp)
	fmt.Fprintf(&b, "  %s   project workspaces (e.g. %s/demo/README.md)\n", Projects, Projects)
	if cwdAddsZone(cwd) {
		fmt.Fprintf(&b, "  %s   the current working directory\n", cwd)
	}
	b.WriteString("\nRelative paths resolve against the working directory and are always allowed.")
	return b.String()
}
