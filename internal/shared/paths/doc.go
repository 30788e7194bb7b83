// Package paths provides the write sandbox policy for the virtual filesystem.
//
// The virtual filesystem exposes locations a command must never write to.
// This package classifies paths and decides, before any filesystem call is
// made, whether a mutating operation may proceed.
//
// # Write Sandbox
//
//	/tmp/              (temporary files, always writable)
//	/projects/         (project workspaces, always writable)
//	<cwd>/             (the invocation's working directory, when supplied)
//
// Relative paths are always permitted: they resolve against the working
// directory and stay inside the sandbox by construction. Absolute paths are
// allow-listed against the zones above; everything else is denied.
//
// # Usage
//
//	if err := paths.ValidateWritePath(target, "cp", cwd); err != nil {
//	    // terminal for this path; never retried or downgraded
//	}
package paths
