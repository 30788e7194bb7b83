// Package commands implements the sandboxed shell command set.
//
// Commands are organized as siblings behind a uniform contract:
//   - touch: create empty files
//   - mkdir: create directories (with -p parent creation)
//   - cp: copy files and directories (with -r recursion)
//   - mv: move files and directories (refuses to overwrite)
//   - diff: compare two files (normal and unified output)
//
// All commands:
//   - Operate on an abstract filesystem capability, never the host OS
//   - Validate every write path against the sandbox policy first
//   - Process targets strictly in argument order, stopping at the first failure
//   - Report outcomes through a Result (exit code, stdout, stderr) and never
//     panic past the Execute boundary
//
// Flag parsing is a two-pass scan into flags and positionals before any
// business logic runs; unknown single-character flags are tolerated there,
// and only there.
//
// Example Usage:
//
//	reg := commands.NewDefaultRegistry(fs)
//	cmd, _ := reg.Get("cp")
//	res := cmd.Execute(ctx, []string{"-r", "src", "dst"}, "/projects/demo", "")
package commands
