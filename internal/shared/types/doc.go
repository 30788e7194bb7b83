// Package types provides shared data structures for the shell service.
//
// This package defines core types used across all shell components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - Result: Standard command result (exit code, stdout, stderr)
//   - CommandInfo: Command metadata (name, description, usage)
//
// Request Types:
//   - ExecuteRequest: Command execution over HTTP
//   - WSMessage, WSResult: WebSocket shell session frames
//
// Example Usage:
//
//	res := types.Result{ExitCode: 0, Stdout: "ok\n"}
//	if res.Failed() {
//	    // surface res.Stderr to the caller
//	}
package types
