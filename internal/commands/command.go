package commands

import (
	"context"
	"fmt"

	"github.com/haloos/shell/internal/shared/types"
)

// Command is the uniform contract every shell command implements.
//
// Execute never fails loudly: every error is mapped into the returned
// Result. stdin is accepted for protocol uniformity across shell commands;
// none of the commands in this package consume it.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Execute(ctx context.Context, args []string, cwd string, stdin string) types.Result
}

// Info builds the metadata record for a command.
func Info(cmd Command) types.CommandInfo {
	return types.CommandInfo{
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Usage:       cmd.Usage(),
	}
}

func success(stdout string) types.Result {
	return types.Result{ExitCode: 0, Stdout: stdout}
}

func failure(code int, stderr string) types.Result {
	return types.Result{ExitCode: code, Stderr: stderr}
}

func usageError(name, problem, usage string) types.Result {
	return usageErrorCode(1, name, problem, usage)
}

func usageErrorCode(code int, name, problem, usage string) types.Result {
	return failure(code, fmt.Sprintf("%s: %s\nUsage: %s", name, problem, usage))
}
