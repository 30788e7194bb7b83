package types

// Result represents the outcome of a single command invocation.
//
// ExitCode is zero iff the command fully succeeded. A command that fails
// partway through a multi-target invocation reports only the first failure;
// later targets are left unprocessed.
type Result struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Failed reports whether the invocation ended with a nonzero exit code.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// CommandInfo describes a registered shell command.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}
