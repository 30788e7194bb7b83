package types

// ExecuteRequest represents a command execution request
type ExecuteRequest struct {
	Command string   `json:"command" binding:"required"`
	Args    []string `json:"args"`
	Cwd     string   `json:"cwd" binding:"required"`
	Stdin   string   `json:"stdin,omitempty"`
}

// WSMessage represents a WebSocket shell session frame
type WSMessage struct {
	Type    string   `json:"type"`
	ID      string   `json:"id,omitempty"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	Cwd     string   `json:"cwd,omitempty"`
	Stdin   string   `json:"stdin,omitempty"`
}

// WSResult is the frame sent back for an executed command
type WSResult struct {
	Type     string `json:"type"`
	ID       string `json:"id,omitempty"`
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	Error    string `json:"error,omitempty"`
}
