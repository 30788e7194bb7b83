package commands

import (
	"fmt"
	"sort"
	"sync"

	"github.com/haloos/shell/internal/shared/types"
	"github.com/haloos/shell/internal/vfs"
)

// Registry manages command registration and lookup. Commands are siblings:
// the registry dispatches to them but they never call one another.
type Registry struct {
	commands sync.Map
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry registers the full command set against fs.
func NewDefaultRegistry(fs vfs.FS) *Registry {
	r := NewRegistry()
	for _, cmd := range []Command{
		NewTouch(fs),
		NewMkdir(fs),
		NewCp(fs),
		NewMv(fs),
		NewDiff(fs),
	} {
		// Names are compile-time constants; registration cannot collide.
		_ = r.Register(cmd)
	}
	return r
}

// Register adds a command
func (r *Registry) Register(cmd Command) error {
	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	r.commands.Store(name, cmd)
	return nil
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	val, ok := r.commands.Load(name)
	if !ok {
		return nil, false
	}
	return val.(Command), true
}

// List returns metadata for all registered commands, sorted by name
func (r *Registry) List() []types.CommandInfo {
	var infos []types.CommandInfo
	r.commands.Range(func(_, value interface{}) bool {
		infos = append(infos, Info(value.(Command)))
		return true
	})
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	total := 0
	r.commands.Range(func(_, _ interface{}) bool {
		total++
		return true
	})
	return map[string]interface{}{
		"total_commands": total,
	}
}
