package vfs

import (
	"context"
	gopath "path"
	"sort"
	"strings"
	"sync"
	"time"
)

type node struct {
	dir      bool
	data     []byte
	children map[string]*node
	modified time.Time
}

func newDirNode() *node {
	return &node{
		dir:      true,
		children: make(map[string]*node),
		modified: time.Now(),
	}
}

// MemFS is an in-memory virtual filesystem. It implements FS and is safe for
// concurrent use. State lives only for the lifetime of the process.
type MemFS struct {
	mu   sync.RWMutex
	root *node
}

// NewMemFS creates an empty filesystem containing only the root directory.
func NewMemFS() *MemFS {
	return &MemFS{root: newDirNode()}
}

// splitPath validates and normalizes an absolute path into segments.
// The root path yields zero segments.
func splitPath(op, path string) ([]string, string, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, "", &PathError{Op: op, Path: path, Err: ErrInvalid}
	}
	clean := gopath.Clean(path)
	if clean == "/" {
		return nil, clean, nil
	}
	return strings.Split(strings.TrimPrefix(clean, "/"), "/"), clean, nil
}

// lookup walks the tree to the node at path. Caller holds the lock.
func (m *MemFS) lookup(op, path string) (*node, error) {
	segs, _, err := splitPath(op, path)
	if err != nil {
		return nil, err
	}
	cur := m.root
	for _, seg := range segs {
		if !cur.dir {
			return nil, &PathError{Op: op, Path: path, Err: ErrNotDir}
		}
		next, ok := cur.children[seg]
		if !ok {
			return nil, &PathError{Op: op, Path: path, Err: ErrNotExist}
		}
		cur = next
	}
	return cur, nil
}

// lookupParent walks to the parent directory of path and returns it along
// with the final path segment. Caller holds the lock.
func (m *MemFS) lookupParent(op, path string) (*node, string, error) {
	segs, clean, err := splitPath(op, path)
	if err != nil {
		return nil, "", err
	}
	if len(segs) == 0 {
		return nil, "", &PathError{Op: op, Path: clean, Err: ErrInvalid}
	}
	parent, err := m.lookup(op, gopath.Dir(clean))
	if err != nil {
		return nil, "", err
	}
	if !parent.dir {
		return nil, "", &PathError{Op: op, Path: clean, Err: ErrNotDir}
	}
	return parent, segs[len(segs)-1], nil
}

func (m *MemFS) Stat(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, err := m.lookup("stat", path)
	if err != nil {
		return FileInfo{}, err
	}
	return m.info(path, n), nil
}

func (m *MemFS) info(path string, n *node) FileInfo {
	clean := gopath.Clean(path)
	return FileInfo{
		Name:     gopath.Base(clean),
		Path:     clean,
		Size:     int64(len(n.data)),
		IsDir:    n.dir,
		Modified: n.modified,
	}
}

func (m *MemFS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, err := m.lookup("read", path)
	if err != nil {
		return nil, err
	}
	if n.dir {
		return nil, &PathError{Op: "read", Path: path, Err: ErrIsDir}
	}
	out := make([]byte, len(n.data))
	copy(out, n.data)
	return out, nil
}

func (m *MemFS) WriteFile(ctx context.Context, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	parent, name, err := m.lookupParent("write", path)
	if err != nil {
		return err
	}
	if existing, ok := parent.children[name]; ok && existing.dir {
		return &PathError{Op: "write", Path: path, Err: ErrIsDir}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	parent.children[name] = &node{data: buf, modified: time.Now()}
	return nil
}

func (m *MemFS) Mkdir(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	parent, name, err := m.lookupParent("mkdir", path)
	if err != nil {
		return err
	}
	if _, ok := parent.children[name]; ok {
		return &PathError{Op: "mkdir", Path: path, Err: ErrExist}
	}
	parent.children[name] = newDirNode()
	return nil
}

func (m *MemFS) ReadDir(ctx context.Context, path string) ([]FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n, err := m.lookup("readdir", path)
	if err != nil {
		return nil, err
	}
	if !n.dir {
		return nil, &PathError{Op: "readdir", Path: path, Err: ErrNotDir}
	}

	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)

	clean := gopath.Clean(path)
	entries := make([]FileInfo, 0, len(names))
	for _, name := range names {
		entries = append(entries, m.info(gopath.Join(clean, name), n.children[name]))
	}
	return entries, nil
}

func (m *MemFS) Rename(ctx context.Context, oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldClean := gopath.Clean(oldpath)
	newClean := gopath.Clean(newpath)

	// Renaming a directory into itself would orphan the subtree.
	if newClean == oldClean || strings.HasPrefix(newClean, oldClean+"/") {
		return &PathError{Op: "rename", Path: newpath, Err: ErrInvalid}
	}

	oldParent, oldName, err := m.lookupParent("rename", oldpath)
	if err != nil {
		return err
	}
	n, ok := oldParent.children[oldName]
	if !ok {
		return &PathError{Op: "rename", Path: oldpath, Err: ErrNotExist}
	}

	newParent, newName, err := m.lookupParent("rename", newpath)
	if err != nil {
		return err
	}
	if _, exists := newParent.children[newName]; exists {
		return &PathError{Op: "rename", Path: newpath, Err: ErrExist}
	}

	delete(oldParent.children, oldName)
	newParent.children[newName] = n
	n.modified = time.Now()
	return nil
}

func (m *MemFS) Remove(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	parent, name, err := m.lookupParent("remove", path)
	if err != nil {
		return err
	}
	n, ok := parent.children[name]
	if !ok {
		return &PathError{Op: "remove", Path: path, Err: ErrNotExist}
	}
	if n.dir && len(n.children) > 0 {
		return &PathError{Op: "remove", Path: path, Err: ErrNotEmpty}
	}
	delete(parent.children, name)
	return nil
}
