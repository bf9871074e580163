package registry

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/google/uuid"
)

// State is the state of the single-active-database state machine.
type State int

const (
	Sealed State = iota
	Unsealed
)

func (s State) String() string {
	switch s {
	case Sealed:
		return "sealed"
	case Unsealed:
		return "unsealed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Registry wraps the pointer file at Path.
type Registry struct {
	Path string
}

// New returns a Registry backed by path.
func New(path string) *Registry {
	return &Registry{Path: path}
}

// Set records path as the active store. The path is made absolute and the
// pointer file is replaced atomically.
func (r *Registry) Set(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: creating %s: %w", terrors.ErrIO, dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(r.Path)+"."+uuid.NewString())
	if err := os.WriteFile(tmp, []byte(abs+"\n"), 0600); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: writing registry: %w", terrors.ErrIO, err)
	}
	if err := os.Rename(tmp, r.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: writing registry: %w", terrors.ErrIO, err)
	}

	return nil
}

// Get returns the active path. ok is false when the registry is absent,
// unreadable or empty.
func (r *Registry) Get() (path string, ok bool) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return "", false
	}

	line, _, _ := bytes.Cut(data, []byte("\n"))
	path = string(bytes.TrimSpace(line))
	if path == "" {
		return "", false
	}

	return path, true
}

// Clear removes the pointer. Clearing an absent registry is not an error.
func (r *Registry) Clear() error {
	if err := os.Remove(r.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing registry: %w", terrors.ErrIO, err)
	}
	return nil
}

// IsActive reports whether a store is currently unsealed.
func (r *Registry) IsActive() bool {
	_, ok := r.Get()
	return ok
}

// State returns the current state and, when Unsealed, the active path.
func (r *Registry) State() (State, string) {
	if path, ok := r.Get(); ok {
		return Unsealed, path
	}
	return Sealed, ""
}

// Unlocker releases a lock taken by Lock.
type Unlocker interface {
	Unlock() error
}

// Lock takes the exclusive advisory lock guarding the registry. It blocks
// until the lock is available.
func (r *Registry) Lock() (Unlocker, error) {
	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %w", terrors.ErrIO, dir, err)
	}

	f, err := os.OpenFile(r.Path+".flock", os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("%w: opening registry lock: %w", terrors.ErrIO, err)
	}

	if err := lockFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: locking registry: %w", terrors.ErrIO, err)
	}

	return &fileLock{f: f}, nil
}

type fileLock struct {
	f *os.File
}

func (l *fileLock) Unlock() error {
	if l.f == nil {
		return nil
	}
	f := l.f
	l.f = nil

	err := unlockFile(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
