package envelope

import (
	"fmt"
	"os"
	"path/filepath"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/google/uuid"
)

// pendingFile is the temporary sibling that will replace target once it is
// complete. Until Commit succeeds the target is never touched.
type pendingFile struct {
	target string
	name   string
	f      *os.File
}

func newPendingFile(target string) (*pendingFile, error) {
	dir, base := filepath.Split(target)
	name := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("%w: creating temporary file: %w", terrors.ErrIO, err)
	}

	return &pendingFile{target: target, name: name, f: f}, nil
}

func (p *pendingFile) Write(b []byte) (int, error) {
	if p.f == nil {
		return 0, fmt.Errorf("%w: %s is not open for writing", terrors.ErrIO, p.name)
	}
	n, err := p.f.Write(b)
	if err != nil {
		return n, fmt.Errorf("%w: writing %s: %w", terrors.ErrIO, p.name, err)
	}
	return n, nil
}

// Close flushes the file to stable storage and closes it.
func (p *pendingFile) Close() error {
	if p.f == nil {
		return nil
	}
	f := p.f
	p.f = nil

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: syncing %s: %w", terrors.ErrIO, p.name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", terrors.ErrIO, p.name, err)
	}
	return nil
}

// OpenRead opens the closed file read-only. The caller closes the result.
func (p *pendingFile) OpenRead() (*os.File, error) {
	f, err := os.Open(p.name)
	if err != nil {
		return nil, fmt.Errorf("%w: reopening %s: %w", terrors.ErrIO, p.name, err)
	}
	return f, nil
}

// Reopen opens the closed file again for appending.
func (p *pendingFile) Reopen() error {
	f, err := os.OpenFile(p.name, os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("%w: reopening %s: %w", terrors.ErrIO, p.name, err)
	}
	p.f = f
	return nil
}

// Commit moves the completed file over target in one rename.
func (p *pendingFile) Commit() error {
	if err := p.Close(); err != nil {
		return err
	}
	if err := os.Rename(p.name, p.target); err != nil {
		return fmt.Errorf("%w: replacing %s: %w", terrors.ErrIO, p.target, err)
	}
	syncDir(filepath.Dir(p.target))
	return nil
}

// Discard closes and removes the temporary file. Safe after Commit.
func (p *pendingFile) Discard() {
	if p.f != nil {
		p.f.Close()
		p.f = nil
	}
	_ = os.Remove(p.name)
}

// syncDir persists the rename. Some platforms cannot fsync a directory, so
// failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	d.Close()
}
