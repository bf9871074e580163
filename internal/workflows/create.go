package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/titan/internal/audit"
	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/PolarWolf314/titan/internal/store"
	"github.com/PolarWolf314/titan/internal/utils"
)

// CreateOptions configures the create workflow.
type CreateOptions struct {
	Env

	// Path is where the new database is created.
	Path string
}

// CreateResult contains the outcome of a create operation.
type CreateResult struct {
	// Path is the absolute path of the new, active database.
	Path string
}

// CreateNew creates an empty plaintext database and makes it the active one.
//
// Returns ErrDatabaseActive if another database is unsealed.
// Returns ErrStoreExists if a file already exists at the path.
func CreateNew(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	path, err := utils.AbsPath(opts.Path)
	if err != nil {
		return nil, err
	}

	reg, unlock, err := opts.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if active, ok := reg.Get(); ok {
		return nil, fmt.Errorf("%w: %s", terrors.ErrDatabaseActive, active)
	}

	exists, err := utils.FileExists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", terrors.ErrIO, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", path, terrors.ErrStoreExists)
	}

	if err := store.Init(path); err != nil {
		return nil, err
	}

	if err := reg.Set(path); err != nil {
		os.Remove(path)
		return nil, err
	}

	audit.Log(audit.LogWithUser(audit.OpInit, path))

	return &CreateResult{Path: path}, nil
}
