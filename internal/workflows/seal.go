package workflows

import (
	"context"

	"github.com/PolarWolf314/titan/internal/audit"
	terrors "github.com/PolarWolf314/titan/internal/errors"
)

// SealOptions configures the seal workflow.
type SealOptions struct {
	Env

	// Passphrase protects the new envelope.
	Passphrase []byte
}

// SealResult contains the outcome of a seal operation.
type SealResult struct {
	// Path is the database that was sealed.
	Path string
}

// Seal encrypts the active database in place and clears the registry.
//
// Returns ErrNoActiveDatabase if no database is unsealed.
// Returns ErrAlreadySealed if the active file is already an envelope; run
// Status with Repair to clear the stale pointer.
func Seal(ctx context.Context, opts SealOptions) (*SealResult, error) {
	if len(opts.Passphrase) == 0 {
		return nil, terrors.ErrEmptyPassphrase
	}

	reg, unlock, err := opts.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	path, ok := reg.Get()
	if !ok {
		return nil, terrors.ErrNoActiveDatabase
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := opts.codec().Seal(path, opts.Passphrase); err != nil {
		return nil, err
	}

	if err := reg.Clear(); err != nil {
		return nil, err
	}

	audit.Log(audit.LogWithUser(audit.OpSeal, path))

	return &SealResult{Path: path}, nil
}
