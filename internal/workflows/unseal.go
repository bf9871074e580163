package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/titan/internal/audit"
	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/PolarWolf314/titan/internal/utils"
)

// UnsealOptions configures the unseal workflow.
type UnsealOptions struct {
	Env

	// Path is the sealed database to open.
	Path string

	// Passphrase unlocks the envelope.
	Passphrase []byte
}

// UnsealResult contains the outcome of an unseal operation.
type UnsealResult struct {
	// Path is the absolute path of the now active database.
	Path string
}

// Unseal decrypts a sealed database in place and makes it the active one.
//
// Returns ErrDatabaseActive if another database is unsealed.
// Returns ErrAuthenticationFailed for a wrong passphrase or a damaged file,
// in which case neither the file nor the registry is changed.
func Unseal(ctx context.Context, opts UnsealOptions) (*UnsealResult, error) {
	if len(opts.Passphrase) == 0 {
		return nil, terrors.ErrEmptyPassphrase
	}

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

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	codec := opts.codec()
	if err := codec.Unseal(path, opts.Passphrase); err != nil {
		return nil, err
	}

	if err := reg.Set(path); err != nil {
		// Put the envelope back so the file matches the registry again.
		if serr := codec.Seal(path, opts.Passphrase); serr != nil {
			return nil, fmt.Errorf("%w (restoring envelope also failed: %v)", err, serr)
		}
		return nil, err
	}

	audit.Log(audit.LogWithUser(audit.OpUnseal, path))

	return &UnsealResult{Path: path}, nil
}
