package workflows

import (
	"context"
	"errors"

	"github.com/PolarWolf314/titan/internal/envelope"
	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/PolarWolf314/titan/internal/registry"
	"github.com/PolarWolf314/titan/internal/store"
	"github.com/PolarWolf314/titan/internal/utils"
)

// Problem describes a mismatch between the registry and the active file.
type Problem string

const (
	// ProblemNone means the registry and the file agree.
	ProblemNone Problem = ""
	// ProblemMissing means the registry points at a file that does not exist.
	ProblemMissing Problem = "missing"
	// ProblemSealed means the registry points at a file that is an envelope.
	ProblemSealed Problem = "sealed"
	// ProblemCorrupt means the file is plaintext but not a valid database.
	ProblemCorrupt Problem = "corrupt"
)

// StatusOptions configures the status workflow.
type StatusOptions struct {
	Env

	// Repair clears a registry pointer whose file is missing or sealed.
	Repair bool
}

// StatusResult contains the outcome of a status operation.
type StatusResult struct {
	// State is Sealed when no database is active.
	State registry.State

	// Path is the active database, if any.
	Path string

	// Problem is set when the active file does not match the registry.
	Problem Problem

	// Entries is the number of records in the active database.
	Entries int

	// Repaired indicates a stale pointer was cleared.
	Repaired bool
}

// Consistent reports whether the registry and the file agree.
func (r *StatusResult) Consistent() bool {
	return r.Problem == ProblemNone
}

// Status reports whether a database is active and checks that the active
// file really is a plaintext database.
func Status(ctx context.Context, opts StatusOptions) (*StatusResult, error) {
	reg, unlock, err := opts.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	state, path := reg.State()
	result := &StatusResult{State: state, Path: path}
	if state == registry.Sealed {
		return result, nil
	}

	problem, entries, err := inspect(ctx, path)
	if err != nil {
		return nil, err
	}
	result.Problem = problem
	result.Entries = entries

	if opts.Repair && (problem == ProblemMissing || problem == ProblemSealed) {
		if err := reg.Clear(); err != nil {
			return nil, err
		}
		result.Repaired = true
		result.State = registry.Sealed
	}

	return result, nil
}

func inspect(ctx context.Context, path string) (Problem, int, error) {
	exists, err := utils.FileExists(path)
	if err != nil {
		return ProblemNone, 0, err
	}
	if !exists {
		return ProblemMissing, 0, nil
	}

	sealed, err := envelope.IsEnvelope(path)
	if err != nil {
		return ProblemNone, 0, err
	}
	if sealed {
		return ProblemSealed, 0, nil
	}

	s, err := store.Open(path)
	if errors.Is(err, terrors.ErrCorruptDatabase) {
		return ProblemCorrupt, 0, nil
	}
	if err != nil {
		return ProblemNone, 0, err
	}
	defer s.Close()

	n, err := s.Count(ctx)
	if err != nil {
		return ProblemNone, 0, err
	}
	return ProblemNone, n, nil
}
