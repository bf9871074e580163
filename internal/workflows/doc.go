// Package workflows provides high-level orchestration for titan commands.
//
// Workflows coordinate the registry, the envelope codec, the record store
// and the audit log to implement complete user-facing features. Each
// workflow handles a single command's business logic, independent of CLI
// concerns like flag parsing, prompts, spinners and output formatting.
//
// # State Machine
//
// At most one database is unsealed at a time. The registry file records
// which one:
//
//   - CreateNew: Sealed -> Unsealed(path), for a new empty database
//   - Unseal: Sealed -> Unsealed(path)
//   - Seal: Unsealed(path) -> Sealed
//   - Status: reports the state and checks it against the file on disk
//
// Every workflow holds the registry lock for its whole duration, so two
// processes cannot both move out of the Sealed state.
//
// # Record Workflows
//
// AddEntry, EditEntry, RemoveEntry, GetEntry, ListEntries and FindEntries
// operate on the active database and return ErrNoActiveDatabase when none
// is unsealed. ListEntries and FindEntries return lazy sequences.
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels from internal/errors:
//
//	_, err := workflows.Unseal(ctx, opts)
//	if errors.Is(err, terrors.ErrAuthenticationFailed) {
//	    // Wrong passphrase or damaged file.
//	}
package workflows
