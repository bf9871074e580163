// Package errors provides typed error values for the Titan application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Crypto errors: entropy, key derivation and envelope authentication
//     (ErrEntropyUnavailable, ErrKeyDerivation, ErrAuthenticationFailed)
//   - State errors: the single-active-database state machine
//     (ErrAlreadySealed, ErrDatabaseActive, ErrNoActiveDatabase)
//   - Store errors: the record container (ErrCorruptDatabase, ErrEntryNotFound)
//   - File errors: ErrIO wraps every open/read/write/rename failure
//
// # Usage
//
// Handle errors in the CLI layer:
//
//	err := workflows.Unseal(ctx, opts)
//	if errors.Is(err, terrors.ErrAuthenticationFailed) {
//	    // wrong passphrase or damaged file, same message either way
//	}
//
// Wrap I/O failures so both the category and the cause survive:
//
//	return fmt.Errorf("%w: writing %s: %w", terrors.ErrIO, path, err)
package errors
