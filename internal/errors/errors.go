package errors

import "errors"

// Cryptographic errors indicate failures while sealing or unsealing a store.
var (
	// ErrEntropyUnavailable indicates the OS random source could not supply bytes.
	ErrEntropyUnavailable = errors.New("secure random source unavailable")

	// ErrKeyDerivation indicates the passphrase could not be stretched into a key.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrAuthenticationFailed indicates the envelope tag did not verify. A wrong
	// passphrase and a damaged file are reported identically.
	ErrAuthenticationFailed = errors.New("wrong passphrase or corrupted database")

	// ErrNotAnEnvelope indicates the file does not carry the envelope trailer.
	ErrNotAnEnvelope = errors.New("file is not a sealed database")

	// ErrEmptyPassphrase indicates an empty passphrase was supplied.
	ErrEmptyPassphrase = errors.New("passphrase cannot be empty")

	// ErrPassphraseMismatch indicates the confirmation prompt did not match.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)

// State errors indicate a request that the single-active-database state
// machine does not allow from its current state.
var (
	// ErrAlreadySealed indicates the file is already an envelope.
	ErrAlreadySealed = errors.New("database is already sealed")

	// ErrDatabaseActive indicates another database is currently unsealed.
	ErrDatabaseActive = errors.New("an unsealed database is already active")

	// ErrNoActiveDatabase indicates no database is currently unsealed.
	ErrNoActiveDatabase = errors.New("no unsealed database found")

	// ErrStoreExists indicates a new database would overwrite an existing file.
	ErrStoreExists = errors.New("database file already exists")
)

// Store errors indicate issues with the record container.
var (
	// ErrCorruptDatabase indicates the record container failed its integrity check.
	ErrCorruptDatabase = errors.New("corrupted database")

	// ErrEntryNotFound indicates no entry exists with the requested id.
	ErrEntryNotFound = errors.New("entry not found")
)

// File errors.
var (
	// ErrIO indicates an open, read, write, sync or rename failure.
	ErrIO = errors.New("i/o failure")
)

// Generator errors.
var (
	// ErrInvalidLength indicates a password length outside the accepted range.
	ErrInvalidLength = errors.New("invalid password length")
)
