// Package audit records lifecycle operations on password databases.
//
// Creating, sealing and unsealing a database each append one entry to a
// per-user audit log. The log never contains passphrases or entry contents,
// only the operation, the database path and who ran it.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	$XDG_DATA_HOME/titan/audit.jsonl
//
// Each entry contains:
//   - A random entry id
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Local user name
//   - Operation name and database path
//
// # Failure Handling
//
// Audit logging is best-effort. If the log cannot be written the operation
// still succeeds.
package audit
