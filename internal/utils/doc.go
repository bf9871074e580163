// Package utils provides shared helpers for the titan command line.
//
// # Filesystem Utilities
//
//   - FileExists: reports whether a path exists without following errors
//   - AbsPath: resolves a database path the way the registry records it
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//
// # I/O Utilities
//
//   - ReadLine: prompts for and reads one line of plain input
//
// # Terminal Utilities
//
// Hidden input is read without echo from the terminal:
//   - ReadPassphrase and ReadPassphraseWithConfirm, which prefer the
//     TITAN_PASSPHRASE environment variable when it is set
//   - ReadSecret, for entry passwords
//   - ZeroBytes
package utils
