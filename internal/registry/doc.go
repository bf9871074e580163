// Package registry persists which store, if any, is currently unsealed.
//
// The registry is a single-line text file holding the absolute path of the
// active store. Its presence is the only evidence of the Unsealed state; its
// absence means every store is Sealed. At most one store is active at a time.
//
// Callers that read, decide and then write (unseal, seal, init) hold the
// exclusive advisory lock returned by Lock for the whole sequence, including
// the file transform, so two titan processes cannot both conclude that no
// store is active.
package registry
