// Package store is the plaintext record container behind an unsealed
// database: a single SQLite file with one entries table.
//
// The file must stay self-contained so the envelope can encrypt it as one
// blob. The store therefore uses the rollback journal (never WAL) and must
// be closed before the file is sealed.
//
// Listing operations return iter.Seq2 sequences. They are lazy and single
// pass; ranging over them again re-issues the query. The connection pool is
// limited to one connection, so do not call other Store methods while a
// sequence is being ranged over.
package store
