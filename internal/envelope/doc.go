// Package envelope converts a whole store file between plaintext and an
// authenticated ciphertext envelope.
//
// # Format
//
// A sealed file is the AES-256-CTR ciphertext of the original bytes followed
// by a fixed 148 byte trailer:
//
//	[ ciphertext: N bytes ]
//	[ magic:      4 bytes, little-endian 0x33497546 ]
//	[ iv:        16 bytes ]
//	[ salt:      64 bytes ]
//	[ tag:       64 bytes, HMAC-SHA-512 ]
//
// The key is derived from the passphrase and salt with PBKDF2-HMAC-SHA256
// (25 000 iterations, 32 bytes). The same key drives the cipher and keys the
// HMAC. The tag covers ciphertext || magic || iv || salt.
//
// # Guarantees
//
// Salt and IV are drawn fresh from crypto/rand on every Seal. Unseal verifies
// the tag before decrypting anything, so a wrong passphrase or a damaged file
// never produces plaintext; both are reported as ErrAuthenticationFailed.
//
// Neither operation mutates the target in place. The new content is written
// to a temporary file in the same directory, synced, and moved over the
// target with a single rename. A crash at any point leaves either the old or
// the new file, never a partial one.
package envelope
