package envelope

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	terrors "github.com/PolarWolf314/titan/internal/errors"
)

// Codec seals and unseals store files.
type Codec struct {
	// Rand supplies salts and IVs. Defaults to crypto/rand.Reader.
	Rand io.Reader

	// Iterations is the PBKDF2 iteration count. Defaults to DefaultIterations.
	Iterations int
}

// NewCodec returns a Codec using the OS entropy source and the default
// iteration count.
func NewCodec() *Codec {
	return &Codec{Rand: rand.Reader, Iterations: DefaultIterations}
}

func (c *Codec) random() io.Reader {
	if c == nil || c.Rand == nil {
		return rand.Reader
	}
	return c.Rand
}

func (c *Codec) iterations() int {
	if c == nil || c.Iterations == 0 {
		return DefaultIterations
	}
	return c.Iterations
}

// Seal replaces the plaintext file at path with an envelope. It fails with
// ErrAlreadySealed when path is already an envelope. On any failure the
// original file is left untouched.
func (c *Codec) Seal(path string, passphrase []byte) error {
	sealed, err := IsEnvelope(path)
	if err != nil {
		return err
	}
	if sealed {
		return fmt.Errorf("%s: %w", path, terrors.ErrAlreadySealed)
	}

	var t Trailer
	salt, err := RandomBytes(c.random(), SaltSize)
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}
	copy(t.Salt[:], salt)

	key, err := DeriveKey(passphrase, t.Salt[:], c.iterations())
	if err != nil {
		return err
	}
	defer zero(key)

	iv, err := RandomBytes(c.random(), IVSize)
	if err != nil {
		return fmt.Errorf("generating iv: %w", err)
	}
	copy(t.IV[:], iv)

	plaintext, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", terrors.ErrIO, path, err)
	}
	defer zero(plaintext)

	ciphertext, err := Transform(key, t.IV[:], plaintext)
	if err != nil {
		return err
	}

	p, err := newPendingFile(path)
	if err != nil {
		return err
	}
	defer p.Discard()

	if _, err := p.Write(ciphertext); err != nil {
		return err
	}
	if _, err := p.Write(t.header()); err != nil {
		return err
	}
	if err := p.Close(); err != nil {
		return err
	}

	// The tag is computed over the bytes as they landed on disk.
	r, err := p.OpenRead()
	if err != nil {
		return err
	}
	tag, err := TagReader(key, r)
	r.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", terrors.ErrIO, err)
	}
	copy(t.Tag[:], tag)

	if err := p.Reopen(); err != nil {
		return err
	}
	if _, err := p.Write(t.Tag[:]); err != nil {
		return err
	}

	return p.Commit()
}

// Unseal verifies the envelope at path and replaces it with the recovered
// plaintext. The tag is checked before anything is decrypted; a mismatch
// returns ErrAuthenticationFailed and leaves the file as it was. A file
// without a trailer returns an error matching both ErrNotAnEnvelope and
// ErrAuthenticationFailed.
func (c *Codec) Unseal(path string, passphrase []byte) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", terrors.ErrIO, path, err)
	}

	if len(data) < TrailerSize {
		return notAnEnvelope(path)
	}
	t, ok := parseTrailer(data[len(data)-TrailerSize:])
	if !ok {
		return notAnEnvelope(path)
	}

	key, err := DeriveKey(passphrase, t.Salt[:], c.iterations())
	if err != nil {
		return err
	}
	defer zero(key)

	if !Verify(key, data[:len(data)-TagSize], t.Tag[:]) {
		return terrors.ErrAuthenticationFailed
	}

	plaintext, err := Transform(key, t.IV[:], data[:len(data)-TrailerSize])
	if err != nil {
		return err
	}
	defer zero(plaintext)

	p, err := newPendingFile(path)
	if err != nil {
		return err
	}
	defer p.Discard()

	if _, err := p.Write(plaintext); err != nil {
		return err
	}

	return p.Commit()
}

func notAnEnvelope(path string) error {
	return fmt.Errorf("%s: %w: %w", path, terrors.ErrNotAnEnvelope, terrors.ErrAuthenticationFailed)
}
