package envelope

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	terrors "github.com/PolarWolf314/titan/internal/errors"
)

const (
	// Magic marks the start of the trailer, stored little-endian.
	Magic uint32 = 0x33497546

	MagicSize = 4
	IVSize    = 16
	SaltSize  = 64
	TagSize   = 64
	KeySize   = 32

	// TrailerSize is the number of bytes appended after the ciphertext.
	TrailerSize = MagicSize + IVSize + SaltSize + TagSize

	// DefaultIterations is the PBKDF2 iteration count for every envelope.
	DefaultIterations = 25000
)

// Trailer holds the parameters stored after the ciphertext.
type Trailer struct {
	IV   [IVSize]byte
	Salt [SaltSize]byte
	Tag  [TagSize]byte
}

// header returns magic || iv || salt, the authenticated part of the trailer.
func (t *Trailer) header() []byte {
	b := make([]byte, 0, TrailerSize-TagSize)
	b = binary.LittleEndian.AppendUint32(b, Magic)
	b = append(b, t.IV[:]...)
	b = append(b, t.Salt[:]...)
	return b
}

// parseTrailer decodes the last TrailerSize bytes of a file. ok is false when
// the magic does not match.
func parseTrailer(b []byte) (t *Trailer, ok bool) {
	if len(b) != TrailerSize {
		return nil, false
	}
	if binary.LittleEndian.Uint32(b[:MagicSize]) != Magic {
		return nil, false
	}

	t = &Trailer{}
	off := MagicSize
	off += copy(t.IV[:], b[off:off+IVSize])
	off += copy(t.Salt[:], b[off:off+SaltSize])
	copy(t.Tag[:], b[off:])

	return t, true
}

// IsEnvelope reports whether the file at path ends with an envelope trailer.
// It is a structural check only and says nothing about authenticity.
func IsEnvelope(path string) (bool, error) {
	_, ok, err := readTrailer(path)
	return ok, err
}

// ReadTrailer returns the decoded trailer of a sealed file.
func ReadTrailer(path string) (*Trailer, error) {
	t, ok, err := readTrailer(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, terrors.ErrNotAnEnvelope)
	}
	return t, nil
}

func readTrailer(path string) (*Trailer, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: opening %s: %w", terrors.ErrIO, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, false, fmt.Errorf("%w: stat %s: %w", terrors.ErrIO, path, err)
	}
	if info.Size() < TrailerSize {
		return nil, false, nil
	}

	buf := make([]byte, TrailerSize)
	if _, err := f.ReadAt(buf, info.Size()-TrailerSize); err != nil && err != io.EOF {
		return nil, false, fmt.Errorf("%w: reading trailer of %s: %w", terrors.ErrIO, path, err)
	}

	t, ok := parseTrailer(buf)
	return t, ok, nil
}
