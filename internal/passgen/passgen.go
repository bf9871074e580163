// Package passgen generates random passwords from the OS entropy source.
package passgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	terrors "github.com/PolarWolf314/titan/internal/errors"
)

// Alphabet is the set of characters generated passwords are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789?)(/%#!="

// MaxLength bounds the length accepted by Generate.
const MaxLength = 4096

// Generate returns a password of length characters drawn uniformly from
// Alphabet.
func Generate(length int) (string, error) {
	return GenerateFrom(rand.Reader, length)
}

// GenerateFrom is Generate with an explicit entropy source.
func GenerateFrom(r io.Reader, length int) (string, error) {
	if length < 1 || length > MaxLength {
		return "", fmt.Errorf("%w: %d (must be between 1 and %d)", terrors.ErrInvalidLength, length, MaxLength)
	}

	size := big.NewInt(int64(len(Alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(r, size)
		if err != nil {
			return "", fmt.Errorf("%w: %v", terrors.ErrEntropyUnavailable, err)
		}
		out[i] = Alphabet[n.Int64()]
	}

	return string(out), nil
}
