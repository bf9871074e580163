package envelope

import (
	"crypto/sha256"
	"fmt"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey stretches passphrase into a KeySize key with PBKDF2-HMAC-SHA256.
// The same passphrase and salt always yield the same key.
func DeriveKey(passphrase, salt []byte, iterations int) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", terrors.ErrKeyDerivation)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iteration count must be positive, got %d", terrors.ErrKeyDerivation, iterations)
	}

	return pbkdf2.Key(passphrase, salt, iterations, KeySize, sha256.New), nil
}
