package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Transform runs AES-256-CTR over data. CTR is symmetric: applying Transform
// twice with the same key and iv returns the original bytes. The output has
// the same length as data.
func Transform(key, iv, data []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key length: expected %d bytes, got %d", KeySize, len(key))
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("invalid iv length: expected %d bytes, got %d", IVSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)

	return out, nil
}
