package envelope

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"io"
)

// Tag returns the HMAC-SHA-512 of message keyed by key.
func Tag(key, message []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// TagReader computes the same tag as Tag over everything read from r.
func TagReader(key []byte, r io.Reader) ([]byte, error) {
	mac := hmac.New(sha512.New, key)
	if _, err := io.Copy(mac, r); err != nil {
		return nil, fmt.Errorf("failed to read authenticated data: %w", err)
	}
	return mac.Sum(nil), nil
}

// Verify recomputes the tag over message and compares it with expected in
// constant time.
func Verify(key, message, expected []byte) bool {
	return hmac.Equal(Tag(key, message), expected)
}
