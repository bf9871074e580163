package envelope

import (
	"crypto/rand"
	"fmt"
	"io"
	"runtime"

	terrors "github.com/PolarWolf314/titan/internal/errors"
)

// RandomBytes reads exactly n bytes from r, or from crypto/rand when r is nil.
// A short read is reported as ErrEntropyUnavailable and nothing is returned.
func RandomBytes(r io.Reader, n int) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		zero(buf)
		return nil, fmt.Errorf("%w: %w", terrors.ErrEntropyUnavailable, err)
	}

	return buf, nil
}

// zero overwrites b so key material does not linger on the heap.
func zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
