package passgen

import (
	"bytes"
	"strings"
	"testing"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	for _, n := range []int{1, 8, 32, MaxLength} {
		pass, err := Generate(n)
		require.NoError(t, err)
		assert.Len(t, pass, n)
		for _, c := range pass {
			assert.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q", c)
		}
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	for _, n := range []int{-1, 0, MaxLength + 1} {
		_, err := Generate(n)
		require.ErrorIs(t, err, terrors.ErrInvalidLength)
	}
}

func TestGenerateVaries(t *testing.T) {
	a, err := Generate(32)
	require.NoError(t, err)
	b, err := Generate(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateEntropyFailure(t *testing.T) {
	_, err := GenerateFrom(bytes.NewReader(nil), 16)
	require.ErrorIs(t, err, terrors.ErrEntropyUnavailable)
}

func TestGenerateCoversAlphabet(t *testing.T) {
	pass, err := Generate(MaxLength)
	require.NoError(t, err)

	seen := make(map[rune]bool)
	for _, c := range pass {
		seen[c] = true
	}
	// 4096 draws over 70 symbols leave a negligible chance of a gap.
	assert.Len(t, seen, len(Alphabet))
}
