// internal/lobby/publicid_test.go
package lobby

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicCodeFormat(t *testing.T) {
	gen := NewCodeGenerator(RandFunc(rand.IntN))
	pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	for i := 0; i < 1000; i++ {
		code := gen.PublicCode()
		require.Regexp(t, pattern, code)
	}
}

func TestPublicCodeDeterministicSource(t *testing.T) {
	// A fixed source pins the whole code: 0->A, 25->Z, 26->0, 35->9.
	seq := []int{0, 25, 26, 35, 1, 27}
	i := 0
	gen := NewCodeGenerator(RandFunc(func(n int) int {
		v := seq[i%len(seq)]
		i++
		return v
	}))

	assert.Equal(t, "AZ09B1", gen.PublicCode())
}

func TestCodeCharMapping(t *testing.T) {
	assert.Equal(t, byte('A'), codeChar(0))
	assert.Equal(t, byte('Z'), codeChar(25))
	assert.Equal(t, byte('0'), codeChar(26))
	assert.Equal(t, byte('9'), codeChar(35))
}

func TestCodeCharOutOfRange(t *testing.T) {
	assert.Panics(t, func() { codeChar(-1) })
	assert.Panics(t, func() { codeChar(36) })
	assert.Panics(t, func() { codeChar(1 << 30) })
}
