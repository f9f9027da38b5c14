// internal/lobby/publicid.go
package lobby

import "fmt"

const (
	publicCodeLength = 6
	alphabetLength   = 26
	numeralCount     = 10
)

// Rand is the source of randomness for code generation. math/rand/v2's
// top-level IntN satisfies it through RandFunc and is safe for concurrent
// use; tests inject a deterministic source.
type Rand interface {
	IntN(n int) int
}

// RandFunc adapts a plain function to the Rand interface.
type RandFunc func(n int) int

func (f RandFunc) IntN(n int) int { return f(n) }

// CodeGenerator mints fixed-length public lobby codes over A-Z and 0-9.
// Collision resistance, not unguessability, is the goal, so the source does
// not need to be cryptographically secure.
type CodeGenerator struct {
	rand Rand
}

func NewCodeGenerator(r Rand) *CodeGenerator {
	return &CodeGenerator{rand: r}
}

// PublicCode returns a fresh 6-character code. Each position is drawn
// independently and uniformly from the 36-symbol alphabet.
func (g *CodeGenerator) PublicCode() string {
	buf := make([]byte, publicCodeLength)
	for i := range buf {
		buf[i] = codeChar(g.rand.IntN(alphabetLength + numeralCount))
	}
	return string(buf)
}

// codeChar maps 0-25 to 'A'-'Z' and 26-35 to '0'-'9'. Any other value means
// the alphabet constants are corrupted, which is a programming error, hence
// the panic.
func codeChar(n int) byte {
	switch {
	case n < 0 || n >= alphabetLength+numeralCount:
		panic(fmt.Sprintf("public code element must be between 0 and 35, got %d", n))
	case n < alphabetLength:
		return 'A' + byte(n)
	default:
		return '0' + byte(n-alphabetLength)
	}
}
