package signal

import (
	"fmt"
	"strings"
)

// Alphabet is the ordered set of symbols codewords are written in.
// Symbol i labels the i-th child edge of every internal tree node, and
// its position is also the digit value used by escape blocks.
type Alphabet []rune

// DefaultAlphabet is the three-symbol pulse alphabet: short burst,
// sustained tone, carrier gap.
var DefaultAlphabet = Alphabet{'.', '_', '-'}

// ParseAlphabet reads one symbol per rune of s.
func ParseAlphabet(s string) (Alphabet, error) {
	a := Alphabet([]rune(s))
	if err := a.validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// K returns the arity of trees built over a.
func (a Alphabet) K() int { return len(a) }

func (a Alphabet) String() string { return string(a) }

// Symbols returns each symbol as its own string.
func (a Alphabet) Symbols() []string {
	out := make([]string, len(a))
	for i, r := range a {
		out[i] = string(r)
	}
	return out
}

// Contains reports whether r is one of the alphabet's symbols.
func (a Alphabet) Contains(r rune) bool {
	for _, s := range a {
		if s == r {
			return true
		}
	}
	return false
}

func (a Alphabet) validate() error {
	if len(a) < 2 {
		return fmt.Errorf("%w: need at least 2 symbols, have %d", ErrInvalidAlphabet, len(a))
	}
	seen := make(map[rune]struct{}, len(a))
	for _, r := range a {
		if _, ok := seen[r]; ok {
			return fmt.Errorf("%w: symbol %q repeated in %q", ErrInvalidAlphabet, r, string(a))
		}
		if strings.ContainsRune("[] ", r) {
			return fmt.Errorf("%w: symbol %q is reserved for decoder output", ErrInvalidAlphabet, r)
		}
		seen[r] = struct{}{}
	}
	return nil
}
