package signal

import "strings"

// maxEscapeOrdinal is the largest ordinal an escape block is sized for:
// one Latin-1 code unit. With three symbols that takes six digits.
const maxEscapeOrdinal = 0xFF

// escapeWidth returns the smallest w with k^w > maxEscapeOrdinal, that is
// ceil(log_k(maxEscapeOrdinal+1)).
func escapeWidth(k int) int {
	w, span := 1, k
	for span <= maxEscapeOrdinal {
		span *= k
		w++
	}
	return w
}

// EscapeBlock returns the fixed-width base-k spelling of r's ordinal,
// most significant digit first, zero-padded with the first symbol.
// Ordinals above maxEscapeOrdinal keep only their low-order digits.
func (c *Codec) EscapeBlock(r rune) string {
	var b strings.Builder
	b.Grow(c.escapeWidth)
	c.appendEscape(&b, r)
	return b.String()
}

func (c *Codec) appendEscape(b *strings.Builder, r rune) {
	k := len(c.alphabet)
	digits := make([]rune, c.escapeWidth)
	n := int(r)
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = c.alphabet[n%k]
		n /= k
	}
	for _, d := range digits {
		b.WriteRune(d)
	}
}
