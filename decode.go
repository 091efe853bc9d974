package signal

import (
	"strings"
	"unicode/utf8"
)

// Decode turns a signal back into space-separated tokens. Runes outside
// the alphabet are ignored. Because the codebook is prefix-free, a token
// is emitted as soon as the accumulated symbols equal one of its
// codewords.
//
// Symbols left over at the end are appended as a bracketed fragment,
// e.g. "we have [_-]", instead of failing.
//
// Escape blocks written by Encode are not codewords, so Decode does not
// recover out-of-vocabulary characters: decode(encode(x)) == x only holds
// when every token of x is in the vocabulary.
func (c *Codec) Decode(signal string) string {
	tokens, tail := c.DecodeTokens(signal)
	if tail != "" {
		c.logger.Printf("signal: unresolved tail %q after %d tokens", tail, len(tokens))
		tokens = append(tokens, "["+tail+"]")
	}
	return strings.Join(tokens, " ")
}

// DecodeTokens is Decode without joining: it returns the decoded tokens
// and the unresolved tail, which is empty when the signal ended on a
// codeword boundary.
func (c *Codec) DecodeTokens(signal string) (tokens []string, tail string) {
	buf := make([]byte, 0, 16)
	for _, r := range signal {
		if !c.alphabet.Contains(r) {
			continue
		}
		buf = utf8.AppendRune(buf, r)
		if token, ok := c.reverse[string(buf)]; ok {
			tokens = append(tokens, token)
			buf = buf[:0]
		}
	}
	return tokens, string(buf)
}
