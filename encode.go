package signal

import "strings"

// Encode turns text into a signal. Tokens found in the codebook emit
// their codeword; any other token is spelled out one character at a
// time, using the character's own codeword when it has one and an escape
// block otherwise. Empty input gives an empty signal.
func (c *Codec) Encode(text string) string {
	var b strings.Builder
	for _, token := range Tokenize(text) {
		c.appendToken(&b, token)
	}
	return b.String()
}

// EncodeTokens encodes already tokenized input. Tokens are used as
// given, without case folding.
func (c *Codec) EncodeTokens(tokens []string) string {
	var b strings.Builder
	for _, token := range tokens {
		c.appendToken(&b, token)
	}
	return b.String()
}

func (c *Codec) appendToken(b *strings.Builder, token string) {
	if code, ok := c.codebook[token]; ok {
		b.WriteString(code)
		return
	}
	for _, r := range token {
		if code, ok := c.codebook[string(r)]; ok {
			b.WriteString(code)
			continue
		}
		c.appendEscape(b, r)
	}
}
