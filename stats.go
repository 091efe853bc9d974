package signal

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

// Stats summarizes codeword lengths, measured in alphabet symbols.
type Stats struct {
	TotalWords int      `json:"total_words"`
	MinLength  int      `json:"min_length"`
	MaxLength  int      `json:"max_length"`
	AvgLength  float64  `json:"avg_length"`
	Alphabet   []string `json:"alphabet"`
}

// CodeEntry is one codebook row.
type CodeEntry struct {
	Token  string `json:"token"`
	Code   string `json:"code"`
	Length int    `json:"length"`
}

// Stats returns codebook statistics.
func (c *Codec) Stats() Stats {
	s := Stats{
		TotalWords: len(c.codebook),
		Alphabet:   c.alphabet.Symbols(),
	}
	total := 0
	for _, code := range c.codebook {
		n := utf8.RuneCountInString(code)
		if s.MinLength == 0 || n < s.MinLength {
			s.MinLength = n
		}
		if n > s.MaxLength {
			s.MaxLength = n
		}
		total += n
	}
	if s.TotalWords > 0 {
		s.AvgLength = float64(total) / float64(s.TotalWords)
	}
	return s
}

// ShortestCodes returns up to n entries ordered by codeword length, then
// token. n <= 0 returns nothing.
func (c *Codec) ShortestCodes(n int) []CodeEntry {
	if n <= 0 {
		return nil
	}
	entries := c.Entries()
	return entries[:min(n, len(entries))]
}

// Entries returns the whole codebook ordered as ShortestCodes orders it.
func (c *Codec) Entries() []CodeEntry {
	entries := make([]CodeEntry, 0, len(c.codebook))
	for token, code := range c.codebook {
		entries = append(entries, CodeEntry{
			Token:  token,
			Code:   code,
			Length: utf8.RuneCountInString(code),
		})
	}
	slices.SortFunc(entries, func(a, b CodeEntry) int {
		if d := cmp.Compare(a.Length, b.Length); d != 0 {
			return d
		}
		return cmp.Compare(a.Token, b.Token)
	})
	return entries
}
