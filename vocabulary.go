package signal

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrConfiguration is wrapped by every error Build returns for an
	// unusable vocabulary or alphabet.
	ErrConfiguration = errors.New("signal: invalid configuration")
	// ErrInvalidAlphabet indicates an alphabet with fewer than two symbols
	// or with a repeated symbol.
	ErrInvalidAlphabet = fmt.Errorf("%w: invalid alphabet", ErrConfiguration)
)

// Entry is one vocabulary token and its relative weight.
// Higher weights receive shorter codewords.
type Entry struct {
	Token  string  `json:"token" yaml:"token"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Vocabulary is an ordered token table. The order is the tie-break used
// when two weights are equal, so the same Vocabulary always yields the
// same codebook.
type Vocabulary []Entry

// VocabularyFromMap converts a map into a Vocabulary sorted by token,
// which gives map callers a reproducible tie-break order.
func VocabularyFromMap(weights map[string]float64) Vocabulary {
	v := make(Vocabulary, 0, len(weights))
	for token, w := range weights {
		v = append(v, Entry{Token: token, Weight: w})
	}
	sort.Slice(v, func(i, j int) bool { return v[i].Token < v[j].Token })
	return v
}

// Validate reports whether v can be built into a codec.
func (v Vocabulary) Validate() error {
	_, err := v.normalize()
	return err
}

// Weight returns the weight recorded for token.
func (v Vocabulary) Weight(token string) (float64, bool) {
	for _, e := range v {
		if e.Token == token {
			return e.Weight, true
		}
	}
	return 0, false
}

// normalize validates v and drops exact duplicates, keeping the first
// occurrence's position.
func (v Vocabulary) normalize() (Vocabulary, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrConfiguration)
	}

	seen := make(map[string]float64, len(v))
	out := make(Vocabulary, 0, len(v))
	for i, e := range v {
		if e.Token == "" {
			return nil, fmt.Errorf("%w: empty token at index %d", ErrConfiguration, i)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight <= 0 {
			return nil, fmt.Errorf("%w: token %q has non-positive or non-finite weight %v", ErrConfiguration, e.Token, e.Weight)
		}
		if prev, ok := seen[e.Token]; ok {
			if prev != e.Weight {
				return nil, fmt.Errorf("%w: token %q listed with conflicting weights %v and %v", ErrConfiguration, e.Token, prev, e.Weight)
			}
			continue
		}
		seen[e.Token] = e.Weight
		out = append(out, e)
	}
	return out, nil
}
