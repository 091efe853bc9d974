package signal

import (
	"sort"
	"strings"
)

// Codebook maps each token to its codeword.
type Codebook map[string]string

// compile walks the tree depth first. The i-th child of an internal node
// extends the prefix with alphabet[i]; padding leaves are skipped. A tree
// that is a single leaf still gets a one-symbol codeword.
func compile(root node, alphabet Alphabet) (Codebook, map[string]string) {
	codebook := make(Codebook)

	var walk func(n node, prefix string)
	walk = func(n node, prefix string) {
		switch n := n.(type) {
		case *leaf:
			codebook[n.token] = prefix
		case *internal:
			for i, child := range n.children {
				walk(child, prefix+string(alphabet[i]))
			}
		}
	}

	if l, ok := root.(*leaf); ok {
		codebook[l.token] = string(alphabet[0])
	} else {
		walk(root, "")
	}

	reverse := make(map[string]string, len(codebook))
	for token, code := range codebook {
		reverse[code] = token
	}
	return codebook, reverse
}

// PrefixConflict returns two tokens whose codewords violate the prefix
// property, the first one's codeword being a prefix of the second's.
func (cb Codebook) PrefixConflict() (token, other string, found bool) {
	type pair struct{ code, token string }
	pairs := make([]pair, 0, len(cb))
	for t, c := range cb {
		pairs = append(pairs, pair{code: c, token: t})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].code < pairs[j].code })

	// After sorting, any codeword that is a prefix of another sorts
	// directly before some word it prefixes.
	for i := 1; i < len(pairs); i++ {
		if strings.HasPrefix(pairs[i].code, pairs[i-1].code) {
			return pairs[i-1].token, pairs[i].token, true
		}
	}
	return "", "", false
}

// PrefixFree reports whether no codeword is a prefix of another.
func (cb Codebook) PrefixFree() bool {
	_, _, found := cb.PrefixConflict()
	return !found
}

func (cb Codebook) clone() Codebook {
	out := make(Codebook, len(cb))
	for t, c := range cb {
		out[t] = c
	}
	return out
}
