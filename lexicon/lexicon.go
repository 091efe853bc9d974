// Package lexicon provides the default signal-language vocabulary and
// reads vocabulary files.
//
// A vocabulary file is a YAML mapping from token to weight:
//
//	the: 10000
//	be: 8500
//	signal: 5000
//
// Document order is kept, since it decides ties between equal weights.
package lexicon

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	signal "github.com/luisub/6EQUJ5"
)

//go:embed signal.yaml
var defaultYAML []byte

var loadDefault = sync.OnceValue(func() signal.Vocabulary {
	v, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("lexicon: embedded vocabulary: %v", err))
	}
	return v
})

// Default returns a copy of the built-in word table.
func Default() signal.Vocabulary {
	return append(signal.Vocabulary(nil), loadDefault()...)
}

// LoadFile reads a vocabulary file from disk.
func LoadFile(path string) (signal.Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a YAML token-to-weight mapping. Weights are only checked for
// being numbers; signal.Build validates them.
func Load(r io.Reader) (signal.Vocabulary, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("lexicon: empty document")
		}
		return nil, fmt.Errorf("lexicon: decode: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("lexicon: empty document")
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("lexicon: line %d: expected a mapping of token to weight", m.Line)
	}

	v := make(signal.Vocabulary, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("lexicon: line %d: token must be a scalar", key.Line)
		}
		var w float64
		if err := val.Decode(&w); err != nil {
			return nil, fmt.Errorf("lexicon: line %d: weight for %q: %w", val.Line, key.Value, err)
		}
		v = append(v, signal.Entry{Token: key.Value, Weight: w})
	}
	return v, nil
}
