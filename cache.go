package signal

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/blake2b"
)

// Cache keeps recently built codecs keyed by Fingerprint, for callers that
// rebuild from the same vocabulary repeatedly. It is safe for concurrent
// use. Two concurrent misses for one key may both build; the codecs are
// identical and the later one is kept.
type Cache struct {
	codecs *lru.Cache[string, *Codec]
}

// NewCache returns a cache holding at most size codecs.
func NewCache(size int) (*Cache, error) {
	codecs, err := lru.New[string, *Codec](size)
	if err != nil {
		return nil, err
	}
	return &Cache{codecs: codecs}, nil
}

// Codec returns the cached codec for v and the configured alphabet,
// building it on a miss. The logger option does not take part in the
// key; a hit keeps the logger it was built with.
func (c *Cache) Codec(v Vocabulary, opts ...Option) (*Codec, error) {
	cfg := newConfig(opts)
	key := Fingerprint(v, cfg.Alphabet)
	if codec, ok := c.codecs.Get(key); ok {
		return codec, nil
	}
	codec, err := Build(v, opts...)
	if err != nil {
		return nil, err
	}
	c.codecs.Add(key, codec)
	return codec, nil
}

// Len returns the number of cached codecs.
func (c *Cache) Len() int { return c.codecs.Len() }

// Purge drops every cached codec.
func (c *Cache) Purge() { c.codecs.Purge() }

// Fingerprint is a BLAKE2b-256 digest of the alphabet and the vocabulary
// entries in order. Equal fingerprints build identical codebooks.
func Fingerprint(v Vocabulary, a Alphabet) string {
	buf := make([]byte, 0, 16+len(v)*16)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(a)))
	for _, r := range a {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r))
	}
	for _, e := range v {
		buf = binary.AppendUvarint(buf, uint64(len(e.Token)))
		buf = append(buf, e.Token...)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(e.Weight))
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
