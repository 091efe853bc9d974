package signal

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheRejectsNonPositiveSize(t *testing.T) {
	_, err := NewCache(0)
	assert.Error(t, err)
}

func TestCacheReusesCodec(t *testing.T) {
	cache, err := NewCache(4)
	require.NoError(t, err)

	first, err := cache.Codec(toyVocabulary())
	require.NoError(t, err)
	second, err := cache.Codec(toyVocabulary())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	changed := toyVocabulary()
	changed[0].Weight = 10
	third, err := cache.Codec(changed)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, cache.Len())

	binary, err := cache.Codec(toyVocabulary(), WithAlphabet(Alphabet{'0', '1'}))
	require.NoError(t, err)
	assert.NotSame(t, first, binary)
	assert.Equal(t, 3, cache.Len())

	cache.Purge()
	assert.Zero(t, cache.Len())
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := NewCache(1)
	require.NoError(t, err)

	first, err := cache.Codec(toyVocabulary())
	require.NoError(t, err)
	_, err = cache.Codec(Vocabulary{{Token: "other", Weight: 1}})
	require.NoError(t, err)

	again, err := cache.Codec(toyVocabulary())
	require.NoError(t, err)
	assert.NotSame(t, first, again)
	assert.Equal(t, first.Codebook(), again.Codebook())
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	cache, err := NewCache(2)
	require.NoError(t, err)

	_, err = cache.Codec(Vocabulary{})
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Zero(t, cache.Len())
}

func TestCacheConcurrentUse(t *testing.T) {
	cache, err := NewCache(8)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				c, err := cache.Codec(toyVocabulary())
				if assert.NoError(t, err) {
					assert.Equal(t, "a b", c.Decode(c.Encode("a b")))
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, cache.Len())
}

func TestFingerprint(t *testing.T) {
	v := toyVocabulary()
	fp := Fingerprint(v, DefaultAlphabet)
	assert.Len(t, fp, 64)
	assert.Equal(t, fp, Fingerprint(toyVocabulary(), DefaultAlphabet))

	reordered := append(Vocabulary{v[1]}, v[0])
	reordered = append(reordered, v[2:]...)
	assert.NotEqual(t, fp, Fingerprint(reordered, DefaultAlphabet))
	assert.NotEqual(t, fp, Fingerprint(v, Alphabet{'.', '-', '_'}))

	// Token boundaries are part of the digest.
	assert.NotEqual(t,
		Fingerprint(Vocabulary{{Token: "ab", Weight: 1}, {Token: "c", Weight: 1}}, DefaultAlphabet),
		Fingerprint(Vocabulary{{Token: "a", Weight: 1}, {Token: "bc", Weight: 1}}, DefaultAlphabet))
}
