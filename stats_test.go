package signal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	s := MustBuild(toyVocabulary()).Stats()
	assert.Equal(t, Stats{
		TotalWords: 5,
		MinLength:  1,
		MaxLength:  2,
		AvgLength:  1.6,
		Alphabet:   []string{".", "_", "-"},
	}, s)
}

func TestStatsSanity(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 20; i++ {
		s := MustBuild(randomVocabulary(rng, 1+rng.Intn(200))).Stats()
		require.GreaterOrEqual(t, s.MinLength, 1)
		require.LessOrEqual(t, float64(s.MinLength), s.AvgLength)
		require.LessOrEqual(t, s.AvgLength, float64(s.MaxLength))
	}
}

func TestStatsCountsSymbolsNotBytes(t *testing.T) {
	a, err := ParseAlphabet("·—○")
	require.NoError(t, err)
	c := MustBuild(toyVocabulary(), WithAlphabet(a))

	s := c.Stats()
	assert.Equal(t, 1, s.MinLength)
	assert.Equal(t, 2, s.MaxLength)
	assert.Equal(t, []string{"·", "—", "○"}, s.Alphabet)
	assert.Equal(t, "a b c d e", c.Decode(c.Encode("a b c d e")))
}

func TestShortestCodes(t *testing.T) {
	c := MustBuild(toyVocabulary())

	assert.Equal(t, []CodeEntry{
		{Token: "d", Code: ".", Length: 1},
		{Token: "e", Code: "-", Length: 1},
		{Token: "a", Code: "_.", Length: 2},
	}, c.ShortestCodes(3))

	assert.Empty(t, c.ShortestCodes(0))
	assert.Empty(t, c.ShortestCodes(-4))
	assert.Len(t, c.ShortestCodes(100), 5)
	assert.Equal(t, c.Entries(), c.ShortestCodes(5))
}

func TestShortestCodesOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entries := MustBuild(randomVocabulary(rng, 150)).Entries()
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		require.True(t, prev.Length < cur.Length || prev.Length == cur.Length && prev.Token < cur.Token,
			"%v before %v", prev, cur)
	}
}
