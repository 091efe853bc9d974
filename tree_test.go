package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyVocabulary is small enough to work out the optimal tree by hand.
func toyVocabulary() Vocabulary {
	return Vocabulary{
		{Token: "a", Weight: 1},
		{Token: "b", Weight: 1},
		{Token: "c", Weight: 2},
		{Token: "d", Weight: 3},
		{Token: "e", Weight: 5},
	}
}

func TestPaddingFor(t *testing.T) {
	tests := []struct {
		leaves, k, want int
	}{
		{1, 3, 0},
		{2, 3, 1},
		{3, 3, 0},
		{4, 3, 1},
		{5, 3, 0},
		{5, 2, 0},
		{5, 4, 2},
		{7, 4, 0},
		{2, 5, 3},
		{6, 5, 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, paddingFor(tc.leaves, tc.k), "leaves=%d k=%d", tc.leaves, tc.k)
	}
}

func TestPaddedLeafCountCompletesTree(t *testing.T) {
	for k := 2; k <= 7; k++ {
		for leaves := 1; leaves <= 50; leaves++ {
			pad := paddingFor(leaves, k)
			require.Zero(t, (leaves+pad-1)%(k-1), "leaves=%d k=%d pad=%d", leaves, k, pad)
			require.Less(t, pad, k-1, "padding must be minimal: leaves=%d k=%d", leaves, k)
		}
	}
}

func TestBuildTreeShape(t *testing.T) {
	root, pad := buildTree(toyVocabulary(), 3)
	require.Zero(t, pad)

	// a, b and c are merged first; d and e stay at depth one.
	top, ok := root.(*internal)
	require.True(t, ok)
	require.Len(t, top.children, 3)
	assert.Equal(t, "d", top.children[0].(*leaf).token)
	assert.Equal(t, "e", top.children[2].(*leaf).token)

	mid, ok := top.children[1].(*internal)
	require.True(t, ok)
	tokens := make([]string, 0, 3)
	for _, c := range mid.children {
		tokens = append(tokens, c.(*leaf).token)
	}
	assert.Equal(t, []string{"a", "b", "c"}, tokens)
	assert.Equal(t, 12.0, root.weight())
}

func TestInternalWeightIsSumOfChildren(t *testing.T) {
	v := Vocabulary{
		{Token: "one", Weight: 7},
		{Token: "two", Weight: 3.5},
		{Token: "three", Weight: 3.5},
		{Token: "four", Weight: 1},
		{Token: "five", Weight: 20},
		{Token: "six", Weight: 2},
	}
	for k := 2; k <= 5; k++ {
		root, _ := buildTree(v, k)

		var check func(n node)
		check = func(n node) {
			in, ok := n.(*internal)
			if !ok {
				return
			}
			require.LessOrEqual(t, len(in.children), k)
			sum := 0.0
			for _, c := range in.children {
				sum += c.weight()
				check(c)
			}
			require.Equal(t, sum, in.w)
		}
		check(root)
	}
}

func TestBuildTreePaddingSitsDeepest(t *testing.T) {
	root, pad := buildTree(toyVocabulary(), 4)
	require.Equal(t, 2, pad)

	top := root.(*internal)
	mid := top.children[1].(*internal)
	_, isPad0 := mid.children[0].(*padding)
	_, isPad1 := mid.children[1].(*padding)
	assert.True(t, isPad0 && isPad1, "padding leaves are the lightest and are merged first")
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	root, pad := buildTree(Vocabulary{{Token: "only", Weight: 4}}, 3)
	assert.Zero(t, pad)
	l, ok := root.(*leaf)
	require.True(t, ok)
	assert.Equal(t, "only", l.token)
}
