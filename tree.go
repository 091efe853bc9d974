package signal

import "container/heap"

// node is one of *leaf, *padding or *internal. Only *leaf carries a
// token, so padding can never reach a codebook.
type node interface {
	weight() float64
}

type leaf struct {
	token string
	w     float64
}

// padding is a weight-0 filler leaf. It exists only so that every merge
// takes exactly k nodes.
type padding struct{}

type internal struct {
	w        float64
	children []node // children[i] is reached through alphabet symbol i
}

func (l *leaf) weight() float64     { return l.w }
func (*padding) weight() float64    { return 0 }
func (n *internal) weight() float64 { return n.w }

// queued pairs a node with the sequence number that breaks weight ties.
type queued struct {
	node
	seq int
}

// nodeQueue is a min-heap ordered by (weight, seq).
type nodeQueue []queued

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if wi, wj := q[i].weight(), q[j].weight(); wi != wj {
		return wi < wj
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(e any) { *q = append(*q, e.(queued)) }

func (q *nodeQueue) Pop() any {
	n := len(*q) - 1
	v := (*q)[n]
	*q = (*q)[:n]
	return v
}

// paddingFor returns how many weight-0 leaves must be added to the given
// leaf count so that (leaves-1) is a multiple of (k-1).
func paddingFor(leaves, k int) int {
	if leaves <= 1 || k <= 2 {
		return 0
	}
	if r := (leaves - 1) % (k - 1); r != 0 {
		return k - 1 - r
	}
	return 0
}

// buildTree builds a k-ary Huffman tree over entries, which must already
// be validated. Leaves take sequence numbers in vocabulary order, padding
// follows, and merged nodes are numbered as they are created. The k nodes
// of each merge become children in the order they were popped.
func buildTree(entries Vocabulary, k int) (root node, pad int) {
	pad = paddingFor(len(entries), k)

	q := make(nodeQueue, 0, len(entries)+pad)
	seq := 0
	for _, e := range entries {
		q = append(q, queued{node: &leaf{token: e.Token, w: e.Weight}, seq: seq})
		seq++
	}
	for i := 0; i < pad; i++ {
		q = append(q, queued{node: &padding{}, seq: seq})
		seq++
	}
	heap.Init(&q)

	for q.Len() > 1 {
		n := min(k, q.Len())
		parent := &internal{children: make([]node, 0, n)}
		for i := 0; i < n; i++ {
			child := heap.Pop(&q).(queued)
			parent.children = append(parent.children, child.node)
			parent.w += child.weight()
		}
		heap.Push(&q, queued{node: parent, seq: seq})
		seq++
	}

	return heap.Pop(&q).(queued).node, pad
}
