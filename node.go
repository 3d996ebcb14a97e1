package skipmap

type nodeKind uint8

const (
	sentinelNode nodeKind = iota
	dataNode
)

const (
	// MaxLevel is the hard cap on the number of levels a node can occupy.
	MaxLevel = 32
	// P is the probability that a node is promoted one level higher.
	P = 1.0 / 2.0
)

// Sentinels live at fixed arena indices.
const (
	headIdx int32 = 0
	tailIdx int32 = 1
	nilIdx  int32 = -1
)

// node is a single arena slot. Sentinels and data nodes share the same link
// layout; only data nodes carry a meaningful key and value.
type node[K, V any] struct {
	kind nodeKind
	key  K
	val  V
	// next holds the forward link for each level the node participates in.
	next []int32
	// prev is the backward link at level 0.
	prev int32
}

func newNode[K, V any](key K, val V, level int) *node[K, V] {
	return &node[K, V]{
		kind: dataNode,
		key:  key,
		val:  val,
		next: make([]int32, level),
		prev: nilIdx,
	}
}

func newSentinels[K, V any]() (*node[K, V], *node[K, V]) {
	head := &node[K, V]{kind: sentinelNode, next: make([]int32, MaxLevel), prev: nilIdx}
	tail := &node[K, V]{kind: sentinelNode, prev: headIdx}
	for i := range head.next {
		head.next[i] = tailIdx
	}
	return head, tail
}

// height is the number of levels the node is linked into.
func (n *node[K, V]) height() int {
	return len(n.next)
}
