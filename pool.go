package skipmap

// arena owns every node of a map. Nodes are addressed by index so links stay
// valid when the backing slice grows; slots 0 and 1 hold the sentinels.
type arena[K, V any] struct {
	nodes []*node[K, V]
	// free lists slots released by erase, reused before the slice grows.
	free []int32
}

func newArena[K, V any]() *arena[K, V] {
	head, tail := newSentinels[K, V]()
	return &arena[K, V]{nodes: []*node[K, V]{head, tail}}
}

func (a *arena[K, V]) head() *node[K, V] {
	return a.nodes[headIdx]
}

func (a *arena[K, V]) tail() *node[K, V] {
	return a.nodes[tailIdx]
}

// at returns the node stored at idx, or nil if the slot is out of range or
// has been released.
func (a *arena[K, V]) at(idx int32) *node[K, V] {
	if idx < 0 || int(idx) >= len(a.nodes) {
		return nil
	}
	return a.nodes[idx]
}

func (a *arena[K, V]) acquireNode(key K, val V, level int) int32 {
	n := newNode(key, val, level)
	if k := len(a.free); k > 0 {
		idx := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[idx] = n
		return idx
	}
	a.nodes = append(a.nodes, n)
	return int32(len(a.nodes) - 1)
}

func (a *arena[K, V]) releaseNode(idx int32) {
	if idx == headIdx || idx == tailIdx {
		return
	}
	n := a.at(idx)
	if n == nil {
		return
	}
	var zeroK K
	var zeroV V
	n.key = zeroK
	n.val = zeroV
	n.next = nil
	n.prev = nilIdx
	a.nodes[idx] = nil
	a.free = append(a.free, idx)
}

// reset drops every data node and relinks the head directly to the tail.
func (a *arena[K, V]) reset() {
	clear(a.nodes[tailIdx+1:])
	a.nodes = a.nodes[:tailIdx+1]
	a.free = a.free[:0]

	head := a.head()
	for i := range head.next {
		head.next[i] = tailIdx
	}
	a.tail().prev = headIdx
}

// live reports the number of occupied data slots.
func (a *arena[K, V]) live() int {
	return len(a.nodes) - int(tailIdx+1) - len(a.free)
}
