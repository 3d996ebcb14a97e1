package skipmap

// search descends from the top active level to level 0, moving right while
// the next node's key is less than key. When preds is non-nil it records the
// rightmost such node at every active level. It returns the index of the node
// holding key, or tailIdx if the key is absent.
func (m *Map[K, V]) search(key K, preds *[MaxLevel]int32, obs Observer) int32 {
	nodes := m.arena.nodes
	x := headIdx
	for level := m.height - 1; level >= 0; level-- {
		for {
			next := nodes[x].next[level]
			if next == tailIdx || m.compare(nodes[next].key, key) >= 0 {
				break
			}
			x = next
			if obs != nil {
				obs.Step(level, nodes[x].key)
			}
		}
		if preds != nil {
			preds[level] = x
		}
	}

	candidate := nodes[x].next[0]
	if candidate != tailIdx && m.compare(nodes[candidate].key, key) == 0 {
		return candidate
	}
	return tailIdx
}

// shrink lowers the active height to the highest level that still links at
// least one data node.
func (m *Map[K, V]) shrink() {
	head := m.arena.head()
	for m.height > 0 && head.next[m.height-1] == tailIdx {
		m.height--
	}
}

// element returns the data node at idx. It panics with ErrInvalidCursor if
// idx is a sentinel or a released slot.
func (m *Map[K, V]) element(idx int32) *node[K, V] {
	n := m.arena.at(idx)
	if n == nil || n.kind != dataNode {
		panic(ErrInvalidCursor)
	}
	return n
}

// forward returns the level-0 successor of idx. Stepping forward from the
// tail panics.
func (m *Map[K, V]) forward(idx int32) int32 {
	n := m.arena.at(idx)
	if idx == tailIdx || n == nil {
		panic(ErrInvalidCursor)
	}
	return n.next[0]
}

// backward returns the level-0 predecessor of idx. Stepping backward from
// the head panics.
func (m *Map[K, V]) backward(idx int32) int32 {
	n := m.arena.at(idx)
	if idx == headIdx || n == nil {
		panic(ErrInvalidCursor)
	}
	return n.prev
}
