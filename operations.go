package skipmap

// Insert adds key with value. If key is already present the map is left
// untouched and Insert returns a cursor to the existing element and false.
// Otherwise it returns a cursor to the new element and true.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	idx, inserted := m.insert(key, value, m.cfg.observer)
	return Iterator[K, V]{m: m, cur: idx}, inserted
}

// TraceInsert behaves like Insert and additionally reports every step of
// the descent, and the height drawn for a new key, to obs.
func (m *Map[K, V]) TraceInsert(key K, value V, obs Observer) (Iterator[K, V], bool) {
	idx, inserted := m.insert(key, value, obs)
	return Iterator[K, V]{m: m, cur: idx}, inserted
}

func (m *Map[K, V]) insert(key K, value V, obs Observer) (int32, bool) {
	var preds [MaxLevel]int32
	if found := m.search(key, &preds, obs); found != tailIdx {
		m.metrics.IncDuplicate()
		return found, false
	}

	height := m.policy.drawHeight()
	if obs != nil {
		obs.Height(key, height)
	}
	if height > m.height {
		// Levels that were empty have only the head to the left of key.
		for level := m.height; level < height; level++ {
			preds[level] = headIdx
		}
		m.height = height
		m.metrics.IncHeightRaise()
	}

	idx := m.arena.acquireNode(key, value, height)
	n := m.arena.at(idx)
	for level := 0; level < height; level++ {
		pred := m.arena.at(preds[level])
		n.next[level] = pred.next[level]
		pred.next[level] = idx
	}
	n.prev = preds[0]
	m.arena.at(n.next[0]).prev = idx

	m.length++
	m.metrics.IncInsert()
	return idx, true
}

// Erase removes key from the map. It returns ErrKeyNotFound, and leaves the
// map unchanged, if the key is absent.
func (m *Map[K, V]) Erase(key K) error {
	var preds [MaxLevel]int32
	target := m.search(key, &preds, nil)
	if target == tailIdx {
		m.metrics.IncMiss()
		return ErrKeyNotFound
	}
	m.unlink(target, &preds)
	return nil
}

// EraseAt removes the element it points at. Cursors to other elements stay
// valid; it and any copy of it must not be used afterwards.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) {
	if it.m != m {
		panic(ErrInvalidCursor)
	}
	n := m.element(it.cur)
	var preds [MaxLevel]int32
	target := m.search(n.key, &preds, nil)
	if target != it.cur {
		panic(ErrInvalidCursor)
	}
	m.unlink(target, &preds)
}

func (m *Map[K, V]) unlink(target int32, preds *[MaxLevel]int32) {
	t := m.arena.at(target)
	for level := 0; level < t.height(); level++ {
		pred := m.arena.at(preds[level])
		if pred.next[level] != target {
			break
		}
		pred.next[level] = t.next[level]
	}
	m.arena.at(t.next[0]).prev = preds[0]

	m.arena.releaseNode(target)
	m.length--
	m.metrics.IncErase()
	m.shrink()
}

// Clear removes every element.
func (m *Map[K, V]) Clear() {
	for idx := m.arena.head().next[0]; idx != tailIdx; {
		next := m.arena.at(idx).next[0]
		m.arena.releaseNode(idx)
		idx = next
	}
	m.arena.reset()
	m.height = 0
	m.length = 0
}

// Find returns a cursor to key, or End if the key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{m: m, cur: m.search(key, nil, nil)}
}

// FindConst returns a read-only cursor to key, or CEnd if the key is absent.
func (m *Map[K, V]) FindConst(key K) ConstIterator[K, V] {
	return ConstIterator[K, V]{m: m, cur: m.search(key, nil, nil)}
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.search(key, nil, nil) != tailIdx
}

// At returns the value stored for key, or ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	idx := m.search(key, nil, nil)
	if idx == tailIdx {
		m.metrics.IncMiss()
		var zero V
		return zero, ErrKeyNotFound
	}
	return m.arena.at(idx).val, nil
}

// Ref returns a pointer to the value stored for key, or ErrKeyNotFound. The
// pointer stays valid until key is erased or the map is cleared.
func (m *Map[K, V]) Ref(key K) (*V, error) {
	idx := m.search(key, nil, nil)
	if idx == tailIdx {
		m.metrics.IncMiss()
		return nil, ErrKeyNotFound
	}
	return &m.arena.at(idx).val, nil
}

// Index returns a pointer to the value stored for key, first inserting the
// zero value if key is absent.
func (m *Map[K, V]) Index(key K) *V {
	idx := m.search(key, nil, nil)
	if idx == tailIdx {
		var zero V
		idx, _ = m.insert(key, zero, m.cfg.observer)
	}
	return &m.arena.at(idx).val
}
