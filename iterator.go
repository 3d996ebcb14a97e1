package skipmap

import "iter"

// Iterator is a forward cursor over a Map. Next moves towards larger keys,
// Prev towards smaller ones. An Iterator positioned on End is a
// past-the-end marker: it compares equal to End and must not be
// dereferenced or advanced.
//
// Cursors stay valid across inserts and across erasure of other elements.
type Iterator[K, V any] struct {
	m   *Map[K, V]
	cur int32
}

// Begin returns a cursor to the smallest key, or End if the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m: m, cur: m.arena.head().next[0]}
}

// End returns the past-the-end cursor.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m, cur: tailIdx}
}

// Valid reports whether the cursor points at an element.
func (it Iterator[K, V]) Valid() bool {
	return valid(it.m, it.cur)
}

// Next advances the cursor to the next larger key.
func (it *Iterator[K, V]) Next() {
	it.cur = it.m.forward(it.cur)
}

// Prev moves the cursor to the next smaller key.
func (it *Iterator[K, V]) Prev() {
	it.cur = it.m.backward(it.cur)
}

// Key returns the key of the current element.
func (it Iterator[K, V]) Key() K {
	return it.m.element(it.cur).key
}

// Value returns the value of the current element.
func (it Iterator[K, V]) Value() V {
	return it.m.element(it.cur).val
}

// SetValue replaces the value of the current element in place.
func (it Iterator[K, V]) SetValue(v V) {
	it.m.element(it.cur).val = v
}

// Ptr returns a pointer to the value of the current element.
func (it Iterator[K, V]) Ptr() *V {
	return &it.m.element(it.cur).val
}

// Equal reports whether both cursors reference the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.m == other.m && it.cur == other.cur
}

// Const returns a read-only cursor at the same position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{m: it.m, cur: it.cur}
}

// ConstIterator is a forward cursor that only reads. It has the same
// traversal rules as Iterator; there is no conversion back to Iterator.
type ConstIterator[K, V any] struct {
	m   *Map[K, V]
	cur int32
}

// CBegin returns a read-only cursor to the smallest key.
func (m *Map[K, V]) CBegin() ConstIterator[K, V] {
	return m.Begin().Const()
}

// CEnd returns the read-only past-the-end cursor.
func (m *Map[K, V]) CEnd() ConstIterator[K, V] {
	return m.End().Const()
}

// Valid reports whether the cursor points at an element.
func (it ConstIterator[K, V]) Valid() bool {
	return valid(it.m, it.cur)
}

// Next advances the cursor to the next larger key.
func (it *ConstIterator[K, V]) Next() {
	it.cur = it.m.forward(it.cur)
}

// Prev moves the cursor to the next smaller key.
func (it *ConstIterator[K, V]) Prev() {
	it.cur = it.m.backward(it.cur)
}

// Key returns the key of the current element.
func (it ConstIterator[K, V]) Key() K {
	return it.m.element(it.cur).key
}

// Value returns a copy of the value of the current element.
func (it ConstIterator[K, V]) Value() V {
	return it.m.element(it.cur).val
}

// Equal reports whether both cursors reference the same position.
func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.m == other.m && it.cur == other.cur
}

// ReverseIterator walks a Map from the largest key to the smallest. Next
// moves towards smaller keys and Prev towards larger ones. REnd sits before
// the smallest key and must not be dereferenced or advanced.
type ReverseIterator[K, V any] struct {
	m   *Map[K, V]
	cur int32
}

// RBegin returns a reverse cursor to the largest key, or REnd if the map is
// empty.
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{m: m, cur: m.arena.tail().prev}
}

// REnd returns the reverse past-the-end cursor.
func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{m: m, cur: headIdx}
}

// Valid reports whether the cursor points at an element.
func (it ReverseIterator[K, V]) Valid() bool {
	return valid(it.m, it.cur)
}

// Next moves the cursor to the next smaller key.
func (it *ReverseIterator[K, V]) Next() {
	it.cur = it.m.backward(it.cur)
}

// Prev moves the cursor to the next larger key.
func (it *ReverseIterator[K, V]) Prev() {
	it.cur = it.m.forward(it.cur)
}

// Key returns the key of the current element.
func (it ReverseIterator[K, V]) Key() K {
	return it.m.element(it.cur).key
}

// Value returns the value of the current element.
func (it ReverseIterator[K, V]) Value() V {
	return it.m.element(it.cur).val
}

// SetValue replaces the value of the current element in place.
func (it ReverseIterator[K, V]) SetValue(v V) {
	it.m.element(it.cur).val = v
}

// Ptr returns a pointer to the value of the current element.
func (it ReverseIterator[K, V]) Ptr() *V {
	return &it.m.element(it.cur).val
}

// Equal reports whether both cursors reference the same position.
func (it ReverseIterator[K, V]) Equal(other ReverseIterator[K, V]) bool {
	return it.m == other.m && it.cur == other.cur
}

func valid[K, V any](m *Map[K, V], idx int32) bool {
	if m == nil {
		return false
	}
	n := m.arena.at(idx)
	return n != nil && n.kind == dataNode
}

// All returns an iterator over the map's pairs in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for idx := m.arena.head().next[0]; idx != tailIdx; {
			n := m.arena.at(idx)
			next := n.next[0]
			if !yield(n.key, n.val) {
				return
			}
			idx = next
		}
	}
}

// Backward returns an iterator over the map's pairs in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for idx := m.arena.tail().prev; idx != headIdx; {
			n := m.arena.at(idx)
			prev := n.prev
			if !yield(n.key, n.val) {
				return
			}
			idx = prev
		}
	}
}

// Keys returns an iterator over the map's keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the map's values in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
