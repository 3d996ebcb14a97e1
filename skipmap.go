// Package skipmap implements an ordered map backed by a skip list.
//
// A Map keeps its keys in ascending order according to a comparison
// function and offers expected O(log n) lookup, insertion and removal along
// with forward, read-only and reverse cursors over the ordered sequence.
//
// A Map is not safe for concurrent use; callers must serialize access.
package skipmap

import (
	"cmp"
	"iter"
)

// Map is an ordered map from K to V.
//
// The zero value is not usable; create maps with New, NewFunc, Of or Collect.
type Map[K, V any] struct {
	compare func(a, b K) int
	arena   *arena[K, V]
	// height is the number of levels currently holding at least one node.
	height  int
	length  int
	policy  levelPolicy
	cfg     config
	metrics metrics
}

// New returns an empty Map ordered by K's natural ordering.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty Map ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Map[K, V] {
	if compare == nil {
		panic(ErrMalformedMap)
	}
	cfg := newConfig(opts)
	return &Map[K, V]{
		compare: compare,
		arena:   newArena[K, V](),
		policy:  newLevelPolicy(cfg.src, cfg.maxLevel),
		cfg:     cfg,
	}
}

// Of returns a Map holding pairs. When a key repeats, the first occurrence
// wins.
func Of[K cmp.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.InsertPairs(pairs...)
	return m
}

// Collect returns a Map holding the pairs produced by seq. When a key
// repeats, the first occurrence wins.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	m.InsertSeq(seq)
	return m
}

// Len returns the number of elements in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.length
}

// Empty reports whether the map holds no elements.
func (m *Map[K, V]) Empty() bool {
	return m.Len() == 0
}

// Height returns the number of levels currently in use. It is zero only when
// the map is empty.
func (m *Map[K, V]) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Stats returns the map's operation counters.
func (m *Map[K, V]) Stats() Stats {
	return m.metrics.snapshot()
}

// InsertPairs inserts each pair in order. Pairs whose key is already present
// are skipped.
func (m *Map[K, V]) InsertPairs(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
}

// InsertSeq inserts every pair produced by seq, in order. Pairs whose key is
// already present are skipped.
func (m *Map[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// Clone returns an independent copy of m. Only the key/value pairs are
// copied; every node in the copy draws a fresh height.
func (m *Map[K, V]) Clone() *Map[K, V] {
	cfg := m.cfg
	cfg.src = NewSource(m.cfg.src.Uint64())
	c := &Map[K, V]{
		compare: m.compare,
		arena:   newArena[K, V](),
		policy:  newLevelPolicy(cfg.src, cfg.maxLevel),
		cfg:     cfg,
	}
	c.copyFrom(m)
	return c
}

// Assign replaces the contents of m with a copy of the pairs in src.
// Assigning a map to itself does nothing.
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	if m == src {
		return
	}
	m.Clear()
	m.copyFrom(src)
}

func (m *Map[K, V]) copyFrom(src *Map[K, V]) {
	for idx := src.arena.head().next[0]; idx != tailIdx; {
		n := src.arena.at(idx)
		m.insert(n.key, n.val, nil)
		idx = n.next[0]
	}
}
