package skipmap

import "cmp"

// Equal reports whether a and b hold the same number of elements and the
// same key/value pairs in the same order. Keys are compared with a's
// comparison function.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[K any, V comparable](a, b *Map[K, V]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[K, V any](a, b *Map[K, V], eq func(V, V) bool) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	i, j := a.CBegin(), b.CBegin()
	for i.Valid() {
		if a.compare(i.Key(), j.Key()) != 0 || !eq(i.Value(), j.Value()) {
			return false
		}
		i.Next()
		j.Next()
	}
	return true
}

// Less walks a and b side by side and reports true as soon as a pair of a
// orders before the corresponding pair of b, pairs being ordered by key and
// then by value. If no such pair exists, Less reports whether a has fewer
// elements than b.
//
// Less is not a lexicographic order: a pair of a that orders after its
// counterpart in b does not end the walk.
func Less[K any, V cmp.Ordered](a, b *Map[K, V]) bool {
	return LessFunc(a, b, cmp.Compare[V])
}

// LessFunc is like Less but orders values with compare.
func LessFunc[K, V any](a, b *Map[K, V], compare func(V, V) int) bool {
	if a.Len() > 0 && b.Len() > 0 {
		i, j := a.CBegin(), b.CBegin()
		for i.Valid() && j.Valid() {
			c := a.compare(i.Key(), j.Key())
			if c < 0 || (c == 0 && compare(i.Value(), j.Value()) < 0) {
				return true
			}
			i.Next()
			j.Next()
		}
	}
	return a.Len() < b.Len()
}
