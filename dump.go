package skipmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes a description of the list's structure to w: one line per
// active level, top level first, followed by level 0 walked backwards.
//
//	size=3, height=2
//	level 1:-->{2, b}
//	level 0:-->{1, a}-->{2, b}-->{3, c}
//	reverse level 0:-->{3, c}-->{2, b}-->{1, a}
func (m *Map[K, V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "size=%d, height=%d\n", m.length, m.height)
	for level := m.height - 1; level >= 0; level-- {
		fmt.Fprintf(bw, "level %d:", level)
		for idx := m.arena.head().next[level]; idx != tailIdx; {
			n := m.arena.at(idx)
			fmt.Fprintf(bw, "-->{%v, %v}", n.key, n.val)
			idx = n.next[level]
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("reverse level 0:")
	for k, v := range m.Backward() {
		fmt.Fprintf(bw, "-->{%v, %v}", k, v)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// String returns the output of Dump.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	_ = m.Dump(&sb)
	return sb.String()
}
