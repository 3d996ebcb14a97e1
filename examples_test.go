package skipmap_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/metailurini/skipmap"
)

func ExampleMap_Insert() {
	m := skipmap.New[int, string]()
	m.Insert(1, "one")
	m.Insert(2, "two")
	_, inserted := m.Insert(1, "uno")
	fmt.Println(m.Len(), inserted)
	// Output: 2 false
}

func ExampleMap_At() {
	m := skipmap.New[int, string]()
	m.Insert(1, "one")
	val, err := m.At(1)
	fmt.Println(val, err)
	_, err = m.At(2)
	fmt.Println(errors.Is(err, skipmap.ErrKeyNotFound))
	// Output: one <nil>
	// true
}

func ExampleMap_Erase() {
	m := skipmap.New[int, string]()
	m.Insert(1, "one")
	m.Insert(2, "two")
	fmt.Println(m.Erase(1), m.Len())
	fmt.Println(m.Erase(1))
	// Output: <nil> 1
	// key not found
}

func ExampleMap_Index() {
	counts := skipmap.New[string, int]()
	for _, w := range []string{"b", "a", "b"} {
		*counts.Index(w)++
	}
	for k, v := range counts.All() {
		fmt.Printf("%s:%d ", k, v)
	}
	fmt.Println()
	// Output: a:1 b:2
}

func ExampleMap_Begin() {
	m := skipmap.New[int, string]()
	m.Insert(3, "three")
	m.Insert(1, "one")
	m.Insert(2, "two")
	for it := m.Begin(); !it.Equal(m.End()); it.Next() {
		fmt.Printf("%d:%s ", it.Key(), it.Value())
	}
	fmt.Println()
	// Output: 1:one 2:two 3:three
}

func ExampleMap_RBegin() {
	m := skipmap.Of(
		skipmap.Pair[int, string]{Key: 1, Value: "one"},
		skipmap.Pair[int, string]{Key: 2, Value: "two"},
	)
	for it := m.RBegin(); !it.Equal(m.REnd()); it.Next() {
		fmt.Printf("%d:%s ", it.Key(), it.Value())
	}
	fmt.Println()
	// Output: 2:two 1:one
}

func ExampleMap_Dump() {
	m := skipmap.New[int, string](skipmap.WithMaxLevel(1))
	m.Insert(2, "b")
	m.Insert(1, "a")
	_ = m.Dump(os.Stdout)
	// Output:
	// size=2, height=1
	// level 0:-->{1, a}-->{2, b}
	// reverse level 0:-->{2, b}-->{1, a}
}
