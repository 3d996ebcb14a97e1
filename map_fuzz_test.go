package skipmap

import (
	"errors"
	"fmt"
	"testing"
)

type fuzzOp struct {
	typ byte
	key int
	val int
}

func FuzzMapMatchesModel(f *testing.F) {
	f.Add([]byte{0, 1, 1, 0, 2, 2})
	f.Add([]byte{1, 2, 3, 2, 2, 4})
	f.Add([]byte{2, 3, 5, 0, 3, 7, 3, 3, 0})
	f.Add([]byte{0, 9, 1, 4, 0, 0, 0, 5, 5, 2, 9, 9})

	f.Fuzz(func(t *testing.T, input []byte) {
		const maxOps = 64
		ops := decodeFuzzOps(input, maxOps)
		if len(ops) == 0 {
			t.Skip()
		}

		m := New[int, int](WithSeed(uint64(len(input))))
		model := make(map[int]int)
		for i, op := range ops {
			if err := applyOp(m, model, op); err != nil {
				t.Fatalf("op %d %v: %v (history %s)", i, op, err, summarizeOps(ops[:i+1]))
			}
		}
		requireInvariants(t, m)
		if m.Len() != len(model) {
			t.Fatalf("length %d, model has %d", m.Len(), len(model))
		}
		for k, v := range m.All() {
			if want, ok := model[k]; !ok || want != v {
				t.Fatalf("key %d: map has %d, model has %d (present=%v)", k, v, want, ok)
			}
		}
	})
}

func applyOp(m *Map[int, int], model map[int]int, op fuzzOp) error {
	switch op.typ % 5 {
	case 0: // Insert
		_, inserted := m.Insert(op.key, op.val)
		_, present := model[op.key]
		if inserted == present {
			return fmt.Errorf("inserted=%v with key present=%v", inserted, present)
		}
		if !present {
			model[op.key] = op.val
		}
	case 1: // At
		v, err := m.At(op.key)
		want, present := model[op.key]
		if present != (err == nil) || (present && v != want) {
			return fmt.Errorf("At = (%d, %v), model (%d, %v)", v, err, want, present)
		}
	case 2: // Erase
		err := m.Erase(op.key)
		_, present := model[op.key]
		if present && err != nil {
			return fmt.Errorf("erase of present key failed: %w", err)
		}
		if !present && !errors.Is(err, ErrKeyNotFound) {
			return fmt.Errorf("erase of absent key returned %v", err)
		}
		delete(model, op.key)
	case 3: // Index
		*m.Index(op.key) += op.val
		model[op.key] += op.val
	case 4: // EraseAt via Find
		it := m.Find(op.key)
		_, present := model[op.key]
		if it.Valid() != present {
			return fmt.Errorf("Find valid=%v, model present=%v", it.Valid(), present)
		}
		if present {
			m.EraseAt(it)
			delete(model, op.key)
		}
	}
	return nil
}

func decodeFuzzOps(input []byte, maxOps int) []fuzzOp {
	if maxOps <= 0 {
		return nil
	}
	ops := make([]fuzzOp, 0, maxOps)
	for i := 0; i+2 < len(input) && len(ops) < maxOps; i += 3 {
		typ := input[i] % 5
		key := int(input[i+1] % 16)
		val := int(int8(input[i+2]))
		ops = append(ops, fuzzOp{typ: typ, key: key, val: val})
	}
	return ops
}

func summarizeOps(ops []fuzzOp) string {
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, fmt.Sprintf("{%d %d %d}", op.typ, op.key, op.val))
	}
	return fmt.Sprintf("%v", parts)
}
