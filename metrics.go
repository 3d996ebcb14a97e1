package skipmap

// Stats is a snapshot of a Map's operation counters.
type Stats struct {
	// Inserts counts keys that were added.
	Inserts int64
	// Duplicates counts inserts that found the key already present.
	Duplicates int64
	// Erases counts keys that were removed.
	Erases int64
	// Misses counts lookups and erases that reported ErrKeyNotFound.
	Misses int64
	// HeightRaises counts inserts that grew the list's active height.
	HeightRaises int64
}

type metrics struct {
	inserts      int64
	duplicates   int64
	erases       int64
	misses       int64
	heightRaises int64
}

func (m *metrics) IncInsert() { m.inserts++ }
func (m *metrics) IncDuplicate() { m.duplicates++ }
func (m *metrics) IncErase() { m.erases++ }
func (m *metrics) IncMiss() { m.misses++ }
func (m *metrics) IncHeightRaise() { m.heightRaises++ }

func (m *metrics) snapshot() Stats {
	return Stats{
		Inserts:      m.inserts,
		Duplicates:   m.duplicates,
		Erases:       m.erases,
		Misses:       m.misses,
		HeightRaises: m.heightRaises,
	}
}
