package season

// Store is an ordered collection of normalized season records.
// Records keep the order in which they were added.
type Store struct {
	records []Record
}

// NewStore returns a store holding a copy of records.
func NewStore(records []Record) *Store {
	s := &Store{records: make([]Record, len(records))}
	copy(s.records, records)
	return s
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in insertion order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}
