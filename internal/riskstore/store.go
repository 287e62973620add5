package riskstore

import "time"

// Store is an immutable, in-memory view of the risk table. It is built once
// at startup and shared across requests without locking.
type Store struct {
	records  []RiskRecord
	byID     map[string][]int
	loadedAt time.Time
	source   string
}

// New builds a Store from records. The slice is copied.
func New(records []RiskRecord) *Store {
	s := &Store{
		records:  append([]RiskRecord(nil), records...),
		byID:     make(map[string][]int, len(records)),
		loadedAt: time.Now().UTC(),
	}
	for i, rec := range s.records {
		s.byID[rec.CustomerID] = append(s.byID[rec.CustomerID], i)
	}
	return s
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.records)
}

// LoadedAt reports when the store was built.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}

// Source names where the rows came from, if known.
func (s *Store) Source() string {
	return s.source
}

// All returns a copy of every row in load order.
func (s *Store) All() []RiskRecord {
	return append([]RiskRecord(nil), s.records...)
}

// ByBucket returns rows whose bucket label equals bucket, in load order.
func (s *Store) ByBucket(bucket string) []RiskRecord {
	out := make([]RiskRecord, 0)
	for _, rec := range s.records {
		if rec.Bucket == bucket {
			out = append(out, rec)
		}
	}
	return out
}

// ByCustomerID returns every row for id, in load order. Identifiers are
// expected to be unique, but duplicates from the scoring job are kept.
func (s *Store) ByCustomerID(id string) []RiskRecord {
	idx := s.byID[id]
	out := make([]RiskRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.records[i])
	}
	return out
}

// Describe returns descriptive statistics over the numeric columns.
func (s *Store) Describe() Summary {
	scores := make([]float64, len(s.records))
	for i, rec := range s.records {
		scores[i] = rec.Score
	}
	return Summary{
		Rows:    len(s.records),
		Columns: map[string]ColumnStats{ColumnScore: describe(scores)},
	}
}
