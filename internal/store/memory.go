package store

import (
	"errors"
	"sync"

	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

var (
	// ErrNotFound is returned when no record exists for a given date.
	ErrNotFound = errors.New("no record for date")
)

// MemoryStore is a concurrency-safe in-memory collection of daily temperature
// records. Insertion order is preserved: the analytics guarantees (hottest-day
// tie-breaking, extreme-day ordering) are order-sensitive, so List returns
// records in the order their dates were first stored.
//
// Records handed out by Get and List are snapshots; the stored records are
// never aliased outside the store. All mutation of stored records goes
// through Append, ConvertRecord or ConvertAll, under the store lock, so a
// reader can never observe readings paired with the wrong scale.
type MemoryStore struct {
	mu sync.RWMutex

	// key: record date, value: index into order
	index map[string]int
	order []*temperature.Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[string]int),
	}
}

// Put stores a snapshot of the record, replacing any existing record for the
// same date while keeping the date's original position.
func (s *MemoryStore) Put(r *temperature.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := r.Clone()
	if i, ok := s.index[r.Date]; ok {
		s.order[i] = clone
		return
	}
	s.index[r.Date] = len(s.order)
	s.order = append(s.order, clone)
}

// Append merges readings into the record for a date, creating the record when
// the date is new. Incoming readings are converted to the stored record's
// scale first, so the record's scale invariant holds.
func (s *MemoryStore) Append(date string, readings []float64, scale temperature.Scale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[date]
	if !ok {
		s.index[date] = len(s.order)
		s.order = append(s.order, &temperature.Record{
			Date:     date,
			Readings: append([]float64(nil), readings...),
			Scale:    scale,
		})
		return
	}

	existing := s.order[i]
	for _, v := range readings {
		existing.Readings = append(existing.Readings, temperature.Convert(v, scale, existing.Scale))
	}
}

// Get returns a snapshot of the record for a date.
func (s *MemoryStore) Get(date string) (*temperature.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[date]
	if !ok {
		return nil, ErrNotFound
	}
	return s.order[i].Clone(), nil
}

// List returns snapshots of all records in insertion order.
func (s *MemoryStore) List() []*temperature.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*temperature.Record, len(s.order))
	for i, r := range s.order {
		out[i] = r.Clone()
	}
	return out
}

// ConvertRecord converts the stored record for a date to the target scale
// and returns a snapshot of the result. The record's readings and scale
// change together under the store lock.
func (s *MemoryStore) ConvertRecord(date string, target temperature.Scale) (*temperature.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[date]
	if !ok {
		return nil, ErrNotFound
	}
	s.order[i].ConvertTo(target)
	return s.order[i].Clone(), nil
}

// ConvertAll converts every stored record to the target scale. Cross-day
// analytics require a common scale; this is the supported way to establish it.
func (s *MemoryStore) ConvertAll(target temperature.Scale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.order {
		r.ConvertTo(target)
	}
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
