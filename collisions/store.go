package collisions

import "github.com/automoto/boxcollide/components"

// store is an append-only arena indexed by Key. A record's key is the number
// of records present when it was inserted, so keys run 0, 1, 2, ... within a
// tick and restart after Clear.
type store[R any] struct {
	recs []R
}

// Insert appends rec and returns its key.
func (s *store[R]) Insert(rec R) Key {
	key := Key(len(s.recs))
	s.recs = append(s.recs, rec)
	return key
}

// Get returns a copy of the record for key, or false when the key is beyond
// the records inserted since the last Clear.
func (s *store[R]) Get(key Key) (R, bool) {
	if int(key) >= len(s.recs) {
		var zero R
		return zero, false
	}
	return s.recs[key], true
}

// GetMany returns the records for every key that is present, skipping the rest.
func (s *store[R]) GetMany(keys []Key) []R {
	out := make([]R, 0, len(keys))
	for _, key := range keys {
		if rec, ok := s.Get(key); ok {
			out = append(out, rec)
		}
	}
	return out
}

// All returns every record of the tick in key order.
func (s *store[R]) All() []R {
	out := make([]R, len(s.recs))
	copy(out, s.recs)
	return out
}

// Each calls fn for every record in key order.
func (s *store[R]) Each(fn func(Key, R)) {
	for i, rec := range s.recs {
		fn(Key(i), rec)
	}
}

func (s *store[R]) Len() int {
	return len(s.recs)
}

// Clear drops every record, keeping the backing array for the next tick.
func (s *store[R]) Clear() {
	clear(s.recs)
	s.recs = s.recs[:0]
}

type StaticColls struct {
	store[StaticRec]
}

func NewStaticColls() *StaticColls {
	return &StaticColls{}
}

type TriggerColls[RxK, TxK components.TriggerKind] struct {
	store[TriggerRec[RxK, TxK]]
}

func NewTriggerColls[RxK, TxK components.TriggerKind]() *TriggerColls[RxK, TxK] {
	return &TriggerColls[RxK, TxK]{}
}
