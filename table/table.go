package table

import (
	"fmt"
	"iter"
	"math/bits"
)

type slot[K comparable, V any] struct {
	key   K
	used  bool
	value V
}

// Table is an open-addressing associative container with a capacity fixed at
// construction. There is no growth, no rehash and no deletion: an unused slot
// is the only vacancy marker, so a probe sequence that reaches one proves the
// key was never inserted.
//
// Colliding entries advance by the bit-reversal of the key's hash rather than
// by a unit stride. Reversing the hash scatters successive probes across the
// store instead of walking a run of adjacent slots, which keeps secondary
// clustering down while staying deterministic.
//
// Callers must size the table well above the number of distinct keys they
// will insert; 3-5x is a sensible margin. Exceeding capacity panics once a
// probe sequence has visited every slot.
type Table[K comparable, V any] struct {
	slots      []slot[K, V]
	hash       func(K) uint64
	fresh      V
	collisions int
}

// New returns a table with capacity slots. hash is the hash capability for K.
// fresh is the value a slot starts from when Emplace claims it; pass the
// identity element of V's merge when V is an accumulator.
func New[K comparable, V any](capacity int, hash func(K) uint64, fresh V) *Table[K, V] {
	if capacity <= 0 {
		panic("table: capacity must be positive")
	}
	return &Table[K, V]{
		slots: make([]slot[K, V], capacity),
		hash:  hash,
		fresh: fresh,
	}
}

// Insert writes value under key, replacing any previous value. At most one
// slot ever holds key.
func (t *Table[K, V]) Insert(key K, value V) {
	n := uint64(len(t.slots))
	h := t.hash(key)
	index := h % n
	stride := bits.Reverse64(h) % n

	for probes := 0; ; probes++ {
		if probes > len(t.slots) {
			panic(t.overrun())
		}
		s := &t.slots[index]
		if s.used && s.key != key {
			index = (index + stride) % n
			continue
		}
		s.key = key
		s.used = true
		s.value = value
		return
	}
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if p := t.GetRef(key); p != nil {
		return *p, true
	}
	var zero V
	return zero, false
}

// GetRef returns a pointer to the value stored under key for in-place
// mutation, or nil if key is absent. The probe sequence continues past
// occupied non-matching slots and stops only on a match or an empty slot.
func (t *Table[K, V]) GetRef(key K) *V {
	n := uint64(len(t.slots))
	h := t.hash(key)
	index := h % n
	stride := bits.Reverse64(h) % n

	for probes := 0; probes <= len(t.slots); probes++ {
		s := &t.slots[index]
		if !s.used {
			return nil
		}
		if s.key == key {
			return &s.value
		}
		index = (index + stride) % n
	}
	return nil
}

// Emplace returns a pointer to the value under key, claiming an empty slot
// and initializing it with the fresh value first if key is absent. Each probe
// advance past an occupied non-matching slot increments the collision
// counter.
func (t *Table[K, V]) Emplace(key K) *V {
	n := uint64(len(t.slots))
	h := t.hash(key)
	index := h % n
	stride := bits.Reverse64(h) % n

	for probes := 0; ; probes++ {
		if probes > len(t.slots) {
			panic(t.overrun())
		}
		s := &t.slots[index]
		if !s.used {
			s.key = key
			s.used = true
			s.value = t.fresh
			return &s.value
		}
		if s.key == key {
			return &s.value
		}
		t.collisions++
		index = (index + stride) % n
	}
}

// Collisions reports the cumulative number of probe advances made by Emplace.
// It never decreases. Diagnostic only.
func (t *Table[K, V]) Collisions() int {
	return t.collisions
}

// All iterates over every occupied slot in storage order. The order carries
// no meaning; callers that need a total order must sort the pairs themselves.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range t.slots {
			if !t.slots[i].used {
				continue
			}
			if !yield(t.slots[i].key, t.slots[i].value) {
				return
			}
		}
	}
}

func (t *Table[K, V]) overrun() string {
	return fmt.Sprintf("table: probe sequence exhausted %d slots, capacity exceeded", len(t.slots))
}
