package hashmap

import "math"

// DefaultCapacity is the slot count of tables created by New, and the
// capacity a Table shrinks back to when Reset.
const DefaultCapacity = 16

// slot is one entry of a Table's backing array. The occupied flag is what
// distinguishes an empty slot from an entry, so the empty string is a
// perfectly valid key.
type slot[V any] struct {
	key      string
	value    V
	occupied bool
}

// Table is a string-keyed hash table backed by open addressing with linear
// probing. The slot array's length is always a power of two, so a key's
// home slot is its DJB2 hash masked by the capacity. Lookups and
// insertions scan forward from the home slot, wrapping at the end of the
// array, until they hit the key or an empty slot.
//
// A Table grows before its length can exceed half of its capacity, which
// keeps probe sequences short and guarantees the scans above terminate.
// Tables expect a single logical owner; they are not safe for concurrent
// use.
//
// The zero Table has no slot array and is not ready for use. Create tables
// with New or NewWithCapacity.
type Table[V any] struct {
	slots  []slot[V]
	length int
}

var _ Map[any] = (*Table[any])(nil)

// New creates an empty Table with DefaultCapacity slots.
func New[V any]() *Table[V] {
	return NewWithCapacity[V](DefaultCapacity)
}

// NewWithCapacity creates an empty Table with at least the specified number
// of slots. The capacity is rounded up to the next power of two, and
// non-positive values fall back to DefaultCapacity.
func NewWithCapacity[V any](capacity int) *Table[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Table[V]{
		slots: make([]slot[V], ceilPowerOfTwo(capacity)),
	}
}

// Load returns the value stored for key. The second result reports whether
// the key was present; when it is false, the first result is the zero
// value of V.
func (t *Table[V]) Load(key string) (val V, loaded bool) {
	index := djb2(key) & uint64(len(t.slots)-1)

	for t.slots[index].occupied {
		if t.slots[index].key == key {
			return t.slots[index].value, true
		}

		index++
		if index >= uint64(len(t.slots)) {
			index = 0
		}
	}

	return val, false
}

// Store inserts or updates the entry for key. It returns the table's
// interned copy of the key: the string retained by the insertion that
// first claimed a slot for it. Callers holding many duplicate key strings
// can keep the returned one and let their own copies be collected.
//
// Store fails only with ErrCapacityOverflow, when the table must grow and
// doubling its capacity would overflow int.
func (t *Table[V]) Store(key string, value V) (stored string, err error) {
	// Grow ahead of the probe, even if this Store turns out to be an
	// update. The check keeps length bounded by half the slot count.
	if t.length >= len(t.slots)/2 {
		if err = t.expand(); err != nil {
			return "", err
		}
	}

	stored, claimed := writeSlot(t.slots, key, value)
	if claimed {
		t.length++
	}

	return stored, nil
}

// Len returns the number of entries stored in the table.
func (t *Table[V]) Len() int {
	return t.length
}

// Cap returns the current size of the table's slot array.
func (t *Table[V]) Cap() int {
	return len(t.slots)
}

// Reset discards every entry and shrinks the table back to
// DefaultCapacity. Outstanding iterators keep walking the old slots.
func (t *Table[V]) Reset() {
	t.slots = make([]slot[V], DefaultCapacity)
	t.length = 0
}

// Range iterates over the table's key/value pairs in slot order until the
// callback function returns false.
func (t *Table[V]) Range(fn func(key string, value V) (contd bool)) {
	it := t.Iterator()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// expand moves every entry into a slot array twice the current size.
// Entries keep their key strings; only their slot positions change. On
// error the table is untouched.
func (t *Table[V]) expand() error {
	capacity, err := nextCapacity(len(t.slots))
	if err != nil {
		return err
	}

	slots := make([]slot[V], capacity)
	for i := range t.slots {
		if t.slots[i].occupied {
			writeSlot(slots, t.slots[i].key, t.slots[i].value)
		}
	}

	t.slots = slots
	return nil
}

// nextCapacity doubles current, failing instead of wrapping around when
// the doubled value would not fit in an int.
func nextCapacity(current int) (int, error) {
	if current > math.MaxInt/2 {
		return 0, ErrCapacityOverflow
	}

	return current * 2, nil
}

// writeSlot places (key, value) into the slot array, probing forward from
// the key's home slot. An occupied slot holding an equal key is updated in
// place and keeps its existing key string; otherwise the first empty slot
// reached claims the entry. The second result reports whether a slot was
// claimed.
func writeSlot[V any](slots []slot[V], key string, value V) (string, bool) {
	index := djb2(key) & uint64(len(slots)-1)

	for slots[index].occupied {
		if slots[index].key == key {
			slots[index].value = value
			return slots[index].key, false
		}

		index++
		if index >= uint64(len(slots)) {
			index = 0
		}
	}

	slots[index] = slot[V]{key: key, value: value, occupied: true}
	return key, true
}

// ceilPowerOfTwo rounds n up to the nearest power of two, clamping to the
// largest power an int can hold when the rounding itself would overflow.
func ceilPowerOfTwo(n int) int {
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++

	if n <= 0 {
		n = math.MaxInt/2 + 1
	}

	return n
}
