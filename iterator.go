package hashmap

// Iterator walks a Table's entries in slot order. Create one with
// Table.Iterator, advance it with Next, and read the current entry through
// Key and Value after each true return.
//
// An Iterator makes a single pass: once Next has returned false it keeps
// returning false, and a fresh Iterator is required to start over. It
// captures the table's slot array at creation, so it never crashes if the
// table changes underneath it, but mutating a table mid-iteration is
// unsupported: entries stored afterwards may or may not be visited, and a
// growth leaves the iterator walking the table's former slots.
type Iterator[V any] struct {
	slots []slot[V]
	index int
	key   string
	value V
}

// Iterator returns a new iterator positioned before the table's first
// slot.
func (t *Table[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{slots: t.slots}
}

// Next advances to the next occupied slot, recording that slot's entry as
// the iterator's current key/value pair. It returns false once the slot
// array is exhausted.
func (it *Iterator[V]) Next() bool {
	for it.index < len(it.slots) {
		i := it.index
		it.index++

		if it.slots[i].occupied {
			it.key = it.slots[i].key
			it.value = it.slots[i].value
			return true
		}
	}

	return false
}

// Key returns the key recorded by the last successful call to Next.
func (it *Iterator[V]) Key() string {
	return it.key
}

// Value returns the value recorded by the last successful call to Next.
func (it *Iterator[V]) Value() V {
	return it.value
}
