package hashmap

// BuiltinMap adapts Go's builtin map to the Map interface. It exists as
// the reference point the Table is tested and benchmarked against;
// iteration order is whatever the runtime produces.
type BuiltinMap[V any] struct {
	backend map[string]V
}

var _ Map[any] = (*BuiltinMap[any])(nil)

// NewBuiltinMap creates an empty BuiltinMap sized for the specified number
// of entries.
func NewBuiltinMap[V any](size int) *BuiltinMap[V] {
	if size < 0 {
		size = 0
	}

	return &BuiltinMap[V]{
		backend: make(map[string]V, size),
	}
}

func (m *BuiltinMap[V]) Load(key string) (val V, loaded bool) {
	val, loaded = m.backend[key]
	return
}

// Store inserts or updates the entry for key. The builtin map has no
// interned key string to hand back, so the stored key is always the
// caller's own.
func (m *BuiltinMap[V]) Store(key string, value V) (string, error) {
	m.backend[key] = value
	return key, nil
}

func (m *BuiltinMap[V]) Len() int {
	return len(m.backend)
}

func (m *BuiltinMap[V]) Range(fn func(key string, value V) (contd bool)) {
	for key, value := range m.backend {
		if !fn(key, value) {
			return
		}
	}
}
