package hashmap

// Map is the surface shared by the string-keyed maps in this package.
// Deletion is deliberately absent from it.
type Map[V any] interface {
	Load(key string) (val V, loaded bool)

	// Store inserts or updates the entry for key, returning the map's own
	// copy of the key string.
	Store(key string, value V) (stored string, err error)

	// Range iterates over the map's key/value pairs until the callback
	// function returns false.
	Range(fn func(key string, value V) (contd bool))

	Len() int
}
