package hashmap

// djb2 hashes key with the DJB2 function: an accumulator seeded with 5381
// is multiplied by 33 and summed with each byte in turn, wrapping on
// overflow. Indexing by byte keeps multi-byte runes from collapsing into
// their code points, so any two equal strings hash identically.
func djb2(key string) uint64 {
	hash := uint64(5381)
	for i := 0; i < len(key); i++ {
		hash = hash*33 + uint64(key[i])
	}

	return hash
}
