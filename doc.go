// Package hashmap provides a string-keyed hash table built on open
// addressing with linear probing, plus a small generic map interface and a
// builtin-map-backed implementation of that same interface.
//
// The flagship Table keeps its entries in a power-of-two slot array and
// doubles that array whenever the number of entries reaches half of the
// capacity, so probe sequences stay short. Tables support insertion,
// update, lookup, and forward iteration; deletion is intentionally out of
// scope. Nothing in this package is safe for concurrent use.
package hashmap
