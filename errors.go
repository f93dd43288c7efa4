package hashmap

import "fmt"

var (
	// ErrCapacityOverflow is returned by Table.Store when the table needs
	// to grow and doubling its slot array would overflow int. The table is
	// left unmodified.
	ErrCapacityOverflow = fmt.Errorf("hashmap: table capacity overflow")
)
