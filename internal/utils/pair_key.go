package utils

import "fmt"

// PairKey builds the order-independent lookup key for a two-party
// conversation: the two identifiers sorted, then joined with the first
// one's length as a prefix so ids containing ":" cannot collide
// (PairKey("a:b", "c") must differ from PairKey("a", "b:c")). {A,B}
// and {B,A} yield the same key, which is what the unique index on
// conversations.pair_key relies on. Every read or write that touches
// the pair must go through here instead of sorting inline.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%s:%s", len(a), a, b)
}
