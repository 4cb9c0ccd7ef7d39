package utils

// SortPair returns the two user ids in canonical (lexicographic) order.
func SortPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// PairKey builds the canonical key for an unordered user pair. Both orderings
// of the same pair always produce the same key.
func PairKey(a, b string) string {
	lo, hi := SortPair(a, b)
	return lo + "#" + hi
}
