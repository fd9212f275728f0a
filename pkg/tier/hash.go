package tier

import "hash/maphash"

// Hashing is offered for comparable instantiations only; map-key use needs no
// helper at all, this is for callers building their own hashed structures.

// SumOutcome hashes an outcome with the given seed. Equal outcomes hash
// equal under the same seed.
func SumOutcome[T, S comparable](seed maphash.Seed, o Outcome[T, S]) uint64 {
	return maphash.Comparable(seed, o)
}

// SumResult hashes a result with the given seed.
func SumResult[T, S, H comparable](seed maphash.Seed, r Result[T, S, H]) uint64 {
	return maphash.Comparable(seed, r)
}
