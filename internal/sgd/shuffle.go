package sgd

import "math/rand/v2"

// Shuffle permutes index in place with the Fisher-Yates algorithm.
//
// Position i is swapped with a uniform draw from [i, n-1], so every
// permutation is equally likely.
func Shuffle(index []int, rng *rand.Rand) {
	n := len(index)
	for i := 0; i < n-1; i++ {
		j := i + rng.IntN(n-i)
		index[i], index[j] = index[j], index[i]
	}
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}
