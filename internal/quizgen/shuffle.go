package quizgen

import "math/rand"

// Shuffle returns a uniformly shuffled copy of s using the standard
// Fisher-Yates walk from the last index down. Every shuffle in the app
// goes through this one helper so the distribution is the same
// everywhere; study variety is the only requirement, nothing here is
// security-sensitive.
func Shuffle[T any](rng *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
