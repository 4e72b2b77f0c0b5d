package quizgen

import (
	"math/rand"
	"sort"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	got := Shuffle(rand.New(rand.NewSource(7)), in)

	sorted := append([]int(nil), got...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("shuffle lost elements: %v", got)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	Shuffle(rand.New(rand.NewSource(7)), in)

	for i, v := range in {
		if v != i+1 {
			t.Fatalf("input mutated: %v", in)
		}
	}
}

func TestShuffleEmpty(t *testing.T) {
	if got := Shuffle(rand.New(rand.NewSource(7)), []int(nil)); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
