package loser_test

import (
	"fmt"

	"github.com/davidvella/pq/loser"
)

// ExampleNew_basic demonstrates basic usage of a loser tree to merge sorted sequences.
func ExampleNew_basic() {
	// Create three sorted sequences
	seq1 := NewList(1, 4, 7)
	seq2 := NewList(2, 5, 8)
	seq3 := NewList(3, 6, 9)

	tree := loser.New(
		[]loser.Sequence[int]{seq1, seq2, seq3},
		func(a, b int) bool { return a < b },
	)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 3 4 5 6 7 8 9
}

// ExampleNew_descending merges sequences sorted from largest to smallest.
func ExampleNew_descending() {
	seq1 := NewList(9, 5, 1)
	seq2 := NewList(8, 2)
	seq3 := NewList[int]()

	tree := loser.New(
		[]loser.Sequence[int]{seq1, seq2, seq3},
		func(a, b int) bool { return a > b },
	)

	for v := range tree.All() {
		fmt.Printf("%d ", v)
	}

	// Output: 9 8 5 2 1
}

// ExampleNew_strings shows how to use the loser tree with string sequences.
func ExampleNew_strings() {
	seq1 := NewList("apple", "dog", "zebra")
	seq2 := NewList("banana", "elephant")
	seq3 := NewList("cat", "fish")

	tree := loser.New(
		[]loser.Sequence[string]{seq1, seq2, seq3},
		func(a, b string) bool { return a < b },
	)

	for v := range tree.All() {
		fmt.Printf("%s ", v)
	}

	// Output: apple banana cat dog elephant fish zebra
}
