// Package loser Taken from talk: https://github.com/bboreham/go-loser/blob/iter/tree.go.
// Thank you Bryan
package loser

import (
	"iter"
)

type Sequence[E any] interface {
	All() iter.Seq[E]
}

// New builds a tree that merges sequences, each already ordered by less, into
// one sequence ordered by less. Exhausted sequences lose every game, so no
// sentinel value is needed.
func New[E any](sequences []Sequence[E], less func(E, E) bool) *Tree[E] {
	t := Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		less:      less,
	}
	return &t
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []Sequence[E]
	less      func(E, E) bool
}

type node[E any] struct {
	index int              // Leaf position of the loser for internal nodes, of the winner for node 0.
	value E                // Leaves only.
	done  bool             // Leaves only: the sequence is exhausted.
	next  func() (E, bool) // Leaves only.
}

func (t *Tree[E]) moveNext(leaf int) {
	n := &t.nodes[leaf]
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	var zero E
	n.value = zero
	n.done = true
}

// All yields the merged sequence. Every sequence is pulled lazily: a value is
// requested from a sequence only after its previous value has been yielded.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		for i, s := range t.sequences {
			leaf := i + len(t.sequences)
			next, stop := iter.Pull(s.All())
			//nolint:gocritic // is not a leak.
			defer stop()
			t.nodes[leaf] = node[E]{next: next}
			t.moveNext(leaf)
		}
		t.nodes[0].index = t.playGame(1)
		for {
			winner := t.nodes[0].index
			if t.nodes[winner].done || !yield(t.nodes[winner].value) {
				return
			}
			t.moveNext(winner)
			t.replayGames(winner)
		}
	}
}

// beats reports whether leaf a wins against leaf b.
func (t *Tree[E]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	if na.done {
		return false
	}
	if nb.done {
		return true
	}
	return t.less(na.value, nb.value)
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.beats(left, right) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	t.nodes[pos].index = loser
	return winner
}

// Starting at pos, which is a winner, re-consider all games up to the root.
func (t *Tree[E]) replayGames(pos int) {
	for n := parent(pos); n != 0; n = parent(n) {
		node := &t.nodes[n]
		if t.beats(node.index, pos) {
			// Record pos as the loser here, and the old loser is the new winner.
			node.index, pos = pos, node.index
		}
	}
	t.nodes[0].index = pos
}

func parent(i int) int { return i >> 1 }
