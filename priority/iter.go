package priority

import (
	"iter"

	"github.com/davidvella/pq/loser"
	"golang.org/x/exp/constraints"
)

// All returns an iterator that pops items in priority order for as long as
// the caller keeps ranging. Breaking out early leaves the remaining items
// queued.
func (q *Queue[P, T]) All() iter.Seq2[P, T] {
	return func(yield func(P, T) bool) {
		for {
			p, v, ok := q.Pop()
			if !ok || !yield(p, v) {
				return
			}
		}
	}
}

type entry[P constraints.Integer, T any] struct {
	priority P
	q        *Queue[P, T]
}

// drain yields the priority of the root of q each time it is resumed. It
// never pops; the merge moves the winning value out itself.
type drain[P constraints.Integer, T any] struct {
	q *Queue[P, T]
}

func (d drain[P, T]) All() iter.Seq[entry[P, T]] {
	return func(yield func(entry[P, T]) bool) {
		for {
			p, _, ok := d.q.Peek()
			if !ok || !yield(entry[P, T]{priority: p, q: d.q}) {
				return
			}
		}
	}
}

// Merge returns an iterator that drains queues as a single stream in
// priority order. Only the items actually yielded are removed from their
// queues. Nil queues are skipped and a queue given more than once is drained
// once. The queues must not be modified while the iteration is in progress.
func Merge[P constraints.Integer, T any](queues ...*Queue[P, T]) iter.Seq2[P, T] {
	return func(yield func(P, T) bool) {
		seen := make(map[*Queue[P, T]]struct{}, len(queues))
		sequences := make([]loser.Sequence[entry[P, T]], 0, len(queues))
		for _, q := range queues {
			if q == nil {
				continue
			}
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			sequences = append(sequences, drain[P, T]{q: q})
		}

		tree := loser.New(sequences, func(a, b entry[P, T]) bool {
			return a.priority > b.priority
		})
		for e := range tree.All() {
			p, v, _ := e.q.Pop()
			if !yield(p, v) {
				return
			}
		}
	}
}
