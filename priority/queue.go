package priority

import (
	"context"

	"github.com/davidvella/pq/core/monitoring"
	"golang.org/x/exp/constraints"
)

// Queue is a max-priority queue backed by a binary heap of individually
// allocated nodes. The zero value is an empty queue ready to use.
//
// A Queue is not safe for concurrent use.
type Queue[P constraints.Integer, T any] struct {
	nodes  []*node[P, T]
	logger monitoring.Logger
	stats  monitoring.Stats
}

// New creates an empty queue.
func New[P constraints.Integer, T any](opts ...Option) *Queue[P, T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	stats := monitoring.NopStats()
	if o.registry != nil {
		stats = monitoring.NewStats(o.registry)
	}

	return &Queue[P, T]{
		nodes:  make([]*node[P, T], 0, o.capacity),
		logger: o.logger,
		stats:  stats,
	}
}

// Len returns the number of items in the queue.
func (q *Queue[P, T]) Len() int {
	return len(q.nodes)
}

// Push adds value with the given priority.
func (q *Queue[P, T]) Push(priority P, value T) {
	n := newNode(priority, value)

	oldCap := cap(q.nodes)
	q.nodes = append(q.nodes, n)
	if cap(q.nodes) != oldCap {
		q.log("queue_grow", "backing slice reallocated", map[string]interface{}{
			"old_capacity": oldCap,
			"new_capacity": cap(q.nodes),
		})
	}

	q.up(len(q.nodes) - 1)

	if q.stats != nil {
		q.stats.RecordPush()
		q.stats.SetLen(len(q.nodes))
	}
}

// Pop removes and returns the highest priority item. ok is false if the
// queue is empty.
func (q *Queue[P, T]) Pop() (priority P, value T, ok bool) {
	if len(q.nodes) == 0 {
		return priority, value, false
	}

	root := q.nodes[0]
	last := len(q.nodes) - 1
	if last == 0 {
		q.nodes[0] = nil
		q.nodes = q.nodes[:0]
	} else {
		q.nodes[0] = q.nodes[last]
		q.nodes[last] = nil
		q.nodes = q.nodes[:last]
		q.down(0)
	}

	if q.stats != nil {
		q.stats.RecordPop()
		q.stats.SetLen(len(q.nodes))
	}

	return root.priority, root.take(), true
}

// Peek returns the highest priority item without removing it.
func (q *Queue[P, T]) Peek() (priority P, value T, ok bool) {
	if len(q.nodes) == 0 {
		return priority, value, false
	}
	n := q.nodes[0]
	return n.priority, n.value, true
}

// PeekRef returns a pointer to the highest priority value so it can be
// modified in place. The pointer must not be used after the next call to
// Push, Pop, Clear, All or Merge on the queue.
func (q *Queue[P, T]) PeekRef() (*T, bool) {
	if len(q.nodes) == 0 {
		return nil, false
	}
	return &q.nodes[0].value, true
}

// Clear discards every queued value, calling Release on each one that
// implements Releaser. Release must not use the queue.
func (q *Queue[P, T]) Clear() {
	handles := q.nodes
	if len(handles) == 0 {
		return
	}
	q.nodes = handles[:0]

	for i, n := range handles {
		handles[i] = nil
		n.release()
	}

	if q.stats != nil {
		q.stats.RecordReleased(len(handles))
		q.stats.SetLen(0)
	}
	q.log("queue_clear", "released queued values", map[string]interface{}{
		"released": len(handles),
	})
}

// swap exchanges the handles at index i and j.
func (q *Queue[P, T]) swap(i, j int) {
	q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i]
}

// up moves the element at index i toward the root while it is strictly
// greater than its parent.
func (q *Queue[P, T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.nodes[i].priority <= q.nodes[parent].priority {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i toward the leaves while a child is
// strictly greater. The right child wins a tie between children.
func (q *Queue[P, T]) down(i int) {
	n := len(q.nodes)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		largest := left
		if right := left + 1; right < n && q.nodes[right].priority >= q.nodes[left].priority {
			largest = right
		}

		if q.nodes[largest].priority <= q.nodes[i].priority {
			break
		}

		q.swap(i, largest)
		i = largest
	}
}

func (q *Queue[P, T]) log(eventType, message string, details map[string]interface{}) {
	if q.logger == nil {
		return
	}
	q.logger.Log(context.Background(), monitoring.DEBUG, eventType, message, details)
}
