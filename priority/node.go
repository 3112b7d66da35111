package priority

import (
	"golang.org/x/exp/constraints"
)

// Releaser is implemented by values that hold resources which must be freed
// when the queue discards them in Clear. Values handed to a caller by Pop or
// All belong to the caller and are never released by the queue.
type Releaser interface {
	Release()
}

// node owns one queued value and its priority. The queue keeps exactly one
// pointer to each node in its backing slice; that pointer is the node's
// owning handle.
type node[P constraints.Integer, T any] struct {
	priority P
	value    T
	live     bool
}

func newNode[P constraints.Integer, T any](priority P, value T) *node[P, T] {
	return &node[P, T]{
		priority: priority,
		value:    value,
		live:     true,
	}
}

// take moves the value out of the node, leaving it empty.
func (n *node[P, T]) take() T {
	if !n.live {
		panic("priority: node value taken twice")
	}
	v := n.value
	var zero T
	n.value = zero
	n.live = false
	return v
}

// release drops the value in place.
func (n *node[P, T]) release() {
	v := n.take()
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}
