// Package priority implements a generic max-priority queue. Each item pairs an
// integer priority with a value of any type, and the item with the largest
// priority is always served first.
//
// The queue is a binary heap over a slice of pointers to individually
// allocated nodes. Sifting moves only those pointers; values are never
// copied while they are queued. Every node is referenced by exactly one slot
// of the slice, and a slot is cleared in the same step its node leaves it, so
// a value is either queued once or owned by the caller, never both.
//
// Key features:
//   - Any integer type as the priority, any type as the value
//   - O(log n) Push and Pop, O(1) Peek
//   - One allocation per Push while within the reserved capacity
//   - Clear releases queued values that implement Releaser exactly once
//   - Draining iterators: Queue.All and Merge over several queues
//
// Basic usage:
//
//	pq := priority.New[uint32, string]()
//
//	pq.Push(5, "a")
//	pq.Push(1, "b")
//	pq.Push(9, "c")
//
//	// Highest priority item
//	p, v, ok := pq.Peek()
//	if ok {
//	    fmt.Printf("next: %s (%d)\n", v, p)
//	}
//
//	// Remove items in priority order
//	for p, v := range pq.All() {
//	    fmt.Printf("%s (%d)\n", v, p)
//	}
//
// Ordering among equal priorities is not stable. A pushed item stops rising as
// soon as its parent's priority is not strictly smaller, and when sifting down
// the right child is preferred over an equal left child.
//
// A Queue is not safe for concurrent use; callers sharing one between
// goroutines must guard it with their own lock.
package priority
