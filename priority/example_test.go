package priority_test

import (
	"fmt"

	"github.com/davidvella/pq/priority"
)

// ExampleQueue demonstrates pushing items and popping them in priority order.
func ExampleQueue() {
	pq := priority.New[uint32, string]()

	pq.Push(5, "a")
	pq.Push(1, "b")
	pq.Push(9, "c")
	pq.Push(3, "d")

	// Peek at highest priority item
	if p, v, ok := pq.Peek(); ok {
		fmt.Printf("Highest priority: %s = %d\n", v, p)
	}

	for {
		p, v, ok := pq.Pop()
		if !ok {
			break
		}
		fmt.Printf("Popped: %s = %d\n", v, p)
	}

	// Output:
	// Highest priority: c = 9
	// Popped: c = 9
	// Popped: a = 5
	// Popped: d = 3
	// Popped: b = 1
}

// ExampleQueue_PeekRef demonstrates updating the top value in place.
func ExampleQueue_PeekRef() {
	type Task struct {
		Name    string
		Retries int
	}

	pq := priority.New[int, Task]()
	pq.Push(2, Task{Name: "Low priority"})
	pq.Push(7, Task{Name: "High priority"})

	if task, ok := pq.PeekRef(); ok {
		task.Retries++
	}

	for p, task := range pq.All() {
		fmt.Printf("Processing: %s (priority %d, retries %d)\n", task.Name, p, task.Retries)
	}

	// Output:
	// Processing: High priority (priority 7, retries 1)
	// Processing: Low priority (priority 2, retries 0)
}

// ExampleMerge demonstrates draining several queues as one stream.
func ExampleMerge() {
	east := priority.New[int, string]()
	east.Push(10, "east-10")
	east.Push(3, "east-3")

	west := priority.New[int, string]()
	west.Push(7, "west-7")
	west.Push(1, "west-1")

	for _, v := range priority.Merge(east, west) {
		fmt.Println(v)
	}

	// Output:
	// east-10
	// west-7
	// east-3
	// west-1
}
