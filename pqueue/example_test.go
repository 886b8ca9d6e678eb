// Package pqueue_test provides runnable examples for the pqueue package,
// verifiable via `go test -run Example`.
package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcoll/pqueue"
)

// ExamplePriorityQueue schedules jobs by urgency: the lowest priority
// value pops first.
func ExamplePriorityQueue() {
	// 1) Create an empty queue of job names.
	q := pqueue.New[string]()

	// 2) Push jobs with their priorities, in arbitrary order.
	q.Push("flush-cache", 3.0)
	q.Push("serve-request", 1.0)
	q.Push("rotate-logs", 2.0)

	// 3) Pop until empty; jobs come out in ascending priority.
	for !q.IsEmpty() {
		job, err := q.Pop()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(job)
	}

	// Output:
	// serve-request
	// rotate-logs
	// flush-cache
}

// ExamplePriorityQueue_Push demonstrates the FIFO tie-break: equal
// priorities pop in the order they were pushed.
func ExamplePriorityQueue_Push() {
	q := pqueue.New[string]()

	// 1) Three entries share one priority.
	q.Push("first", 1.0)
	q.Push("second", 1.0)
	q.Push("third", 1.0)

	// 2) Drain preserves the submission order within the tie.
	fmt.Println(q.Drain())

	// Output:
	// [first second third]
}

// ExamplePriorityQueue_Peek inspects the head of the queue without
// consuming it.
func ExamplePriorityQueue_Peek() {
	q := pqueue.New[string]()
	q.Push("b", 2.0)
	q.Push("a", 1.0)

	// 1) Peek any number of times; the queue does not change.
	head, _ := q.Peek()
	fmt.Println("peek:", head, "len:", q.Len())

	// 2) Pop returns the very value Peek reported.
	popped, _ := q.Pop()
	fmt.Println("pop: ", popped, "len:", q.Len())

	// Output:
	// peek: a len: 2
	// pop:  a len: 1
}

// ExamplePriorityQueue_Pop shows the empty-queue sentinel.
func ExamplePriorityQueue_Pop() {
	q := pqueue.New[int]()

	if _, err := q.Pop(); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// error: pqueue: queue is empty
}
