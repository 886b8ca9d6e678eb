// Package stack_test provides runnable examples for the Stack container.
// Each example is runnable via “go test -run Example”, showing both code
// and expected output.
package stack_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcoll/stack"
)

// ExampleStack demonstrates basic LIFO behavior: the last value pushed is
// the first value popped.
func ExampleStack() {
	// 1) Create an empty stack of strings.
	s := stack.New[string]()

	// 2) Push three plates onto the pile.
	s.Push("bottom")
	s.Push("middle")
	s.Push("top")

	// 3) Pop returns the most recently pushed element first.
	v, _ := s.Pop()
	fmt.Println(v)

	// 4) Peek inspects without removing.
	v, _ = s.Peek()
	fmt.Println(v, "remains on top,", s.Len(), "left")
	// Output:
	// top
	// middle remains on top, 2 left
}

// ExampleStack_Drain demonstrates emptying a stack in one call. Drain
// returns elements most-recent-first, which reverses insertion order.
func ExampleStack_Drain() {
	s := stack.New[int](stack.WithCapacity(3))
	s.Push(1)
	s.Push(2)
	s.Push(3)

	fmt.Println(s.Drain())
	fmt.Println("empty:", s.IsEmpty())
	// Output:
	// [3 2 1]
	// empty: true
}

// ExampleStack_Pop demonstrates the empty-stack sentinel: Pop never
// panics, it reports absence through ErrEmptyStack.
func ExampleStack_Pop() {
	s := stack.New[int]()
	if _, err := s.Pop(); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// error: stack: stack is empty
}
