// Package lvlcoll is a compact toolbox of generic, single-owner collection
// types, plus a weighted shortest-path solver built on top of them.
//
// 🚀 What is lvlcoll?
//
//	A small, focused library that brings together:
//		• Stack[T]:          slice-backed LIFO buffer with Drain
//		• OrderedMap[K,V]:   insertion-order map over two parallel slices
//		• Result[T]:         Ok/Err sum type with map & unwrap combinators
//		• bintree.Node[T]:   owned binary tree with eager traversals
//		• PriorityQueue[T]:  binary min-heap with FIFO tie-breaking
//		• dijkstra.Solver:   shortest paths over any comparable vertex type
//
// ✨ Why choose lvlcoll?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – insertion order and FIFO tie-breaks, reproducible runs
//   - Predictable ownership – no shared state, no hidden goroutines
//   - Extensible – functional options on every constructor that needs them
//
// Everything is organized in leaf-to-root order, one package per structure:
//
//	stack/      – Stack[T]: Push, Pop, Peek, Drain
//	orderedmap/ – OrderedMap[K,V]: Put, Get, Remove, ordered snapshots
//	result/     – Result[T]: Ok/Err constructors, Map, UnwrapOr
//	bintree/    – Node[T]: InsertLeft/Right, Height, Inorder/Preorder
//	pqueue/     – PriorityQueue[T]: Push, Pop, Peek under (priority, seq) order
//	dijkstra/   – Solver[N]: AddEdge, ShortestPath, Distances
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──1──D
//
//	dijkstra.Solver finds A→B→D for 3, never A→C→D for 5.
//
// The containers are single-owner by contract: no locks, no synchronization.
// A solver is safe for concurrent queries as long as nothing mutates it.
//
//	go get github.com/katalvlaran/lvlcoll
package lvlcoll
