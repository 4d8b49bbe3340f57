// Package workload parse the textual description of a run, that is
// the initial tree, task counts and operation schedule, and render
// the results report. The core engine packages never touch this
// format.
package workload

import "github.com/lorenzoz23/concurrent-rbtree/rbt"

// OpKind classify a scheduled operation.
type OpKind byte

const (
	// OpSearch read-only lookup, executed by a reader task.
	OpSearch OpKind = iota + 1
	// OpInsert key insertion, executed by a writer task.
	OpInsert
	// OpDelete key deletion, executed by a writer task.
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpSearch:
		return "search"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	}
	panic("unreachable code")
}

// Op is one scheduled operation, consumed by exactly one task.
type Op struct {
	Kind OpKind
	Key  int64
}

// Workload is a fully parsed input: the initial tree as pre-order
// {key,color} pairs, reader and writer task counts, and the search
// and mutation schedules.
type Workload struct {
	Pairs     []rbt.KeyColor
	Readers   int64
	Writers   int64
	Searches  []Op
	Mutations []Op
}
