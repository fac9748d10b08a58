package craft

import "fmt"

// Table is a dense array holding one value per in-domain state
type Table[T any] struct {
	values []T
	space  *StateSpace
}

// NewTable allocates a table over a state space, filled with the zero value
func NewTable[T any](space *StateSpace) *Table[T] {
	return &Table[T]{
		values: make([]T, space.Size()),
		space:  space,
	}
}

// Space returns the state space addressing the table
func (t *Table[T]) Space() *StateSpace {
	return t.space
}

// Contains reports whether the state has a slot in the table
func (t *Table[T]) Contains(s State) bool {
	return t.space.Contains(s)
}

// Get returns the value stored for a state. It panics if the state is out of domain.
func (t *Table[T]) Get(s State) T {
	return t.values[t.mustIndex(s)]
}

// Set stores the value for a state. It panics if the state is out of domain.
func (t *Table[T]) Set(s State, v T) {
	t.values[t.mustIndex(s)] = v
}

// Len returns the number of slots
func (t *Table[T]) Len() int {
	return len(t.values)
}

func (t *Table[T]) mustIndex(s State) int {
	i, ok := t.space.Index(s)
	if !ok {
		panic(fmt.Sprintf("craft: state out of table domain: %v", s))
	}
	return i
}

// layer returns the slots of one CP layer
func (t *Table[T]) layer(cp int) []T {
	n := t.space.LayerSize()
	return t.values[cp*n : (cp+1)*n]
}

// below returns the slots of every layer under cp
func (t *Table[T]) below(cp int) []T {
	return t.values[:cp*t.space.LayerSize()]
}
