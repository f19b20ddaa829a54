package domain

import (
	"iter"
	"slices"
)

// minCapacity is the first allocation made by a growing List or Buffer.
const minCapacity = 8

// List is an ordered, append-only collection.
// Capacity doubles on growth, starting at minCapacity.
type List[T any] struct {
	items []T
}

// Append adds values in order.
func (l *List[T]) Append(values ...T) {
	for _, v := range values {
		if len(l.items) == cap(l.items) {
			l.grow(len(l.items) + 1)
		}
		l.items = append(l.items, v)
	}
}

func (l *List[T]) grow(need int) {
	size := max(minCapacity, 2*cap(l.items), need)
	items := make([]T, len(l.items), size)
	copy(items, l.items)
	l.items = items
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// All iterates over the items in insertion order.
func (l *List[T]) All() iter.Seq[T] {
	return slices.Values(l.items)
}

// Items returns a copy of the items.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// StringList is a List of strings that ignores empty values.
type StringList struct {
	List[string]
}

// Append adds the non-empty values in order.
func (l *StringList) Append(values ...string) {
	for _, v := range values {
		if v == "" {
			continue
		}
		l.List.Append(v)
	}
}
