package typelist

import "sort"

// Npos is returned by the index operations when no element matches.
const Npos = -1

// List is an immutable sequence supporting list algebra: every operation
// returns a new list and never modifies the receiver.
type List[T any] struct {
	items []T
}

// Of returns a list holding the given elements.
func Of[T any](items ...T) List[T] {
	return List[T]{items: clone(items)}
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return len(l.items)
}

// Empty returns true if the list has no elements.
func (l List[T]) Empty() bool {
	return len(l.items) == 0
}

// Items returns a copy of the elements.
func (l List[T]) Items() []T {
	return clone(l.items)
}

// Get returns the element at position i.
func (l List[T]) Get(i int) T {
	return l.items[i]
}

// Set returns a new list with the element at position i replaced.
func (l List[T]) Set(i int, item T) List[T] {
	items := clone(l.items)
	items[i] = item
	return List[T]{items: items}
}

// Reverse returns a new list with the elements in reverse order.
func (l List[T]) Reverse() List[T] {
	items := make([]T, len(l.items))
	for i, item := range l.items {
		items[len(l.items)-1-i] = item
	}
	return List[T]{items: items}
}

// PushBack returns a new list with the given elements appended.
func (l List[T]) PushBack(items ...T) List[T] {
	return List[T]{items: append(clone(l.items), items...)}
}

// PushFront returns a new list with the given elements prepended.
func (l List[T]) PushFront(items ...T) List[T] {
	return List[T]{items: append(clone(items), l.items...)}
}

// PopBack returns a new list without the last element.
func (l List[T]) PopBack() List[T] {
	return List[T]{items: clone(l.items[:len(l.items)-1])}
}

// PopFront returns a new list without the first element.
func (l List[T]) PopFront() List[T] {
	return List[T]{items: clone(l.items[1:])}
}

// Concat returns a new list holding the receiver's elements followed by the
// other list's elements.
func (l List[T]) Concat(other List[T]) List[T] {
	return List[T]{items: append(clone(l.items), other.items...)}
}

// Filter returns a new list holding the elements satisfying the predicate.
func (l List[T]) Filter(predicate func(T) bool) List[T] {
	items := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if predicate(item) {
			items = append(items, item)
		}
	}
	return List[T]{items: items}
}

// RemoveIf returns a new list without the elements satisfying the
// predicate.
func (l List[T]) RemoveIf(predicate func(T) bool) List[T] {
	return l.Filter(func(item T) bool { return !predicate(item) })
}

// Slice returns a new list holding count elements starting at from. A
// count reaching past the end is truncated.
func (l List[T]) Slice(from, count int) List[T] {
	if from >= len(l.items) {
		return List[T]{}
	}
	end := from + count
	if end > len(l.items) {
		end = len(l.items)
	}
	return List[T]{items: clone(l.items[from:end])}
}

// Split returns two lists holding the first n elements and the rest.
func (l List[T]) Split(n int) (List[T], List[T]) {
	if n > len(l.items) {
		n = len(l.items)
	}
	return List[T]{items: clone(l.items[:n])}, List[T]{items: clone(l.items[n:])}
}

// Sort returns a new list with the elements ordered by the given
// comparator. The sort is stable.
func (l List[T]) Sort(less func(a, b T) bool) List[T] {
	items := clone(l.items)
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	return List[T]{items: items}
}

// Map returns a new list with every element replaced by the mapping's
// result. Use MapTo for mappings that change the element type.
func (l List[T]) Map(mapping func(T) T) List[T] {
	return MapTo(l, mapping)
}

// IndexFunc returns the position of the first element satisfying the
// predicate, or Npos.
func (l List[T]) IndexFunc(predicate func(T) bool) int {
	for i, item := range l.items {
		if predicate(item) {
			return i
		}
	}
	return Npos
}

// MapTo returns a new list with every element replaced by the mapping's
// result, possibly of a new element type.
func MapTo[In, Out any](l List[In], mapping func(In) Out) List[Out] {
	items := make([]Out, len(l.items))
	for i, item := range l.items {
		items[i] = mapping(item)
	}
	return List[Out]{items: items}
}

// FoldL folds the list left to right.
func FoldL[T, Acc any](l List[T], init Acc, fold func(Acc, T) Acc) Acc {
	acc := init
	for _, item := range l.items {
		acc = fold(acc, item)
	}
	return acc
}

// FoldR folds the list right to left.
func FoldR[T, Acc any](l List[T], init Acc, fold func(T, Acc) Acc) Acc {
	acc := init
	for i := len(l.items) - 1; i >= 0; i-- {
		acc = fold(l.items[i], acc)
	}
	return acc
}

// IndexOf returns the position of the first element equal to item, or Npos.
func IndexOf[T comparable](l List[T], item T) int {
	return l.IndexFunc(func(candidate T) bool { return candidate == item })
}

// Contains reports whether the list holds an element equal to item.
func Contains[T comparable](l List[T], item T) bool {
	return IndexOf(l, item) != Npos
}

// Equal compares two lists element-wise.
func Equal[T comparable](lhs, rhs List[T]) bool {
	if len(lhs.items) != len(rhs.items) {
		return false
	}
	for i, item := range lhs.items {
		if item != rhs.items[i] {
			return false
		}
	}
	return true
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
