package optics

import "github.com/byorgey/lens/functional"

// IndexedTraversal is a traversal over a slice that reports each
// element's zero-based position in the original slice to the element
// function. Restricting the traversal never renumbers: an element at
// position i is reported as i no matter which restriction visits it.
type IndexedTraversal[T any] struct {
	imodify  func([]T, func(int, T) T) []T
	itargets func([]T) []functional.Pair[int, T]
}

// Modify applies fn to every visited element, passing its original
// index. The result is assembled in a single left-to-right pass into a
// fresh slice; an empty slice is returned unchanged.
func (t IndexedTraversal[T]) Modify(source []T, fn func(index int, value T) T) []T {
	return t.imodify(source, fn)
}

// Set replaces every visited element.
func (t IndexedTraversal[T]) Set(source []T, value T) []T {
	return t.imodify(source, func(int, T) T { return value })
}

// Targets returns the visited elements in visitation order.
func (t IndexedTraversal[T]) Targets(source []T) []T {
	pairs := t.itargets(source)
	result := make([]T, len(pairs))
	for i, p := range pairs {
		result[i] = p.Second
	}
	return result
}

// Indexed returns (index, element) pairs for the visited elements in
// visitation order.
func (t IndexedTraversal[T]) Indexed(source []T) []functional.Pair[int, T] {
	return t.itargets(source)
}

// Plain widens the traversal to an ordinary Traversal, dropping the
// index information.
func (t IndexedTraversal[T]) Plain() Traversal[[]T, T] {
	return Traversal[[]T, T]{
		modify: func(s []T, fn func(T) T) []T {
			return t.imodify(s, func(_ int, v T) T { return fn(v) })
		},
		targets: t.Targets,
	}
}

// Where restricts the traversal to the elements whose original index
// satisfies keep, given the length of the slice being traversed. The
// surviving elements keep their original index numbering.
func (t IndexedTraversal[T]) Where(keep func(index, length int) bool) IndexedTraversal[T] {
	return IndexedTraversal[T]{
		imodify: func(s []T, fn func(int, T) T) []T {
			n := len(s)
			return t.imodify(s, func(i int, v T) T {
				if keep(i, n) {
					return fn(i, v)
				}
				return v
			})
		},
		itargets: func(s []T) []functional.Pair[int, T] {
			n := len(s)
			var result []functional.Pair[int, T]
			for _, p := range t.itargets(s) {
				if keep(p.First, n) {
					result = append(result, p)
				}
			}
			return result
		},
	}
}

// Elements creates an indexed traversal visiting every element of a
// slice in order, with indices 0..n-1.
func Elements[T any]() IndexedTraversal[T] {
	return IndexedTraversal[T]{
		imodify: func(s []T, fn func(int, T) T) []T {
			if len(s) == 0 {
				return s
			}
			result := make([]T, len(s))
			for i, v := range s {
				result[i] = fn(i, v)
			}
			return result
		},
		itargets: func(s []T) []functional.Pair[int, T] {
			var result []functional.Pair[int, T]
			for i, v := range s {
				result = append(result, functional.NewPair(i, v))
			}
			return result
		},
	}
}

// HeadOnly creates an indexed traversal visiting only the first
// element, index 0. An empty slice visits nothing; unlike First, this
// never fails.
func HeadOnly[T any]() IndexedTraversal[T] {
	return Elements[T]().Where(func(i, _ int) bool { return i == 0 })
}

// TailOnly creates an indexed traversal visiting every element except
// the first, indices 1..n-1. An empty slice visits nothing.
func TailOnly[T any]() IndexedTraversal[T] {
	return Elements[T]().Where(func(i, _ int) bool { return i > 0 })
}

// InitOnly creates an indexed traversal visiting every element except
// the last, indices 0..n-2. An empty slice visits nothing.
func InitOnly[T any]() IndexedTraversal[T] {
	return Elements[T]().Where(func(i, n int) bool { return i < n-1 })
}

// LastOnly creates an indexed traversal visiting only the final
// element, index n-1. An empty slice visits nothing.
func LastOnly[T any]() IndexedTraversal[T] {
	return Elements[T]().Where(func(i, n int) bool { return i == n-1 })
}
