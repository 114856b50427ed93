package optics

import "github.com/byorgey/lens/functional"

// PairFirst creates a lens for the first element of a pair.
func PairFirst[A, B any]() Lens[functional.Pair[A, B], A] {
	return Lens[functional.Pair[A, B], A]{
		get: func(p functional.Pair[A, B]) A { return p.First },
		set: func(p functional.Pair[A, B], a A) functional.Pair[A, B] {
			return functional.Pair[A, B]{First: a, Second: p.Second}
		},
	}
}

// PairSecond creates a lens for the second element of a pair.
func PairSecond[A, B any]() Lens[functional.Pair[A, B], B] {
	return Lens[functional.Pair[A, B], B]{
		get: func(p functional.Pair[A, B]) B { return p.Second },
		set: func(p functional.Pair[A, B], b B) functional.Pair[A, B] {
			return functional.Pair[A, B]{First: p.First, Second: b}
		},
	}
}

// Both creates a traversal visiting both elements of a homogeneous
// pair, first then second.
func Both[T any]() Traversal[functional.Pair[T, T], T] {
	return Traversal[functional.Pair[T, T], T]{
		modify: func(p functional.Pair[T, T], fn func(T) T) functional.Pair[T, T] {
			return functional.Pair[T, T]{First: fn(p.First), Second: fn(p.Second)}
		},
		targets: func(p functional.Pair[T, T]) []T {
			return []T{p.First, p.Second}
		},
	}
}
