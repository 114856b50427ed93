package optics

// The accessors in this file require a non-empty slice and panic with
// *EmptySequenceError otherwise, on read and on write alike. Writes
// allocate a fresh slice; the source is never mutated.

// First creates a lens for the first element of a non-empty slice.
func First[T any]() Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			if len(s) == 0 {
				emptySequence("first")
			}
			return s[0]
		},
		set: func(s []T, v T) []T {
			if len(s) == 0 {
				emptySequence("first")
			}
			result := make([]T, len(s))
			copy(result, s)
			result[0] = v
			return result
		},
	}
}

// Rest creates a lens for everything after the first element of a
// non-empty slice. Writing keeps the original first element.
func Rest[T any]() Lens[[]T, []T] {
	return Lens[[]T, []T]{
		get: func(s []T) []T {
			if len(s) == 0 {
				emptySequence("rest")
			}
			result := make([]T, len(s)-1)
			copy(result, s[1:])
			return result
		},
		set: func(s []T, v []T) []T {
			if len(s) == 0 {
				emptySequence("rest")
			}
			result := make([]T, 0, len(v)+1)
			result = append(result, s[0])
			return append(result, v...)
		},
	}
}

// Last creates a lens for the final element of a non-empty slice.
func Last[T any]() Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			if len(s) == 0 {
				emptySequence("last")
			}
			return s[len(s)-1]
		},
		set: func(s []T, v T) []T {
			if len(s) == 0 {
				emptySequence("last")
			}
			result := make([]T, len(s))
			copy(result, s)
			result[len(s)-1] = v
			return result
		},
	}
}

// Init creates a lens for everything before the final element of a
// non-empty slice. Writing re-appends the original last element
// unchanged, so Init and Last round-trip: setting Init to its own Get
// reassembles the source exactly.
func Init[T any]() Lens[[]T, []T] {
	return Lens[[]T, []T]{
		get: func(s []T) []T {
			if len(s) == 0 {
				emptySequence("init")
			}
			result := make([]T, len(s)-1)
			copy(result, s[:len(s)-1])
			return result
		},
		set: func(s []T, v []T) []T {
			if len(s) == 0 {
				emptySequence("init")
			}
			result := make([]T, 0, len(v)+1)
			result = append(result, v...)
			return append(result, s[len(s)-1])
		},
	}
}

// LastSplice creates a lens focusing the final element of a non-empty
// slice as a one-element slice. Unlike Last, its write side accepts a
// replacement of any length and splices it in place of the last
// element, changing the overall length. First has no such variant: only
// the last position admits expansion.
func LastSplice[T any]() Lens[[]T, []T] {
	return Lens[[]T, []T]{
		get: func(s []T) []T {
			if len(s) == 0 {
				emptySequence("last")
			}
			return []T{s[len(s)-1]}
		},
		set: func(s []T, v []T) []T {
			if len(s) == 0 {
				emptySequence("last")
			}
			result := make([]T, 0, len(s)-1+len(v))
			result = append(result, s[:len(s)-1]...)
			return append(result, v...)
		},
	}
}
