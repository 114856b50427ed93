package optics

// Interspersed creates a read-only accessor viewing a slice with sep
// inserted between every pair of adjacent elements. Empty and
// single-element slices pass through with no separator. The source is
// never mutated.
func Interspersed[T any](sep T) Getter[[]T, []T] {
	return Getter[[]T, []T]{
		view: func(s []T) []T {
			if len(s) <= 1 {
				result := make([]T, len(s))
				copy(result, s)
				return result
			}
			result := make([]T, 0, 2*len(s)-1)
			for i, v := range s {
				if i > 0 {
					result = append(result, sep)
				}
				result = append(result, v)
			}
			return result
		},
	}
}

// Intercalated creates a read-only accessor viewing a slice of slices
// flattened, with sep between consecutive inner slices. An empty outer
// slice views as empty; a single inner slice views as itself with no
// separator.
func Intercalated[T any](sep []T) Getter[[][]T, []T] {
	return Getter[[][]T, []T]{
		view: func(s [][]T) []T {
			size := 0
			for _, inner := range s {
				size += len(inner)
			}
			if len(s) > 1 {
				size += (len(s) - 1) * len(sep)
			}
			result := make([]T, 0, size)
			for i, inner := range s {
				if i > 0 {
					result = append(result, sep...)
				}
				result = append(result, inner...)
			}
			return result
		},
	}
}
