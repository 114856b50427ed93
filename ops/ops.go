// Package ops provides prepend and append operators over any optic
// focused on slice-valued data, with variants that return the updated
// focus values and variants that thread the container through an
// external mutable cell.
package ops

import "github.com/byorgey/lens/optics"

// Prepend returns source with x prepended to every focused slice.
func Prepend[S, E any](o optics.Modifier[S, []E], x E, source S) S {
	return o.Modify(source, func(xs []E) []E {
		result := make([]E, 0, len(xs)+1)
		result = append(result, x)
		return append(result, xs...)
	})
}

// PrependGet prepends x to every focused slice and also returns the
// updated focus values, concatenated in visitation order. Both are
// computed in the same modification pass.
func PrependGet[S, E any](o optics.ReadWriter[S, []E], x E, source S) (S, []E) {
	var collected []E
	updated := o.Modify(source, func(xs []E) []E {
		result := make([]E, 0, len(xs)+1)
		result = append(result, x)
		result = append(result, xs...)
		collected = append(collected, result...)
		return result
	})
	return updated, collected
}

// Append returns source with xs appended to every focused slice.
func Append[S, E any](o optics.Modifier[S, []E], xs []E, source S) S {
	return o.Modify(source, func(focus []E) []E {
		result := make([]E, 0, len(focus)+len(xs))
		result = append(result, focus...)
		return append(result, xs...)
	})
}

// AppendGet appends xs to every focused slice and also returns the
// updated focus values, concatenated in visitation order.
func AppendGet[S, E any](o optics.ReadWriter[S, []E], xs []E, source S) (S, []E) {
	var collected []E
	updated := o.Modify(source, func(focus []E) []E {
		result := make([]E, 0, len(focus)+len(xs))
		result = append(result, focus...)
		result = append(result, xs...)
		collected = append(collected, result...)
		return result
	})
	return updated, collected
}
