package ops

import "github.com/byorgey/lens/optics"

// Cell is an externally managed mutable holder of a value. The
// operators below only ever perform a single read-modify-write cycle
// against it and assume a single owner; no locking is required.
type Cell[S any] interface {
	// Get reads the current value.
	Get() S

	// Set replaces the value.
	Set(value S)
}

// Var is the basic in-memory Cell.
type Var[S any] struct {
	value S
}

// NewVar creates a Var holding value.
func NewVar[S any](value S) *Var[S] {
	return &Var[S]{value: value}
}

// Get reads the current value.
func (v *Var[S]) Get() S {
	return v.value
}

// Set replaces the value.
func (v *Var[S]) Set(value S) {
	v.value = value
}

// PrependState prepends x to every focused slice of the value held in
// cell, writing the updated value back.
func PrependState[S, E any](o optics.Modifier[S, []E], x E, cell Cell[S]) {
	cell.Set(Prepend(o, x, cell.Get()))
}

// PrependStateGet is PrependState returning the updated focus values,
// concatenated in visitation order.
func PrependStateGet[S, E any](o optics.ReadWriter[S, []E], x E, cell Cell[S]) []E {
	updated, collected := PrependGet(o, x, cell.Get())
	cell.Set(updated)
	return collected
}

// AppendState appends xs to every focused slice of the value held in
// cell, writing the updated value back.
func AppendState[S, E any](o optics.Modifier[S, []E], xs []E, cell Cell[S]) {
	cell.Set(Append(o, xs, cell.Get()))
}

// AppendStateGet is AppendState returning the updated focus values,
// concatenated in visitation order.
func AppendStateGet[S, E any](o optics.ReadWriter[S, []E], xs []E, cell Cell[S]) []E {
	updated, collected := AppendGet(o, xs, cell.Get())
	cell.Set(updated)
	return collected
}
