// Package optics provides composable generic accessors for reading,
// replacing, and transforming parts of slice-shaped data.
//
// Three capability levels exist, each a strict superset of the one below:
// a Getter may only read, a Lens reads and writes exactly one focus, a
// Traversal reads and writes zero or more foci in encounter order. A Lens
// widens to a Getter or a Traversal, and a Traversal widens to a Getter;
// the reverse conversions do not exist.
package optics

// Reader is the read capability common to every optic: it lists the
// focused values of a structure in encounter order.
type Reader[S, A any] interface {
	Targets(source S) []A
}

// Modifier is the write capability shared by Lens and Traversal.
type Modifier[S, A any] interface {
	Modify(source S, fn func(A) A) S
}

// ReadWriter combines the read and write capabilities.
type ReadWriter[S, A any] interface {
	Reader[S, A]
	Modifier[S, A]
}

// Getter is a view-only accessor deriving a value from a structure.
type Getter[S, A any] struct {
	view func(S) A
}

// NewGetter creates a getter from a view function.
func NewGetter[S, A any](view func(S) A) Getter[S, A] {
	return Getter[S, A]{view: view}
}

// Get returns the derived value.
func (g Getter[S, A]) Get(source S) A {
	return g.view(source)
}

// Targets returns the single derived value.
func (g Getter[S, A]) Targets(source S) []A {
	return []A{g.view(source)}
}

// Lens provides read and write access to exactly one sub-value of an
// immutable structure.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify applies a function to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// Targets returns the single focused value.
func (l Lens[S, A]) Targets(source S) []A {
	return []A{l.get(source)}
}

// Getter widens the lens to its read-only capability.
func (l Lens[S, A]) Getter() Getter[S, A] {
	return Getter[S, A]{view: l.get}
}

// Traversal widens the lens to a single-focus traversal.
func (l Lens[S, A]) Traversal() Traversal[S, A] {
	return Traversal[S, A]{
		modify:  l.Modify,
		targets: l.Targets,
	}
}

// Traversal provides read and write access to zero or more sub-values,
// visited left to right. Replacement values are combined in visitation
// order.
type Traversal[S, A any] struct {
	modify  func(S, func(A) A) S
	targets func(S) []A
}

// NewTraversal creates a traversal from modify and targets functions.
// Both must visit foci in the same left-to-right order.
func NewTraversal[S, A any](modify func(S, func(A) A) S, targets func(S) []A) Traversal[S, A] {
	return Traversal[S, A]{modify: modify, targets: targets}
}

// Modify applies a function to every focused value.
func (t Traversal[S, A]) Modify(source S, fn func(A) A) S {
	return t.modify(source, fn)
}

// Set replaces every focused value.
func (t Traversal[S, A]) Set(source S, value A) S {
	return t.modify(source, func(A) A { return value })
}

// Targets returns the focused values in visitation order.
func (t Traversal[S, A]) Targets(source S) []A {
	return t.targets(source)
}

// Getter widens the traversal to a read-only accessor over its target
// list.
func (t Traversal[S, A]) Getter() Getter[S, []A] {
	return Getter[S, []A]{view: t.targets}
}
