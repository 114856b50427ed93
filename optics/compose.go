package optics

// Compose creates a lens focusing deeper.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// ComposeGetter creates a getter viewing through both getters in turn.
func ComposeGetter[S, A, B any](outer Getter[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{
		view: func(s S) B {
			return inner.view(outer.view(s))
		},
	}
}

// ComposeTraversal creates a traversal visiting the inner foci of every
// outer focus, left to right.
func ComposeTraversal[S, A, B any](outer Traversal[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return Traversal[S, B]{
		modify: func(s S, fn func(B) B) S {
			return outer.modify(s, func(a A) A {
				return inner.modify(a, fn)
			})
		},
		targets: func(s S) []B {
			var result []B
			for _, a := range outer.targets(s) {
				result = append(result, inner.targets(a)...)
			}
			return result
		},
	}
}

// ComposeLensTraversal creates a traversal through a lens into a
// traversal.
func ComposeLensTraversal[S, A, B any](outer Lens[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return ComposeTraversal(outer.Traversal(), inner)
}

// ComposeTraversalLens creates a traversal through a traversal into a
// lens.
func ComposeTraversalLens[S, A, B any](outer Traversal[S, A], inner Lens[A, B]) Traversal[S, B] {
	return ComposeTraversal(outer, inner.Traversal())
}

// Identity creates an identity lens.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}
