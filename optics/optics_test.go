package optics

import (
	"reflect"
	"strings"
	"testing"

	"github.com/byorgey/lens/functional"
)

func TestGetter(t *testing.T) {
	length := NewGetter(func(s string) int { return len(s) })

	t.Run("Get returns derived value", func(t *testing.T) {
		if got := length.Get("hello"); got != 5 {
			t.Errorf("expected 5, got %d", got)
		}
	})

	t.Run("Targets returns single value", func(t *testing.T) {
		if got := length.Targets("hello"); !reflect.DeepEqual(got, []int{5}) {
			t.Errorf("unexpected targets %v", got)
		}
	})

	t.Run("ComposeGetter chains views", func(t *testing.T) {
		double := NewGetter(func(n int) int { return n * 2 })
		if got := ComposeGetter(length, double).Get("hello"); got != 10 {
			t.Errorf("expected 10, got %d", got)
		}
	})
}

func TestLens(t *testing.T) {
	first := PairFirst[int, string]()

	t.Run("Get retrieves the focus", func(t *testing.T) {
		if got := first.Get(functional.NewPair(1, "a")); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
	})

	t.Run("Set replaces the focus", func(t *testing.T) {
		got := first.Set(functional.NewPair(1, "a"), 9)
		if got.First != 9 || got.Second != "a" {
			t.Errorf("unexpected pair %v", got)
		}
	})

	t.Run("Modify applies a function", func(t *testing.T) {
		got := first.Modify(functional.NewPair(3, "a"), func(x int) int { return x * x })
		if got.First != 9 {
			t.Errorf("expected 9, got %d", got.First)
		}
	})

	t.Run("Compose focuses deeper", func(t *testing.T) {
		outer := PairFirst[functional.Pair[int, string], bool]()
		composed := Compose(outer, PairFirst[int, string]())
		p := functional.NewPair(functional.NewPair(1, "a"), true)
		if got := composed.Get(p); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
		updated := composed.Set(p, 7)
		if updated.First.First != 7 || updated.First.Second != "a" || !updated.Second {
			t.Errorf("unexpected result %v", updated)
		}
	})

	t.Run("Identity views and replaces the whole", func(t *testing.T) {
		id := Identity[int]()
		if id.Get(3) != 3 || id.Set(3, 4) != 4 {
			t.Error("unexpected identity behavior")
		}
	})
}

func TestCapabilityWidening(t *testing.T) {
	t.Run("Lens widens to Getter", func(t *testing.T) {
		g := First[int]().Getter()
		if got := g.Get([]int{4, 5}); got != 4 {
			t.Errorf("expected 4, got %d", got)
		}
	})

	t.Run("Lens widens to single-focus Traversal", func(t *testing.T) {
		tr := Last[int]().Traversal()
		if got := tr.Targets([]int{4, 5}); !reflect.DeepEqual(got, []int{5}) {
			t.Errorf("unexpected targets %v", got)
		}
		got := tr.Modify([]int{4, 5}, func(x int) int { return x + 1 })
		if !reflect.DeepEqual(got, []int{4, 6}) {
			t.Errorf("unexpected result %v", got)
		}
	})

	t.Run("Traversal widens to Getter over its targets", func(t *testing.T) {
		g := Both[int]().Getter()
		got := g.Get(functional.NewPair(1, 2))
		if !reflect.DeepEqual(got, []int{1, 2}) {
			t.Errorf("unexpected view %v", got)
		}
	})

	t.Run("every optic satisfies Reader", func(t *testing.T) {
		var _ Reader[[]int, int] = First[int]()
		var _ Reader[[]int, int] = First[int]().Getter()
		var _ Reader[[]int, int] = Elements[int]()
		var _ Reader[functional.Pair[int, int], int] = Both[int]()
	})

	t.Run("writable optics satisfy ReadWriter", func(t *testing.T) {
		var _ ReadWriter[[]int, int] = First[int]()
		var _ ReadWriter[[]int, int] = Elements[int]().Plain()
		var _ ReadWriter[functional.Pair[int, int], int] = Both[int]()
	})
}

func TestTraversal(t *testing.T) {
	t.Run("Both visits first then second", func(t *testing.T) {
		got := Both[string]().Targets(functional.NewPair("a", "b"))
		if !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Errorf("unexpected targets %v", got)
		}
	})

	t.Run("Set replaces every focus", func(t *testing.T) {
		got := Both[int]().Set(functional.NewPair(1, 2), 0)
		if got.First != 0 || got.Second != 0 {
			t.Errorf("unexpected result %v", got)
		}
	})

	t.Run("ComposeLensTraversal reaches inner foci", func(t *testing.T) {
		tr := ComposeLensTraversal(Rest[int](), Elements[int]().Plain())
		got := tr.Modify([]int{1, 2, 3}, func(x int) int { return x * 10 })
		if !reflect.DeepEqual(got, []int{1, 20, 30}) {
			t.Errorf("unexpected result %v", got)
		}
		if !reflect.DeepEqual(tr.Targets([]int{1, 2, 3}), []int{2, 3}) {
			t.Error("unexpected targets")
		}
	})

	t.Run("ComposeTraversal preserves encounter order", func(t *testing.T) {
		inner := Both[string]()
		outer := Both[functional.Pair[string, string]]()
		tr := ComposeTraversal(outer, inner)
		p := functional.NewPair(
			functional.NewPair("a", "b"),
			functional.NewPair("c", "d"),
		)
		got := tr.Targets(p)
		if !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
			t.Errorf("unexpected order %v", got)
		}
		updated := tr.Modify(p, strings.ToUpper)
		if updated.First.First != "A" || updated.Second.Second != "D" {
			t.Errorf("unexpected result %v", updated)
		}
	})

	t.Run("ComposeTraversalLens focuses a lens under each focus", func(t *testing.T) {
		tr := ComposeTraversalLens(Both[[]int](), First[int]())
		p := functional.NewPair([]int{1, 2}, []int{3, 4})
		if !reflect.DeepEqual(tr.Targets(p), []int{1, 3}) {
			t.Error("unexpected targets")
		}
		updated := tr.Modify(p, func(x int) int { return -x })
		if updated.First[0] != -1 || updated.Second[0] != -3 {
			t.Errorf("unexpected result %v", updated)
		}
	})
}
