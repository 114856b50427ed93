package functional

import "testing"

func TestLazy(t *testing.T) {
	t.Run("Get computes the value once", func(t *testing.T) {
		calls := 0
		l := NewLazy(func() int {
			calls++
			return 42
		})
		if l.IsEvaluated() {
			t.Error("should not be evaluated before Get")
		}
		if l.Get() != 42 || l.Get() != 42 {
			t.Error("unexpected value")
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
		if !l.IsEvaluated() {
			t.Error("should be evaluated after Get")
		}
	})

	t.Run("MapLazy defers the function", func(t *testing.T) {
		l := NewLazy(func() int { return 21 })
		mapped := MapLazy(l, func(x int) int { return x * 2 })
		if l.IsEvaluated() {
			t.Error("mapping should not force the source")
		}
		if mapped.Get() != 42 {
			t.Error("unexpected value")
		}
		if !l.IsEvaluated() {
			t.Error("forcing the result forces the source")
		}
	})
}

func TestThunk(t *testing.T) {
	t.Run("Force evaluates every time", func(t *testing.T) {
		calls := 0
		th := Thunk[int](func() int {
			calls++
			return 7
		})
		th.Force()
		th.Force()
		if calls != 2 {
			t.Errorf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("Memoize evaluates once", func(t *testing.T) {
		calls := 0
		th := Thunk[int](func() int {
			calls++
			return 7
		})
		l := th.Memoize()
		if l.Get() != 7 || l.Get() != 7 {
			t.Error("unexpected value")
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})
}
