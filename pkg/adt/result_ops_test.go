package adt

import (
	"errors"
	"strconv"
	"testing"
)

func TestMap_Success(t *testing.T) {
	t.Parallel()

	r := Success[string, int]("abc")
	mapped := Map(r, func(s string) int { return len(s) })

	if !mapped.IsSuccess() || mapped.Value() != 3 {
		t.Fatalf("expected success with 3, got: success=%v, val=%v", mapped.IsSuccess(), mapped.Value())
	}
}

func TestMap_FailurePassesErrorThrough(t *testing.T) {
	t.Parallel()

	r := Fail[string](7)
	called := false
	mapped := Map(r, func(s string) int {
		called = true
		return len(s)
	})

	if called {
		t.Fatalf("mapping should not run on failures")
	}
	if !mapped.IsFailure() || mapped.Err() != 7 {
		t.Fatalf("expected failure with 7, got: failure=%v, err=%v", mapped.IsFailure(), mapped.Err())
	}
}

func TestMap_Identity(t *testing.T) {
	t.Parallel()

	id := func(v int) int { return v }

	r := Success[int, string](9)
	if !Equal(Map(r, id), r) {
		t.Fatalf("map(id) should be structurally equal to the original")
	}

	f := Fail[int]("boom")
	if !Equal(Map(f, id), f) {
		t.Fatalf("map(id) over a failure should keep the error")
	}
}

func TestMap_Composition(t *testing.T) {
	t.Parallel()

	f := func(v int) int { return v + 1 }
	g := func(v int) string { return strconv.Itoa(v) }

	r := Success[int, string](10)
	lhs := Map(Map(r, f), g)
	rhs := Map(r, func(v int) string { return g(f(v)) })

	if !Equal(lhs, rhs) {
		t.Fatalf("map(f).map(g) should equal map(g∘f): %v vs %v", lhs.Value(), rhs.Value())
	}
	if lhs.Value() != "11" {
		t.Fatalf("expected '11', got: %v", lhs.Value())
	}
}

func TestBind_Success(t *testing.T) {
	t.Parallel()

	r := Success[int, string](2)
	bound := Bind(r, func(v int) Result[int, string] { return Success[int, string](v * 10) })

	if !bound.IsSuccess() || bound.Value() != 20 {
		t.Fatalf("expected success with 20, got: success=%v, val=%v", bound.IsSuccess(), bound.Value())
	}
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()

	calls := 0
	r := Fail[int]("boom")
	bound := Bind(r, func(v int) Result[int, string] {
		calls++
		return Success[int, string](v)
	})

	if calls != 0 {
		t.Fatalf("binder must not run on failures, ran %d times", calls)
	}
	if !bound.IsFailure() || bound.Err() != "boom" {
		t.Fatalf("expected failure 'boom', got: failure=%v, err=%v", bound.IsFailure(), bound.Err())
	}
}

func TestBind_FailureFromBinder(t *testing.T) {
	t.Parallel()

	r := Success[int, string](2)
	bound := Bind(r, func(v int) Result[int, string] { return Fail[int]("denied") })

	if !bound.IsFailure() || bound.Err() != "denied" {
		t.Fatalf("expected failure 'denied', got: failure=%v", bound.IsFailure())
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	double := Success[func(int) int, string](func(v int) int { return v * 2 })
	r := Success[int, string](21)

	applied := Apply(r, double)
	if !applied.IsSuccess() || applied.Value() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v", applied.IsSuccess(), applied.Value())
	}
}

func TestApply_SelfErrorWins(t *testing.T) {
	t.Parallel()

	fnFailure := Fail[func(int) int]("fn failed")
	selfFailure := Fail[int]("self failed")

	// Both operands failed: the value operand is checked first.
	applied := Apply(selfFailure, fnFailure)
	if !applied.IsFailure() || applied.Err() != "self failed" {
		t.Fatalf("expected 'self failed', got: %v", applied.Err())
	}
}

func TestApply_FunctionError(t *testing.T) {
	t.Parallel()

	fnFailure := Fail[func(int) int]("fn failed")
	r := Success[int, string](1)

	applied := Apply(r, fnFailure)
	if !applied.IsFailure() || applied.Err() != "fn failed" {
		t.Fatalf("expected 'fn failed', got: %v", applied.Err())
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	f := Fail[int]("boom")
	mapped := MapError(f, func(e string) int { return len(e) })
	if !mapped.IsFailure() || mapped.Err() != 4 {
		t.Fatalf("expected failure with 4, got: %v", mapped.Err())
	}

	s := Success[int, string](5)
	kept := MapError(s, func(e string) int { return len(e) })
	if !kept.IsSuccess() || kept.Value() != 5 {
		t.Fatalf("expected success with 5, got: %v", kept.Value())
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	// Converting copy between compatible payload types.
	r1 := Success[[]byte, int]([]byte("abc"))
	r2 := Convert(r1,
		func(v []byte) string { return string(v) },
		func(e int) int64 { return int64(e) })

	if !r2.IsSuccess() || r2.Value() != "abc" {
		t.Fatalf("expected success with 'abc', got: %v", r2.Value())
	}

	f1 := Fail[[]byte](7)
	f2 := Convert(f1,
		func(v []byte) string { return string(v) },
		func(e int) int64 { return int64(e) })

	if !f2.IsFailure() || f2.Err() != 7 {
		t.Fatalf("expected failure with 7, got: %v", f2.Err())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()

	seen := 0
	r := Tee(Success[int, string](3), func(v int) { seen = v })
	if seen != 3 || !r.IsSuccess() {
		t.Fatalf("expected callback with 3 and unchanged result, seen=%v", seen)
	}

	seen = 0
	Tee(Fail[int]("e"), func(v int) { seen = v })
	if seen != 0 {
		t.Fatalf("callback should not run on failures")
	}

	var teedErr string
	TeeError(Fail[int]("boom"), func(e string) { teedErr = e })
	if teedErr != "boom" {
		t.Fatalf("expected error callback with 'boom', got: %v", teedErr)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := Finally(Success[int, string](2),
		func(v int) string { return strconv.Itoa(v) },
		func(e string) string { return "error: " + e })
	if got != "2" {
		t.Fatalf("expected '2', got: %v", got)
	}

	got = Finally(Fail[int]("down"),
		func(v int) string { return strconv.Itoa(v) },
		func(e string) string { return "error: " + e })
	if got != "error: down" {
		t.Fatalf("expected 'error: down', got: %v", got)
	}
}

func TestPackUnpack(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	r := Pack(5, nil)
	if !r.IsSuccess() || r.Value() != 5 {
		t.Fatalf("expected success with 5, got: %v", r.Status())
	}

	f := Pack(0, boom)
	if !f.IsFailure() || !errors.Is(f.Err(), boom) {
		t.Fatalf("expected failure wrapping boom, got: %v", f.Status())
	}

	if v, err := Unpack(r); err != nil || v != 5 {
		t.Fatalf("expected (5, nil), got: (%v, %v)", v, err)
	}
	if v, err := Unpack(f); !errors.Is(err, boom) || v != 0 {
		t.Fatalf("expected (0, boom), got: (%v, %v)", v, err)
	}
}

func TestEqualFamily(t *testing.T) {
	t.Parallel()

	if !Equal(Success[int, string](1), Success[int, string](1)) {
		t.Fatalf("identical successes should be equal")
	}
	if Equal(Success[int, string](1), Success[int, string](2)) {
		t.Fatalf("different values should not be equal")
	}
	if Equal(Success[int, string](1), Fail[int]("1")) {
		t.Fatalf("different alternatives should not be equal")
	}
	if !Equal(Fail[int]("e"), Fail[int]("e")) {
		t.Fatalf("identical failures should be equal")
	}

	if !EqualValue(Success[int, string](7), 7) {
		t.Fatalf("success should compare equal to its value")
	}
	if EqualValue(Fail[int]("7"), 7) {
		t.Fatalf("failures never compare equal to a value")
	}

	eq := EqualFunc(Success[[]byte, int]([]byte("a")), Success[[]byte, int]([]byte("a")),
		func(a, b []byte) bool { return string(a) == string(b) },
		func(a, b int) bool { return a == b })
	if !eq {
		t.Fatalf("EqualFunc should use the provided comparators")
	}
}
