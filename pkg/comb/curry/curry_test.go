package curry

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestCurry2_MatchesDirectCall(t *testing.T) {
	t.Parallel()
	concat := func(a, b string) string { return a + b }
	qt.Assert(t, qt.Equals(Curry2(concat)("foo")("bar"), concat("foo", "bar")))
}

func TestCurry3_MatchesDirectCall(t *testing.T) {
	t.Parallel()
	f := func(a, b, c int) int { return a*100 + b*10 + c }
	qt.Assert(t, qt.Equals(Curry3(f)(1)(2)(3), f(1, 2, 3)))
}

func TestCurry4_MatchesDirectCall(t *testing.T) {
	t.Parallel()
	f := func(a, b, c, d int) int { return a*1000 + b*100 + c*10 + d }
	qt.Assert(t, qt.Equals(Curry4(f)(1)(2)(3)(4), f(1, 2, 3, 4)))
}

func TestCurry5_MatchesDirectCall(t *testing.T) {
	t.Parallel()
	f := func(a, b, c, d, e int) int { return a*10000 + b*1000 + c*100 + d*10 + e }
	qt.Assert(t, qt.Equals(Curry5(f)(1)(2)(3)(4)(5), f(1, 2, 3, 4, 5)))
}

func TestCurry2_MixedParameterTypes(t *testing.T) {
	t.Parallel()
	repeat := func(s string, n int) int { return len(s) * n }
	withPrefix := Curry2(repeat)("ab")
	qt.Assert(t, qt.Equals(withPrefix(3), 6))
	qt.Assert(t, qt.Equals(withPrefix(5), 10))
}

func TestCurry_PartialStageIsReusable(t *testing.T) {
	t.Parallel()
	add := func(a, b int) int { return a + b }
	incr := Curry2(add)(1)
	qt.Assert(t, qt.Equals(incr(1), 2))
	qt.Assert(t, qt.Equals(incr(10), 11))
}

func TestUncurry2_InvertsCurry2(t *testing.T) {
	t.Parallel()
	f := func(a, b int) int { return a - b }
	qt.Assert(t, qt.Equals(Uncurry2(Curry2(f))(7, 2), f(7, 2)))
}

func TestUncurry3_InvertsCurry3(t *testing.T) {
	t.Parallel()
	f := func(a, b, c int) int { return a * b * c }
	qt.Assert(t, qt.Equals(Uncurry3(Curry3(f))(2, 3, 4), f(2, 3, 4)))
}

func TestUncurry4_InvertsCurry4(t *testing.T) {
	t.Parallel()
	f := func(a, b, c, d string) string { return a + b + c + d }
	qt.Assert(t, qt.Equals(Uncurry4(Curry4(f))("a", "b", "c", "d"), "abcd"))
}

func TestUncurry5_InvertsCurry5(t *testing.T) {
	t.Parallel()
	f := func(a, b, c, d, e int) int { return a + b + c + d + e }
	qt.Assert(t, qt.Equals(Uncurry5(Curry5(f))(1, 2, 3, 4, 5), 15))
}
