// Package interval provides a generic algebra over one-dimensional
// ranges of an orderable point type.
//
// An Interval is a pair of oriented Bounds and covers all nine
// classical shapes:
//
//	[A,B]  ClosedClosed     (A,B]  OpenClosed
//	[A,B)  ClosedOpen       (A,B)  OpenOpen
//	(,B]   UnboundedClosed  (,B)   UnboundedOpen
//	[A,)   ClosedUnbounded  (A,)   OpenUnbounded
//	(,)    DoublyUnbounded
//
// Construction never fails: a lower bound above the upper bound simply
// denotes an empty interval, and emptiness is derived, never stored.
// Whether two representations denote the same set depends on the point
// type's adjacency: on integers [1,3] and [1,4) are equivalent, on
// floats they are not.
package interval

import (
	"fmt"
	"strings"
)

// Interval is a single convex range, represented as a pair of bounds.
// The zero value is empty. Intervals are immutable values; every
// operation reads its operands and returns a new value.
type Interval[T Point[T]] struct {
	lower Bound[T]
	upper Bound[T]
}

// New builds an interval from explicit bounds. No validation is
// performed; lower above upper denotes an empty interval.
func New[T Point[T]](lower, upper Bound[T]) Interval[T] {
	return Interval[T]{lower: lower, upper: upper}
}

// ClosedOpen returns `[lower, upper)`.
func ClosedOpen[T Point[T]](lower, upper T) Interval[T] {
	return Interval[T]{lower: LeftOf(lower), upper: LeftOf(upper)}
}

// ClosedClosed returns `[lower, upper]`.
func ClosedClosed[T Point[T]](lower, upper T) Interval[T] {
	return Interval[T]{lower: LeftOf(lower), upper: RightOf(upper)}
}

// OpenOpen returns `(lower, upper)`.
func OpenOpen[T Point[T]](lower, upper T) Interval[T] {
	return Interval[T]{lower: RightOf(lower), upper: LeftOf(upper)}
}

// OpenClosed returns `(lower, upper]`.
func OpenClosed[T Point[T]](lower, upper T) Interval[T] {
	return Interval[T]{lower: RightOf(lower), upper: RightOf(upper)}
}

// UnboundedClosed returns `(, upper]`.
func UnboundedClosed[T Point[T]](upper T) Interval[T] {
	return Interval[T]{lower: LeftUnbounded[T](), upper: RightOf(upper)}
}

// UnboundedOpen returns `(, upper)`.
func UnboundedOpen[T Point[T]](upper T) Interval[T] {
	return Interval[T]{lower: LeftUnbounded[T](), upper: LeftOf(upper)}
}

// ClosedUnbounded returns `[lower,)`.
func ClosedUnbounded[T Point[T]](lower T) Interval[T] {
	return Interval[T]{lower: LeftOf(lower), upper: RightUnbounded[T]()}
}

// OpenUnbounded returns `(lower,)`.
func OpenUnbounded[T Point[T]](lower T) Interval[T] {
	return Interval[T]{lower: RightOf(lower), upper: RightUnbounded[T]()}
}

// DoublyUnbounded returns `(,)`, the interval containing every value.
func DoublyUnbounded[T Point[T]]() Interval[T] {
	return Interval[T]{lower: LeftUnbounded[T](), upper: RightUnbounded[T]()}
}

// Empty returns the canonical empty interval. There are many other
// representations of the empty set; they are all equivalent.
func Empty[T Point[T]]() Interval[T] {
	return Interval[T]{lower: RightUnbounded[T](), upper: LeftUnbounded[T]()}
}

// Single returns `[v, v]`, the interval containing exactly v.
func Single[T Point[T]](v T) Interval[T] {
	return ClosedClosed(v, v)
}

// LowerBound returns the lower bound.
func (iv Interval[T]) LowerBound() Bound[T] { return iv.lower }

// UpperBound returns the upper bound.
func (iv Interval[T]) UpperBound() Bound[T] { return iv.upper }

// Lower returns the lower anchor point, or ok=false when the lower
// bound is unbounded. For an empty interval it returns whatever the
// interval was built with; the value is irrelevant.
func (iv Interval[T]) Lower() (T, bool) { return iv.lower.Value() }

// Upper returns the upper anchor point, or ok=false when the upper
// bound is unbounded.
func (iv Interval[T]) Upper() (T, bool) { return iv.upper.Value() }

// LowerInclusive reports whether the lower anchor itself belongs to
// the interval.
func (iv Interval[T]) LowerInclusive() bool { return iv.lower.kind == leftOf }

// LowerUnbounded reports whether the interval extends below every value.
func (iv Interval[T]) LowerUnbounded() bool { return iv.lower.kind == leftUnbounded }

// UpperInclusive reports whether the upper anchor itself belongs to
// the interval.
func (iv Interval[T]) UpperInclusive() bool { return iv.upper.kind == rightOf }

// UpperUnbounded reports whether the interval extends above every value.
func (iv Interval[T]) UpperUnbounded() bool { return iv.upper.kind == rightUnbounded }

// IsEmpty reports whether the interval contains no value. An interval
// whose bounds cannot be ordered (a NaN anchor) is empty.
func (iv Interval[T]) IsEmpty() bool {
	c, ok := iv.upper.Compare(iv.lower)
	return !ok || c <= 0
}

// Contains reports whether x lies inside the interval.
func (iv Interval[T]) Contains(x T) bool {
	return iv.lower.LeftOf(x) && iv.upper.RightOf(x)
}

// ContainsInterval reports whether iv contains every value of other.
// An empty other is contained in anything.
func (iv Interval[T]) ContainsInterval(other Interval[T]) bool {
	if other.IsEmpty() {
		return true
	}
	cl, okl := iv.lower.Compare(other.lower)
	cu, oku := other.upper.Compare(iv.upper)
	return okl && oku && cl <= 0 && cu <= 0
}

// IsSingle reports whether the interval was built as `[a, a]`. This is
// a structural check on the bound shapes: OpenOpen(0, 2) contains
// exactly the integer 1 but is not single.
func (iv Interval[T]) IsSingle() bool {
	if iv.lower.kind != leftOf || iv.upper.kind != rightOf {
		return false
	}
	c, ok := iv.lower.at.Compare(iv.upper.at)
	return ok && c == 0
}

// Equivalent reports whether the two intervals contain the same set of
// values, even when their bounds differ: on integers [1,3] and [1,4)
// are equivalent.
func (iv Interval[T]) Equivalent(other Interval[T]) bool {
	if iv.IsEmpty() {
		return other.IsEmpty()
	}
	if other.IsEmpty() {
		return false
	}
	cl, okl := iv.lower.Compare(other.lower)
	cu, oku := iv.upper.Compare(other.upper)
	return okl && oku && cl == 0 && cu == 0
}

// StrictlyLeftOf reports whether every value in the interval is
// strictly less than x. True for an empty interval.
func (iv Interval[T]) StrictlyLeftOf(x T) bool {
	return iv.IsEmpty() || iv.upper.LeftOf(x)
}

// LeftOf reports whether every value in the interval is less than or
// equal to x. True for an empty interval.
func (iv Interval[T]) LeftOf(x T) bool {
	if iv.IsEmpty() {
		return true
	}
	c, ok := iv.upper.Compare(RightOf(x))
	return ok && c <= 0
}

// StrictlyRightOf reports whether x is strictly less than every value
// in the interval. True for an empty interval.
func (iv Interval[T]) StrictlyRightOf(x T) bool {
	return iv.IsEmpty() || iv.lower.RightOf(x)
}

// RightOf reports whether x is less than or equal to every value in
// the interval. True for an empty interval.
func (iv Interval[T]) RightOf(x T) bool {
	if iv.IsEmpty() {
		return true
	}
	c, ok := iv.lower.Compare(LeftOf(x))
	return ok && c >= 0
}

// StrictlyLeftOfInterval reports whether every value in iv is strictly
// less than every value in other. True when either interval is empty.
func (iv Interval[T]) StrictlyLeftOfInterval(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	c, ok := iv.upper.Compare(other.lower)
	return ok && c <= 0
}

// ConvexHull returns the smallest interval containing the values of
// both intervals.
func (iv Interval[T]) ConvexHull(other Interval[T]) Interval[T] {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	return Interval[T]{
		lower: iv.lower.Min(other.lower),
		upper: iv.upper.Max(other.upper),
	}
}

// Intersection returns the values common to both intervals, possibly
// empty.
func (iv Interval[T]) Intersection(other Interval[T]) Interval[T] {
	return Interval[T]{
		lower: iv.lower.Max(other.lower),
		upper: iv.upper.Min(other.upper),
	}
}

// Intersects reports whether the two intervals have at least one value
// in common.
func (iv Interval[T]) Intersects(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	cl, okl := iv.lower.Compare(other.upper)
	cu, oku := other.lower.Compare(iv.upper)
	return okl && oku && cl < 0 && cu < 0
}

// Contiguous reports whether the two intervals touch or overlap, with
// no value between them. True when either interval is empty.
func (iv Interval[T]) Contiguous(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	cl, okl := iv.lower.Compare(other.upper)
	cu, oku := other.lower.Compare(iv.upper)
	return okl && oku && cl <= 0 && cu <= 0
}

// Union returns the single interval covering both operands when they
// are contiguous. ok=false means a genuine gap separates them and no
// single convex interval represents the union.
func (iv Interval[T]) Union(other Interval[T]) (Interval[T], bool) {
	if !iv.Contiguous(other) {
		return Empty[T](), false
	}
	return iv.ConvexHull(other), true
}

// Between returns the largest interval lying strictly between the two
// intervals. It is empty when either operand is empty, and empty
// automatically when the operands touch or overlap.
func (iv Interval[T]) Between(other Interval[T]) Interval[T] {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty[T]()
	}
	return Interval[T]{
		lower: iv.upper.Min(other.upper),
		upper: iv.lower.Max(other.lower),
	}
}

// Difference returns the values of iv that are not in other. The
// result holds up to two fragments, since removing the middle of an
// interval splits it.
func (iv Interval[T]) Difference(other Interval[T]) MultiInterval[T] {
	if iv.IsEmpty() || other.IsEmpty() {
		return One(iv)
	}
	return fromTwo(
		Interval[T]{lower: iv.lower, upper: other.lower.Min(iv.upper)},
		Interval[T]{lower: other.upper.Max(iv.lower), upper: iv.upper},
	)
}

// SymmetricDifference returns the values that are in exactly one of
// the two intervals.
func (iv Interval[T]) SymmetricDifference(other Interval[T]) MultiInterval[T] {
	if iv.IsEmpty() || other.IsEmpty() {
		return fromTwo(iv, other)
	}
	return fromTwo(
		Interval[T]{
			lower: iv.lower.Min(other.lower),
			upper: iv.lower.Max(other.lower).Min(iv.upper.Min(other.upper)),
		},
		Interval[T]{
			lower: iv.upper.Min(other.upper).Max(iv.lower.Max(other.lower)),
			upper: iv.upper.Max(other.upper),
		},
	)
}

// String renders the interval in bracket notation: `[`/`]` closed,
// `(`/`)` open, an empty slot for an unbounded side. A closed-open
// interval from 1 to 4 renders as `[1, 4)`, the doubly unbounded
// interval as `(,)`, and any empty interval as `empty`.
func (iv Interval[T]) String() string {
	if iv.IsEmpty() {
		return "empty"
	}
	var sb strings.Builder
	switch iv.lower.kind {
	case leftUnbounded:
		sb.WriteString("(")
	case leftOf:
		fmt.Fprintf(&sb, "[%v", iv.lower.at)
	case rightOf:
		fmt.Fprintf(&sb, "(%v", iv.lower.at)
	}
	switch iv.upper.kind {
	case rightUnbounded:
		sb.WriteString(",)")
	case leftOf:
		fmt.Fprintf(&sb, ", %v)", iv.upper.at)
	case rightOf:
		fmt.Fprintf(&sb, ", %v]", iv.upper.at)
	}
	return sb.String()
}

// GoString renders the literal bound variants, e.g.
// `(LeftOf(1),RightOf(4))`, so that `%#v` distinguishes
// representations the bracket notation collapses.
func (iv Interval[T]) GoString() string {
	if iv.IsEmpty() {
		return "empty"
	}
	return "(" + iv.lower.debug() + "," + iv.upper.debug() + ")"
}
