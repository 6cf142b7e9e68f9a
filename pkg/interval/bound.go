package interval

import "fmt"

type kind uint8

const (
	leftUnbounded kind = iota
	leftOf
	rightOf
	rightUnbounded
)

// Bound is a one-sided fence post delimiting where an interval starts
// or stops. LeftOf(p) is the fence post immediately at-or-before p: it
// serves as a closed lower bound or an open upper bound. RightOf(p) is
// the fence post immediately at-or-after p: an open lower bound or a
// closed upper bound. The two unbounded kinds sit below and above
// every anchored bound. The zero value is LeftUnbounded.
//
// Bounds are immutable values; every operation returns a new one.
type Bound[T Point[T]] struct {
	kind kind
	at   T
}

// LeftUnbounded returns the bound below every other bound.
func LeftUnbounded[T Point[T]]() Bound[T] { return Bound[T]{kind: leftUnbounded} }

// RightUnbounded returns the bound above every other bound.
func RightUnbounded[T Point[T]]() Bound[T] { return Bound[T]{kind: rightUnbounded} }

// LeftOf returns the fence post immediately at-or-before p.
func LeftOf[T Point[T]](p T) Bound[T] { return Bound[T]{kind: leftOf, at: p} }

// RightOf returns the fence post immediately at-or-after p.
func RightOf[T Point[T]](p T) Bound[T] { return Bound[T]{kind: rightOf, at: p} }

// Value returns the anchor point of the bound, or ok=false for the
// unbounded kinds.
func (b Bound[T]) Value() (T, bool) {
	if b.kind == leftOf || b.kind == rightOf {
		return b.at, true
	}
	var zero T
	return zero, false
}

// Compare orders b against other and returns ok=false when the anchor
// points cannot be ordered. Two bounds compare equal exactly when no
// point distinguishes them, which is weaker than anchor equality: on
// integers RightOf(3) equals LeftOf(4), because nothing can be
// represented between 3 and 4.
func (b Bound[T]) Compare(other Bound[T]) (int, bool) {
	switch {
	case b.kind == leftUnbounded || other.kind == leftUnbounded:
		if b.kind == other.kind {
			return 0, true
		}
		if b.kind == leftUnbounded {
			return -1, true
		}
		return 1, true
	case b.kind == rightUnbounded || other.kind == rightUnbounded:
		if b.kind == other.kind {
			return 0, true
		}
		if b.kind == rightUnbounded {
			return 1, true
		}
		return -1, true
	}
	c, ok := b.at.Compare(other.at)
	if !ok {
		return 0, false
	}
	switch {
	case b.kind == other.kind:
		return c, true
	case b.kind == leftOf:
		// LeftOf(p) vs RightOf(q): at-or-before p never creates a gap
		// when p <= q; above that they collapse iff q and p touch.
		if c <= 0 {
			return -1, true
		}
		if other.at.NothingBetween(b.at) {
			return 0, true
		}
		return 1, true
	default:
		// RightOf(p) vs LeftOf(q)
		if c >= 0 {
			return 1, true
		}
		if b.at.NothingBetween(other.at) {
			return 0, true
		}
		return -1, true
	}
}

// LeftOf reports whether the bound permits x to lie to its right: a
// LeftOf anchor is inclusive, a RightOf anchor is strict.
func (b Bound[T]) LeftOf(x T) bool {
	switch b.kind {
	case leftUnbounded:
		return true
	case leftOf:
		c, ok := b.at.Compare(x)
		return ok && c <= 0
	case rightOf:
		c, ok := b.at.Compare(x)
		return ok && c < 0
	default:
		return false
	}
}

// RightOf reports whether the bound permits x to lie to its left: a
// RightOf anchor is inclusive, a LeftOf anchor is strict.
func (b Bound[T]) RightOf(x T) bool {
	switch b.kind {
	case rightUnbounded:
		return true
	case rightOf:
		c, ok := b.at.Compare(x)
		return ok && c >= 0
	case leftOf:
		c, ok := b.at.Compare(x)
		return ok && c > 0
	default:
		return false
	}
}

// Min returns the smaller of the two bounds, or b when they cannot be
// compared.
func (b Bound[T]) Min(other Bound[T]) Bound[T] {
	if c, ok := b.Compare(other); ok && c > 0 {
		return other
	}
	return b
}

// Max returns the larger of the two bounds, or b when they cannot be
// compared.
func (b Bound[T]) Max(other Bound[T]) Bound[T] {
	if c, ok := b.Compare(other); ok && c < 0 {
		return other
	}
	return b
}

// debug exposes the bound variant and orientation, for diagnosing
// equivalence issues that the bracket rendering hides.
func (b Bound[T]) debug() string {
	switch b.kind {
	case leftUnbounded:
		return "-infinity"
	case rightUnbounded:
		return "+infinity"
	case leftOf:
		return fmt.Sprintf("LeftOf(%v)", b.at)
	default:
		return fmt.Sprintf("RightOf(%v)", b.at)
	}
}
