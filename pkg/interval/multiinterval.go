package interval

// MultiInterval is the result type of the difference-like operations:
// one or two convex fragments. Two fragments are all an operation on
// two convex operands can ever produce. It is a terminal value, meant
// to be consumed by iterating its fragments; no further algebra is
// defined on it.
type MultiInterval[T Point[T]] struct {
	fragments [2]Interval[T]
	n         int
}

// One wraps a single interval.
func One[T Point[T]](iv Interval[T]) MultiInterval[T] {
	return MultiInterval[T]{fragments: [2]Interval[T]{iv}, n: 1}
}

// Two wraps two fragments as-is, without normalization: one or both
// may be empty.
func Two[T Point[T]](first, second Interval[T]) MultiInterval[T] {
	return MultiInterval[T]{fragments: [2]Interval[T]{first, second}, n: 2}
}

// fromTwo collapses two candidate fragments to One unless both are
// non-empty.
func fromTwo[T Point[T]](first, second Interval[T]) MultiInterval[T] {
	switch {
	case first.IsEmpty():
		if second.IsEmpty() {
			return One(first)
		}
		return One(second)
	case second.IsEmpty():
		return One(first)
	default:
		return Two(first, second)
	}
}

// Len returns the number of fragments, 1 or 2 (0 only for the zero
// value).
func (m MultiInterval[T]) Len() int { return m.n }

// At returns the i-th fragment; i must be below Len.
func (m MultiInterval[T]) At(i int) Interval[T] {
	if i >= m.n {
		panic("interval: fragment index out of range")
	}
	return m.fragments[i]
}

// Fragments returns the fragments as a fresh slice.
func (m MultiInterval[T]) Fragments() []Interval[T] {
	out := make([]Interval[T], m.n)
	copy(out, m.fragments[:m.n])
	return out
}

// Equal reports whether the two results have the same shape and
// fragment-wise equivalent intervals. One(x) never equals Two(y, z),
// even when they denote the same set; callers wanting set equality
// normalize first.
func (m MultiInterval[T]) Equal(other MultiInterval[T]) bool {
	if m.n != other.n {
		return false
	}
	for i := 0; i < m.n; i++ {
		if !m.fragments[i].Equivalent(other.fragments[i]) {
			return false
		}
	}
	return true
}

// String renders a single fragment bare and two fragments joined with
// a plus: `([1, 10) + (30, 50])`.
func (m MultiInterval[T]) String() string {
	if m.n == 1 {
		return m.fragments[0].String()
	}
	return "(" + m.fragments[0].String() + " + " + m.fragments[1].String() + ")"
}

// GoString mirrors String using the debug rendering of the fragments.
func (m MultiInterval[T]) GoString() string {
	if m.n == 1 {
		return m.fragments[0].GoString()
	}
	return "(" + m.fragments[0].GoString() + " + " + m.fragments[1].GoString() + ")"
}
