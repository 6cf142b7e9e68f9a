package interval

import (
	"cmp"
	"time"
)

// Point is the capability required of interval bound values.
//
// Compare orders the receiver against other and returns ok=false when
// the two values cannot be ordered (for instance NaN floats). An
// interval anchored at an unorderable value is reported empty by every
// predicate that depends on ordering; nothing panics.
//
// NothingBetween reports whether no representable value of the type
// lies strictly between the receiver and other. It is only ever
// invoked when the receiver compares strictly less than other.
type Point[T any] interface {
	Compare(other T) (int, bool)
	NothingBetween(other T) bool
}

// Built-in point types for the machine integer widths. Two integers
// are adjacent when they differ by one; the receiver is guaranteed to
// be the smaller one, so the increment cannot overflow.
type (
	Int    int
	Int8   int8
	Int16  int16
	Int32  int32
	Int64  int64
	Uint   uint
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
	Rune   rune
)

func (v Int) Compare(o Int) (int, bool) { return cmp.Compare(v, o), true }
func (v Int) NothingBetween(o Int) bool { return v+1 == o }

func (v Int8) Compare(o Int8) (int, bool) { return cmp.Compare(v, o), true }
func (v Int8) NothingBetween(o Int8) bool { return v+1 == o }

func (v Int16) Compare(o Int16) (int, bool) { return cmp.Compare(v, o), true }
func (v Int16) NothingBetween(o Int16) bool { return v+1 == o }

func (v Int32) Compare(o Int32) (int, bool) { return cmp.Compare(v, o), true }
func (v Int32) NothingBetween(o Int32) bool { return v+1 == o }

func (v Int64) Compare(o Int64) (int, bool) { return cmp.Compare(v, o), true }
func (v Int64) NothingBetween(o Int64) bool { return v+1 == o }

func (v Uint) Compare(o Uint) (int, bool) { return cmp.Compare(v, o), true }
func (v Uint) NothingBetween(o Uint) bool { return v+1 == o }

func (v Uint8) Compare(o Uint8) (int, bool) { return cmp.Compare(v, o), true }
func (v Uint8) NothingBetween(o Uint8) bool { return v+1 == o }

func (v Uint16) Compare(o Uint16) (int, bool) { return cmp.Compare(v, o), true }
func (v Uint16) NothingBetween(o Uint16) bool { return v+1 == o }

func (v Uint32) Compare(o Uint32) (int, bool) { return cmp.Compare(v, o), true }
func (v Uint32) NothingBetween(o Uint32) bool { return v+1 == o }

func (v Uint64) Compare(o Uint64) (int, bool) { return cmp.Compare(v, o), true }
func (v Uint64) NothingBetween(o Uint64) bool { return v+1 == o }

func (v Rune) Compare(o Rune) (int, bool) { return cmp.Compare(v, o), true }
func (v Rune) NothingBetween(o Rune) bool { return v+1 == o }

// Machine epsilons, the distance between 1.0 and the next
// representable float of each width.
const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// Float32 and Float64 treat values closer than the machine epsilon as
// adjacent: an interval like (1.0, 1.0+epsilon32) contains no
// representable float and is reported empty. This is an approximation
// of representability, not of the reals; a caller who wants
// mathematically dense floats defines their own point type whose
// NothingBetween always returns false.
type (
	Float32 float32
	Float64 float64
)

func (v Float32) Compare(o Float32) (int, bool) {
	if v != v || o != o {
		return 0, false
	}
	return cmp.Compare(v, o), true
}
func (v Float32) NothingBetween(o Float32) bool { return o-v <= epsilon32 }

func (v Float64) Compare(o Float64) (int, bool) {
	if v != v || o != o {
		return 0, false
	}
	return cmp.Compare(v, o), true
}
func (v Float64) NothingBetween(o Float64) bool { return o-v <= epsilon64 }

// Time adapts time.Time as an interval point. Timestamps are treated
// as dense: there is always another instant between two distinct ones.
type Time time.Time

func (v Time) Compare(o Time) (int, bool) {
	return time.Time(v).Compare(time.Time(o)), true
}
func (v Time) NothingBetween(o Time) bool { return false }
