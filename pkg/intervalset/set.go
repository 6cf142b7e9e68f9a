// Package intervalset maintains an ordered collection of disjoint
// intervals. Inserts merge contiguous intervals, removes split the
// members they overlap, so the set is always in normal form: sorted,
// non-empty, pairwise non-contiguous members.
package intervalset

import (
	"sort"
	"strings"

	"github.com/alere/intervals/pkg/interval"
)

// Set is an ordered set of disjoint intervals over T. The zero value
// is an empty set ready for use. Set is not safe for concurrent use.
type Set[T interval.Point[T]] struct {
	intervals []interval.Interval[T]
}

// New builds a set from the given intervals, merging as needed.
func New[T interval.Point[T]](intervals ...interval.Interval[T]) *Set[T] {
	s := &Set[T]{}
	for _, iv := range intervals {
		s.Insert(iv)
	}
	return s
}

// Insert adds an interval to the set, merging it with any member it is
// contiguous with. Inserting an empty interval is a no-op.
func (s *Set[T]) Insert(iv interval.Interval[T]) {
	if iv.IsEmpty() {
		return
	}
	s.intervals = append(s.intervals, iv)
	sort.Slice(s.intervals, func(i, j int) bool {
		c, ok := s.intervals[i].LowerBound().Compare(s.intervals[j].LowerBound())
		return ok && c < 0
	})
	merged := s.intervals[:1]
	for _, next := range s.intervals[1:] {
		last := merged[len(merged)-1]
		if u, ok := last.Union(next); ok {
			merged[len(merged)-1] = u
			continue
		}
		merged = append(merged, next)
	}
	s.intervals = merged
}

// Remove subtracts an interval from every member, splitting members
// that strictly contain it.
func (s *Set[T]) Remove(iv interval.Interval[T]) {
	if iv.IsEmpty() || len(s.intervals) == 0 {
		return
	}
	kept := make([]interval.Interval[T], 0, len(s.intervals)+1)
	for _, member := range s.intervals {
		for _, frag := range member.Difference(iv).Fragments() {
			if !frag.IsEmpty() {
				kept = append(kept, frag)
			}
		}
	}
	s.intervals = kept
}

// Contains reports whether any member contains x.
func (s *Set[T]) Contains(x T) bool {
	for _, member := range s.intervals {
		if member.Contains(x) {
			return true
		}
	}
	return false
}

// ContainsInterval reports whether a single member contains the whole
// of iv. Members are never contiguous, so an interval spanning two
// members is not contained even if every one of its points is.
func (s *Set[T]) ContainsInterval(iv interval.Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	for _, member := range s.intervals {
		if member.ContainsInterval(iv) {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s *Set[T]) Len() int { return len(s.intervals) }

// IsEmpty reports whether the set has no members.
func (s *Set[T]) IsEmpty() bool { return len(s.intervals) == 0 }

// Intervals returns the members in order as a fresh slice.
func (s *Set[T]) Intervals() []interval.Interval[T] {
	out := make([]interval.Interval[T], len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Extent returns the convex hull of all members, the empty interval
// for an empty set.
func (s *Set[T]) Extent() interval.Interval[T] {
	extent := interval.Empty[T]()
	for _, member := range s.intervals {
		extent = extent.ConvexHull(member)
	}
	return extent
}

// Equivalent reports whether both sets denote the same points.
func (s *Set[T]) Equivalent(other *Set[T]) bool {
	if len(s.intervals) != len(other.intervals) {
		return false
	}
	for i, member := range s.intervals {
		if !member.Equivalent(other.intervals[i]) {
			return false
		}
	}
	return true
}

// String renders the members in order: `{[1, 10), [20, 30)}`.
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, member := range s.intervals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(member.String())
	}
	b.WriteByte('}')
	return b.String()
}
