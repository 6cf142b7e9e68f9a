// Package ipinterval adapts IP addresses to the interval algebra and
// converts between intervals, address ranges and routing-table
// prefixes.
package ipinterval

import (
	"fmt"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"go4.org/netipx"

	"github.com/alere/intervals/pkg/interval"
)

// Addr makes netip.Addr usable as an interval point. Addresses are
// discrete: 10.0.0.1 and 10.0.0.3 have exactly one address between
// them, so (10.0.0.1, 10.0.0.2) is empty.
type Addr netip.Addr

func (v Addr) Compare(o Addr) (int, bool) {
	a, b := netip.Addr(v), netip.Addr(o)
	if !a.IsValid() || !b.IsValid() {
		return 0, false
	}
	return a.Compare(b), true
}

func (v Addr) NothingBetween(o Addr) bool {
	return netip.Addr(v).Next() == netip.Addr(o)
}

func (v Addr) String() string { return netip.Addr(v).String() }

// MustAddr parses an address for use as a point, panicking on bad
// input. Intended for tests and static tables.
func MustAddr(s string) Addr {
	return Addr(netip.MustParseAddr(s))
}

// FromIPRange converts an inclusive address range to the closed
// interval covering the same addresses.
func FromIPRange(r netipx.IPRange) interval.Interval[Addr] {
	return interval.ClosedClosed(Addr(r.From()), Addr(r.To()))
}

// ParseRange parses a range in from-to notation, e.g.
// "10.0.0.10-10.0.0.20", into an interval.
func ParseRange(s string) (interval.Interval[Addr], error) {
	r, err := netipx.ParseIPRange(s)
	if err != nil {
		return interval.Empty[Addr](), fmt.Errorf("ip range %s is invalid: %w", s, err)
	}
	return FromIPRange(r), nil
}

// ToIPRange converts an interval back to an inclusive address range,
// normalizing open bounds onto the adjacent address. The second return
// is false for empty or unbounded intervals.
func ToIPRange(iv interval.Interval[Addr]) (netipx.IPRange, bool) {
	if iv.IsEmpty() || iv.LowerUnbounded() || iv.UpperUnbounded() {
		return netipx.IPRange{}, false
	}
	lo, _ := iv.Lower()
	from := netip.Addr(lo)
	if !iv.LowerInclusive() {
		from = from.Next()
	}
	up, _ := iv.Upper()
	to := netip.Addr(up)
	if !iv.UpperInclusive() {
		to = to.Prev()
	}
	r := netipx.IPRangeFrom(from, to)
	return r, r.IsValid()
}

// Prefixes returns the minimal set of CIDR prefixes covering exactly
// the addresses in the interval.
func Prefixes(iv interval.Interval[Addr]) ([]netip.Prefix, error) {
	r, ok := ToIPRange(iv)
	if !ok {
		return nil, fmt.Errorf("interval %s is not a valid ip range", iv.String())
	}
	return r.Prefixes(), nil
}

// Routes expands the interval into labelled routing-table routes, one
// per covering prefix.
func Routes(iv interval.Interval[Addr], l map[string]string) (table.Routes, error) {
	prefixes, err := Prefixes(iv)
	if err != nil {
		return nil, err
	}
	var routes table.Routes
	for _, prefix := range prefixes {
		routes = append(routes, table.NewRoute(prefix, l, map[string]any{}))
	}
	return routes, nil
}
