package grid

import (
	"fmt"
	"strings"
)

// Breakpoint is a named viewport-width threshold. Breakpoints are ordered and
// a class declared at one breakpoint applies to every wider breakpoint until
// it is overridden.
type Breakpoint int

const (
	XS Breakpoint = iota // base breakpoint, no class infix
	SM
	MD
	LG
	XL
)

// NumBreakpoints is the number of breakpoints in the cascade.
const NumBreakpoints = 5

var breakpointNames = [NumBreakpoints]string{"xs", "sm", "md", "lg", "xl"}

// Breakpoints returns all breakpoints in cascade order (xs first).
func Breakpoints() []Breakpoint {
	return []Breakpoint{XS, SM, MD, LG, XL}
}

// String returns the lowercase breakpoint name ("xs", "sm", ...).
func (b Breakpoint) String() string {
	if b < XS || b > XL {
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
	return breakpointNames[b]
}

// Infix returns the class-name infix for the breakpoint. The base breakpoint
// has none, so "col" + Infix + "-6" yields "col-6" at xs and "col-md-6" at md.
func (b Breakpoint) Infix() string {
	if b == XS {
		return ""
	}
	return "-" + b.String()
}

// Suffix returns the capitalised name used in attribute keys ("Xs", "Sm", ...).
func (b Breakpoint) Suffix() string {
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Prev returns the breakpoint to the left of b. The second result is false for xs.
func (b Breakpoint) Prev() (Breakpoint, bool) {
	if b <= XS {
		return XS, false
	}
	return b - 1, true
}

// ParseBreakpoint parses a breakpoint name. "all" is accepted as an alias for xs,
// matching the attribute naming of the column block.
func ParseBreakpoint(s string) (Breakpoint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xs", "all":
		return XS, nil
	case "sm":
		return SM, nil
	case "md":
		return MD, nil
	case "lg":
		return LG, nil
	case "xl":
		return XL, nil
	}
	return XS, fmt.Errorf("unknown breakpoint %q", s)
}

// Range describes the viewport widths a breakpoint governs.
type Range struct {
	Breakpoint Breakpoint
	Label      string
	MinWidth   int // inclusive, in CSS pixels
	MaxWidth   int // inclusive; 0 means unbounded
}

// Ranges is the breakpoint table. It is the single source of truth for pixel
// thresholds and labels.
var Ranges = [NumBreakpoints]Range{
	{Breakpoint: XS, Label: "Extra Small Viewports", MinWidth: 0, MaxWidth: 575},
	{Breakpoint: SM, Label: "Small Viewports", MinWidth: 576, MaxWidth: 767},
	{Breakpoint: MD, Label: "Medium Viewports", MinWidth: 768, MaxWidth: 991},
	{Breakpoint: LG, Label: "Large Viewports", MinWidth: 992, MaxWidth: 1199},
	{Breakpoint: XL, Label: "Extra Large Viewports", MinWidth: 1200},
}

// RangeOf returns the table entry for b.
func RangeOf(b Breakpoint) Range {
	return Ranges[b]
}

// Unbounded reports whether the range has no upper limit.
func (r Range) Unbounded() bool {
	return r.MaxWidth == 0
}

// Help returns the sentence shown under a breakpoint panel, e.g.
// "Will apply from 576px to 767px".
func (r Range) Help() string {
	if r.Unbounded() {
		return fmt.Sprintf("Will apply from %dpx and up", r.MinWidth)
	}
	return fmt.Sprintf("Will apply from %dpx to %dpx", r.MinWidth, r.MaxWidth)
}

// Span returns a compact width description ("576-767px", "1200px+").
func (r Range) Span() string {
	if r.Unbounded() {
		return fmt.Sprintf("%dpx+", r.MinWidth)
	}
	return fmt.Sprintf("%d-%dpx", r.MinWidth, r.MaxWidth)
}

// ForWidth returns the breakpoint active at the given viewport width.
func ForWidth(px int) Breakpoint {
	active := XS
	for _, r := range Ranges {
		if px >= r.MinWidth {
			active = r.Breakpoint
		}
	}
	return active
}
