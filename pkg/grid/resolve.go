package grid

import "fmt"

// Effective is the resolved value of a property at one breakpoint.
type Effective struct {
	Token string

	// Explicit is true when the breakpoint itself carries the override.
	Explicit bool

	// From is the breakpoint whose override (or default) produced Token.
	From Breakpoint

	// Default is true when Token is the property default because xs was unset.
	Default bool
}

// Source describes where the value came from: "set", "default" or
// "inherited from sm".
func (e Effective) Source() string {
	switch {
	case e.Explicit:
		return "set"
	case e.Default:
		return "default"
	default:
		return fmt.Sprintf("inherited from %s", e.From)
	}
}

// Resolution is the total map breakpoint → property → effective value, plus
// the visibility state at each breakpoint.
type Resolution struct {
	Kind   *Kind
	Values [NumBreakpoints]map[string]Effective
	Hidden [NumBreakpoints]bool
}

// Value returns the effective value of prop at bp.
func (r Resolution) Value(bp Breakpoint, prop string) (Effective, bool) {
	if bp < XS || bp > XL || r.Values[bp] == nil {
		return Effective{}, false
	}
	e, ok := r.Values[bp][prop]
	return e, ok
}

// Token returns the effective token of prop at bp, or "" when prop is unknown.
func (r Resolution) Token(bp Breakpoint, prop string) string {
	e, _ := r.Value(bp, prop)
	return e.Token
}

// Resolve computes the effective value of every property at every breakpoint.
// Each breakpoint takes its own override when present and otherwise the
// effective value of the breakpoint to its left, whether or not that
// breakpoint is hidden. Visibility is never inherited.
func Resolve(k *Kind, attrs Attributes) Resolution {
	res := Resolution{Kind: k}
	for _, bp := range Breakpoints() {
		res.Values[bp] = make(map[string]Effective, len(k.Properties))
		if k.Visibility {
			res.Hidden[bp] = attrs.Flag(k.VisibilityKeys[bp])
		}
	}

	for _, p := range k.Properties {
		var carried Effective
		for _, bp := range Breakpoints() {
			v := attrs.Lookup(p.Keys[bp])
			switch {
			case v.IsSet():
				carried = Effective{Token: v.Token(), Explicit: true, From: bp}
			case bp == XS:
				carried = Effective{Token: p.Default, From: XS, Default: true}
			default:
				carried.Explicit = false
			}
			res.Values[bp][p.Name] = carried
		}
	}
	return res
}

// SizeHelp returns the hint shown next to the size control when the column
// is auto-sized: `Set to "Auto"` where auto is chosen at bp (or at the base
// breakpoint), `Inheriting "Auto"` where it is carried in. It is empty for
// numeric sizes.
func SizeHelp(res Resolution, bp Breakpoint) string {
	e, ok := res.Value(bp, "size")
	if !ok || e.Token != "auto" {
		return ""
	}
	if e.Explicit || bp == XS {
		return `Set to "Auto"`
	}
	return `Inheriting "Auto"`
}
