package grid

// Domain identifies the set of tokens a property accepts. The engine never
// checks domains; Validate does.
type Domain int

const (
	DomainSize Domain = iota
	DomainOffset
	DomainOrder
	DomainAlignItems
	DomainJustifyContent
	DomainPadding
)

func (d Domain) String() string {
	switch d {
	case DomainSize:
		return "size"
	case DomainOffset:
		return "offset"
	case DomainOrder:
		return "order"
	case DomainAlignItems:
		return "align-items"
	case DomainJustifyContent:
		return "justify-content"
	case DomainPadding:
		return "padding"
	default:
		return "unknown"
	}
}

// Property is one responsive dimension tracked by the cascade.
type Property struct {
	// Name identifies the property in resolutions and traces ("size", "offset").
	Name string

	// Prefix is the utility class prefix; the class for token t at breakpoint
	// b is Prefix + b.Infix() + "-" + t.
	Prefix string

	// Default is the xs value used when the base override is absent.
	Default string

	// Keys holds the attribute key read at each breakpoint.
	Keys [NumBreakpoints]string

	// Omit is the token that needs no class because it matches the CSS
	// initial value ("0" for offsets, "default" for order). Empty means every
	// token gets a class.
	Omit string

	// Reset is the token emitted when the cascade moves from a classed value
	// back to Omit; CSS has no "unset" utility so the initial value is
	// restated explicitly.
	Reset string

	Domain Domain
}

// Class returns the utility class for tok at bp.
func (p Property) Class(bp Breakpoint, tok string) string {
	return p.Prefix + bp.Infix() + "-" + tok
}

// Omitted reports whether tok needs no class.
func (p Property) Omitted(tok string) bool {
	return p.Omit != "" && tok == p.Omit
}

// equivalent reports whether the CSS expressed by active already yields want.
// An empty active means no class for the property is in force.
func (p Property) equivalent(want, active string) bool {
	if want == active {
		return true
	}
	return p.Omitted(want) && (active == "" || p.Omitted(active))
}

// keysFor builds a key table from a per-breakpoint naming function.
func keysFor(name func(Breakpoint) string) [NumBreakpoints]string {
	var keys [NumBreakpoints]string
	for _, bp := range Breakpoints() {
		keys[bp] = name(bp)
	}
	return keys
}

// prefixed names keys like "smSize": breakpoint first, with a distinct xs key.
func prefixed(base, xsKey string) [NumBreakpoints]string {
	return keysFor(func(bp Breakpoint) string {
		if bp == XS {
			return xsKey
		}
		return bp.String() + base
	})
}

// suffixed names keys like "orderLg": base first, capitalised breakpoint after.
func suffixed(base string) [NumBreakpoints]string {
	return keysFor(func(bp Breakpoint) string {
		return base + bp.Suffix()
	})
}
