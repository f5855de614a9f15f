package grid

import "strings"

// Reason records why a token was emitted.
type Reason int

const (
	ReasonStatic   Reason = iota // fixed leading token ("row", "container")
	ReasonBase                   // xs value
	ReasonOverride               // breakpoint override differs from the cascade
	ReasonReset                  // cascade returned to the CSS initial value
	ReasonRestate                // carried value restated after a reveal
	ReasonHide                   // display none from this breakpoint
	ReasonShow                   // display block again (a reveal)
)

func (r Reason) String() string {
	switch r {
	case ReasonStatic:
		return "static"
	case ReasonBase:
		return "base"
	case ReasonOverride:
		return "override"
	case ReasonReset:
		return "reset"
	case ReasonRestate:
		return "restate"
	case ReasonHide:
		return "hide"
	case ReasonShow:
		return "show"
	default:
		return "unknown"
	}
}

// PropertyVisibility is the property name used on hide and show tokens.
const PropertyVisibility = "visibility"

// Token is one emitted class with its provenance.
type Token struct {
	Class      string
	Breakpoint Breakpoint
	Property   string // empty for static tokens
	Reason     Reason
}

// Trace is the ordered class emission for one block instance.
type Trace struct {
	Kind    *Kind
	Profile Profile
	Tokens  []Token
}

// Classes returns the emitted class names in order.
func (t Trace) Classes() []string {
	out := make([]string, len(t.Tokens))
	for i, tok := range t.Tokens {
		out[i] = tok.Class
	}
	return out
}

// String returns the space-joined class string.
func (t Trace) String() string {
	return strings.Join(t.Classes(), " ")
}

// At returns the non-static tokens emitted at bp.
func (t Trace) At(bp Breakpoint) []Token {
	var out []Token
	for _, tok := range t.Tokens {
		if tok.Reason != ReasonStatic && tok.Breakpoint == bp {
			out = append(out, tok)
		}
	}
	return out
}

func (t *Trace) push(bp Breakpoint, prop string, class string, r Reason) {
	t.Tokens = append(t.Tokens, Token{Class: class, Breakpoint: bp, Property: prop, Reason: r})
}

// Classes returns the class string for a block instance.
func Classes(k *Kind, attrs Attributes, p Profile) string {
	return Emit(k, attrs, p).String()
}

// Emit walks the breakpoints xs→xl and returns the minimal class sequence
// reproducing the cascade under mobile-first CSS.
func Emit(k *Kind, attrs Attributes, p Profile) Trace {
	tr := Trace{Kind: k, Profile: p}
	for _, c := range k.leading(attrs) {
		tr.push(XS, "", c, ReasonStatic)
	}
	if len(k.Properties) == 0 {
		return tr
	}
	if p == Legacy {
		emitLegacy(&tr, k, attrs)
		return tr
	}

	res := Resolve(k, attrs)
	// active[i] is the token expressed by the classes in force for property
	// i; "" means no class has been emitted for it yet.
	active := make([]string, len(k.Properties))
	hidden := false

	for _, bp := range Breakpoints() {
		nowHidden := res.Hidden[bp]
		reveal := false
		switch {
		case bp == XS && nowHidden:
			tr.push(bp, PropertyVisibility, "d-none", ReasonHide)
		case nowHidden && !hidden:
			tr.push(bp, PropertyVisibility, "d"+bp.Infix()+"-none", ReasonHide)
		case !nowHidden && hidden:
			tr.push(bp, PropertyVisibility, "d"+bp.Infix()+"-block", ReasonShow)
			reveal = true
		}
		hidden = nowHidden
		if hidden {
			continue
		}

		for i, prop := range k.Properties {
			eff := res.Values[bp][prop.Name]
			want := eff.Token

			if bp == XS {
				if !prop.Omitted(want) {
					tr.push(bp, prop.Name, prop.Class(bp, want), ReasonBase)
					active[i] = want
				}
				continue
			}
			if !reveal && prop.equivalent(want, active[i]) {
				continue
			}

			switch {
			case !prop.Omitted(want):
				reason := ReasonOverride
				if reveal && !eff.Explicit {
					reason = ReasonRestate
				}
				tr.push(bp, prop.Name, prop.Class(bp, want), reason)
				active[i] = want
			case active[i] != "" && !prop.Omitted(active[i]):
				tr.push(bp, prop.Name, prop.Class(bp, prop.Reset), ReasonReset)
				active[i] = want
			}
		}
	}
	return tr
}

// emitLegacy is the rule set of earlier releases. The running value starts
// at the xs value even when xs is hidden, overrides are only read at visible
// breakpoints, and nothing is restated on reveal.
func emitLegacy(tr *Trace, k *Kind, attrs Attributes) {
	running := make([]string, len(k.Properties))
	for i, prop := range k.Properties {
		running[i] = attrs.Lookup(prop.Keys[XS]).Or(prop.Default)
	}

	step := func(bp Breakpoint, i int) {
		prop := k.Properties[i]
		ov := attrs.Lookup(prop.Keys[bp])
		if !ov.IsSet() || ov.Token() == running[i] {
			return
		}
		switch {
		case !prop.Omitted(ov.Token()):
			tr.push(bp, prop.Name, prop.Class(bp, ov.Token()), ReasonOverride)
		case !prop.Omitted(running[i]):
			tr.push(bp, prop.Name, prop.Class(bp, prop.Reset), ReasonReset)
		}
		running[i] = ov.Token()
	}

	if !k.Visibility {
		for i, prop := range k.Properties {
			if !prop.Omitted(running[i]) {
				tr.push(XS, prop.Name, prop.Class(XS, running[i]), ReasonBase)
			}
			for _, bp := range Breakpoints()[1:] {
				step(bp, i)
			}
		}
		return
	}

	hidden := attrs.Flag(k.VisibilityKeys[XS])
	if hidden {
		tr.push(XS, PropertyVisibility, "d-none", ReasonHide)
	} else {
		for i, prop := range k.Properties {
			if !prop.Omitted(running[i]) {
				tr.push(XS, prop.Name, prop.Class(XS, running[i]), ReasonBase)
			}
		}
	}
	for _, bp := range Breakpoints()[1:] {
		if attrs.Flag(k.VisibilityKeys[bp]) {
			if !hidden {
				tr.push(bp, PropertyVisibility, "d"+bp.Infix()+"-none", ReasonHide)
			}
			hidden = true
			continue
		}
		if hidden {
			tr.push(bp, PropertyVisibility, "d"+bp.Infix()+"-block", ReasonShow)
		}
		hidden = false
		for i := range k.Properties {
			step(bp, i)
		}
	}
}

// ColumnClasses returns the canonical class string for a column block.
func ColumnClasses(attrs Attributes) string { return Classes(Column, attrs, Canonical) }

// RowClasses returns the canonical class string for a row block.
func RowClasses(attrs Attributes) string { return Classes(Row, attrs, Canonical) }

// SpacerClasses returns the canonical class string for a spacer block.
func SpacerClasses(attrs Attributes) string { return Classes(Spacer, attrs, Canonical) }

// ContainerClasses returns the class string for a container block.
func ContainerClasses(attrs Attributes) string { return Classes(Container, attrs, Canonical) }
