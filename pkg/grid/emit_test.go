package grid

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func TestEmitCanonical(t *testing.T) {
	tests := []struct {
		name  string
		kind  *Kind
		attrs Attributes
		want  string
	}{
		{
			name:  "column sizes",
			kind:  Column,
			attrs: Attributes{"xsNone": false, "allSize": "12", "smSize": "6", "mdSize": "4"},
			want:  "col-12 col-sm-6 col-md-4",
		},
		{
			name:  "row alignment",
			kind:  Row,
			attrs: Attributes{"alignItemsXs": "center", "justifyContentXs": "start"},
			want:  "row align-items-center justify-content-start",
		},
		{
			name:  "spacer numeric padding",
			kind:  Spacer,
			attrs: Attributes{"paddingBottomXs": 3, "paddingBottomLg": 5},
			want:  "p-3 p-lg-5",
		},
		{
			name:  "empty column",
			kind:  Column,
			attrs: Attributes{},
			want:  "col-12",
		},
		{
			name:  "reveal restates carried size",
			kind:  Column,
			attrs: Attributes{"xsNone": false, "allSize": "6", "smNone": true, "mdNone": false},
			want:  "col-6 d-sm-none d-md-block col-md-6",
		},
		{
			name:  "reveal with explicit override",
			kind:  Column,
			attrs: Attributes{"allSize": "6", "smNone": true, "mdSize": "3"},
			want:  "col-6 d-sm-none d-md-block col-md-3",
		},
		{
			name:  "reveal with override equal to carried value",
			kind:  Column,
			attrs: Attributes{"allSize": "6", "smNone": true, "mdSize": "6"},
			want:  "col-6 d-sm-none d-md-block col-md-6",
		},
		{
			name:  "override while hidden carries into reveal",
			kind:  Column,
			attrs: Attributes{"allSize": "6", "smNone": true, "smSize": "4"},
			want:  "col-6 d-sm-none d-md-block col-md-4",
		},
		{
			name:  "hidden at xs",
			kind:  Column,
			attrs: Attributes{"xsNone": true, "allSize": "6"},
			want:  "d-none d-sm-block col-sm-6",
		},
		{
			name:  "hidden from md up",
			kind:  Column,
			attrs: Attributes{"allSize": "6", "mdNone": true, "lgNone": true, "xlNone": true, "lgSize": "2"},
			want:  "col-6 d-md-none",
		},
		{
			name:  "consecutive hides emit once",
			kind:  Column,
			attrs: Attributes{"smNone": true, "mdNone": true, "lgNone": false},
			want:  "col-12 d-sm-none d-lg-block col-lg-12",
		},
		{
			name:  "order default reset",
			kind:  Column,
			attrs: Attributes{"orderXs": "2", "orderSm": "default"},
			want:  "col-12 order-2 order-sm-0",
		},
		{
			name:  "order repeated default",
			kind:  Column,
			attrs: Attributes{"orderXs": "default", "orderMd": "default"},
			want:  "col-12",
		},
		{
			name:  "offset zero suppressed",
			kind:  Column,
			attrs: Attributes{"allOffset": 0},
			want:  "col-12",
		},
		{
			name:  "offset back to zero resets",
			kind:  Column,
			attrs: Attributes{"allOffset": "0", "smOffset": "3", "mdOffset": "0"},
			want:  "col-12 offset-sm-3 offset-md-0",
		},
		{
			name:  "reveal restates reset value",
			kind:  Column,
			attrs: Attributes{"allOffset": "2", "smNone": true, "smOffset": "0"},
			want:  "col-12 offset-2 d-sm-none d-md-block col-md-12 offset-md-0",
		},
		{
			name:  "same value not repeated",
			kind:  Column,
			attrs: Attributes{"allSize": "6", "smSize": "6", "lgSize": "6"},
			want:  "col-6",
		},
		{
			name:  "row breakpoint major",
			kind:  Row,
			attrs: Attributes{"alignItemsXs": "center", "alignItemsMd": "end", "justifyContentSm": "between"},
			want:  "row align-items-center justify-content-start justify-content-sm-between align-items-md-end",
		},
		{
			name:  "row no gutters",
			kind:  Row,
			attrs: Attributes{"noGutters": true},
			want:  "row no-gutters align-items-start justify-content-start",
		},
		{
			name:  "spacer default padding",
			kind:  Spacer,
			attrs: Attributes{"paddingBottomMd": "0"},
			want:  "p-3 p-md-0",
		},
		{
			name:  "container",
			kind:  Container,
			attrs: Attributes{},
			want:  "container",
		},
		{
			name:  "container fluid",
			kind:  Container,
			attrs: Attributes{"setWidthClass": true},
			want:  "container-fluid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classes(tt.kind, tt.attrs, Canonical); got != tt.want {
				t.Errorf("Classes() = %q\nwant        %q", got, tt.want)
			}
		})
	}
}

func TestEmitLegacy(t *testing.T) {
	tests := []struct {
		name  string
		kind  *Kind
		attrs Attributes
		want  string
	}{
		{
			name:  "reveal does not restate",
			kind:  Column,
			attrs: Attributes{"allSize": "6", "smNone": true, "mdNone": false},
			want:  "col-6 d-sm-none d-md-block",
		},
		{
			name:  "override while hidden is dropped",
			kind:  Column,
			attrs: Attributes{"allSize": "6", "smNone": true, "smSize": "4"},
			want:  "col-6 d-sm-none d-md-block",
		},
		{
			name:  "hidden at xs never states base size",
			kind:  Column,
			attrs: Attributes{"xsNone": true, "allSize": "6"},
			want:  "d-none d-sm-block",
		},
		{
			name:  "order default reset",
			kind:  Column,
			attrs: Attributes{"orderXs": "2", "orderSm": "default"},
			want:  "col-12 order-2 order-sm-0",
		},
		{
			name:  "row property major",
			kind:  Row,
			attrs: Attributes{"alignItemsXs": "center", "alignItemsMd": "end", "justifyContentSm": "between"},
			want:  "row align-items-center align-items-md-end justify-content-start justify-content-sm-between",
		},
		{
			name:  "spacer",
			kind:  Spacer,
			attrs: Attributes{"paddingBottomXs": 3, "paddingBottomLg": 5},
			want:  "p-3 p-lg-5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classes(tt.kind, tt.attrs, Legacy); got != tt.want {
				t.Errorf("Classes() = %q\nwant        %q", got, tt.want)
			}
		})
	}
}

func TestEmitReasons(t *testing.T) {
	tr := Emit(Column, Attributes{"allSize": "6", "smNone": true, "mdNone": false, "orderXs": "1", "lgOrder": "x", "orderLg": "default"}, Canonical)

	want := []struct {
		class  string
		bp     Breakpoint
		reason Reason
	}{
		{"col-6", XS, ReasonBase},
		{"order-1", XS, ReasonBase},
		{"d-sm-none", SM, ReasonHide},
		{"d-md-block", MD, ReasonShow},
		{"col-md-6", MD, ReasonRestate},
		{"order-md-1", MD, ReasonRestate},
		{"order-lg-0", LG, ReasonReset},
	}
	if len(tr.Tokens) != len(want) {
		t.Fatalf("got %d tokens (%s), want %d", len(tr.Tokens), tr, len(want))
	}
	for i, w := range want {
		got := tr.Tokens[i]
		if got.Class != w.class || got.Breakpoint != w.bp || got.Reason != w.reason {
			t.Errorf("token %d = {%s %v %v}, want {%s %v %v}", i, got.Class, got.Breakpoint, got.Reason, w.class, w.bp, w.reason)
		}
	}

	if at := tr.At(MD); len(at) != 3 {
		t.Errorf("At(md) = %d tokens, want 3", len(at))
	}
}

func TestEmitStaticTokens(t *testing.T) {
	tr := Emit(Row, Attributes{"noGutters": "true"}, Canonical)
	if tr.Tokens[0].Reason != ReasonStatic || tr.Tokens[1].Class != "no-gutters" {
		t.Errorf("leading tokens = %v", tr.Classes()[:2])
	}
	if got := len(tr.At(XS)); got != 2 {
		t.Errorf("At(xs) should skip static tokens, got %d", got)
	}
}

func TestHelpers(t *testing.T) {
	if got := ColumnClasses(Attributes{"allSize": "4"}); got != "col-4" {
		t.Errorf("ColumnClasses = %q", got)
	}
	if got := RowClasses(nil); got != "row align-items-start justify-content-start" {
		t.Errorf("RowClasses = %q", got)
	}
	if got := SpacerClasses(nil); got != "p-3" {
		t.Errorf("SpacerClasses = %q", got)
	}
	if got := ContainerClasses(nil); got != "container" {
		t.Errorf("ContainerClasses = %q", got)
	}
}

// randomAttributes draws a column, row or spacer attribute record from the
// domains the editor controls offer, with gaps left to inherit.
func randomAttributes(r *rand.Rand, k *Kind) Attributes {
	attrs := Attributes{}
	for _, bp := range Breakpoints() {
		if k.Visibility && r.Intn(3) == 0 {
			attrs[k.VisibilityKeys[bp]] = r.Intn(2) == 0
		}
		for _, p := range k.Properties {
			if r.Intn(2) == 0 {
				continue
			}
			opts := OptionsFor(p.Domain)
			attrs[p.Keys[bp]] = opts[r.Intn(len(opts))].Value
		}
	}
	return attrs
}

// cssAt computes what the emitted classes yield at bp under mobile-first
// rules: for each property, the last class declared at or below bp.
func cssAt(tr Trace, bp Breakpoint) (map[string]string, bool) {
	vals := map[string]string{}
	hidden := false
	for _, tok := range tr.Tokens {
		if tok.Reason == ReasonStatic || tok.Breakpoint > bp {
			continue
		}
		if tok.Property == PropertyVisibility {
			hidden = strings.HasSuffix(tok.Class, "-none")
			continue
		}
		p, _ := tr.Kind.Property(tok.Property)
		vals[tok.Property] = strings.TrimPrefix(tok.Class, p.Class(tok.Breakpoint, ""))
	}
	return vals, hidden
}

func sameCSS(p Property, a, b string) bool {
	norm := func(s string) string {
		if s == "" || p.Omitted(s) {
			return p.Reset
		}
		return s
	}
	return norm(a) == norm(b)
}

func TestEmitProperties(t *testing.T) {
	r := rand.New(rand.NewSource(20240601))

	for i := 0; i < 2000; i++ {
		k := []*Kind{Column, Row, Spacer}[i%3]
		attrs := randomAttributes(r, k)
		res := Resolve(k, attrs)
		tr := Emit(k, attrs, Canonical)

		// Idempotence.
		if again := Emit(k, attrs, Canonical); again.String() != tr.String() {
			t.Fatalf("%s %v: not idempotent: %q vs %q", k, attrs, tr, again)
		}

		// Base-breakpoint completeness.
		if !res.Hidden[XS] {
			for _, p := range k.Properties {
				want := res.Token(XS, p.Name)
				if p.Omitted(want) {
					continue
				}
				if !slices.Contains(tr.Classes(), p.Class(XS, want)) {
					t.Fatalf("%s %v: missing base class for %s in %q", k, attrs, p.Name, tr)
				}
			}
		}

		// Monotonic minimality.
		for _, tok := range tr.Tokens {
			if tok.Breakpoint == XS || tok.Reason == ReasonStatic || tok.Property == PropertyVisibility {
				continue
			}
			prev, _ := tok.Breakpoint.Prev()
			reveal := res.Hidden[prev] && !res.Hidden[tok.Breakpoint]
			if !reveal && res.Token(prev, tok.Property) == res.Token(tok.Breakpoint, tok.Property) {
				t.Fatalf("%s %v: %s emitted at %v without a change", k, attrs, tok.Class, tok.Breakpoint)
			}
		}

		// The classes reproduce the cascade at every visible breakpoint.
		for _, bp := range Breakpoints() {
			css, hidden := cssAt(tr, bp)
			if hidden != res.Hidden[bp] {
				t.Fatalf("%s %v: hidden at %v = %v, want %v (%q)", k, attrs, bp, hidden, res.Hidden[bp], tr)
			}
			if hidden {
				continue
			}
			for _, p := range k.Properties {
				if !sameCSS(p, css[p.Name], res.Token(bp, p.Name)) {
					t.Fatalf("%s %v: %s at %v = %q, want %q (%q)", k, attrs, p.Name, bp, css[p.Name], res.Token(bp, p.Name), tr)
				}
			}
		}
	}
}

func TestLegacyMatchesCanonicalWithoutVisibility(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		attrs := randomAttributes(r, Column)
		for _, bp := range Breakpoints() {
			delete(attrs, Column.VisibilityKeys[bp])
		}
		if c, l := Classes(Column, attrs, Canonical), Classes(Column, attrs, Legacy); c != l {
			t.Fatalf("%v: canonical %q, legacy %q", attrs, c, l)
		}
	}
}

func TestOffsetSuppression(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		attrs := randomAttributes(r, Column)
		for _, bp := range Breakpoints() {
			delete(attrs, Column.Properties[1].Keys[bp])
		}
		attrs["allOffset"] = 0
		for _, p := range []Profile{Canonical, Legacy} {
			if got := Classes(Column, attrs, p); strings.Contains(got, "offset") {
				t.Fatalf("%v (%s): unexpected offset class in %q", attrs, p, got)
			}
		}
	}
}
