package grid

import "testing"

func TestBreakpointNames(t *testing.T) {
	tests := []struct {
		bp     Breakpoint
		name   string
		infix  string
		suffix string
	}{
		{XS, "xs", "", "Xs"},
		{SM, "sm", "-sm", "Sm"},
		{MD, "md", "-md", "Md"},
		{LG, "lg", "-lg", "Lg"},
		{XL, "xl", "-xl", "Xl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bp.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.bp.Infix(); got != tt.infix {
				t.Errorf("Infix() = %q, want %q", got, tt.infix)
			}
			if got := tt.bp.Suffix(); got != tt.suffix {
				t.Errorf("Suffix() = %q, want %q", got, tt.suffix)
			}
		})
	}
}

func TestBreakpointPrev(t *testing.T) {
	if _, ok := XS.Prev(); ok {
		t.Error("XS.Prev() should report no predecessor")
	}
	if p, ok := MD.Prev(); !ok || p != SM {
		t.Errorf("MD.Prev() = %v, %v; want sm, true", p, ok)
	}
}

func TestParseBreakpoint(t *testing.T) {
	tests := []struct {
		in      string
		want    Breakpoint
		wantErr bool
	}{
		{"xs", XS, false},
		{"all", XS, false},
		{" MD ", MD, false},
		{"xl", XL, false},
		{"xxl", XS, true},
		{"", XS, true},
	}

	for _, tt := range tests {
		got, err := ParseBreakpoint(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBreakpoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBreakpoint(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRanges(t *testing.T) {
	for i, r := range Ranges {
		if r.Breakpoint != Breakpoint(i) {
			t.Errorf("Ranges[%d].Breakpoint = %v", i, r.Breakpoint)
		}
		if i == 0 {
			if r.MinWidth != 0 {
				t.Errorf("xs should start at 0, got %d", r.MinWidth)
			}
			continue
		}
		prev := Ranges[i-1]
		if r.MinWidth != prev.MaxWidth+1 {
			t.Errorf("%v starts at %d, want %d (contiguous with %v)", r.Breakpoint, r.MinWidth, prev.MaxWidth+1, prev.Breakpoint)
		}
	}
	if !RangeOf(XL).Unbounded() {
		t.Error("xl should be unbounded")
	}
}

func TestRangeHelp(t *testing.T) {
	tests := []struct {
		bp   Breakpoint
		help string
		span string
	}{
		{XS, "Will apply from 0px to 575px", "0-575px"},
		{SM, "Will apply from 576px to 767px", "576-767px"},
		{LG, "Will apply from 992px to 1199px", "992-1199px"},
		{XL, "Will apply from 1200px and up", "1200px+"},
	}

	for _, tt := range tests {
		r := RangeOf(tt.bp)
		if got := r.Help(); got != tt.help {
			t.Errorf("%v Help() = %q, want %q", tt.bp, got, tt.help)
		}
		if got := r.Span(); got != tt.span {
			t.Errorf("%v Span() = %q, want %q", tt.bp, got, tt.span)
		}
	}
}

func TestForWidth(t *testing.T) {
	tests := []struct {
		px   int
		want Breakpoint
	}{
		{0, XS},
		{575, XS},
		{576, SM},
		{991, MD},
		{992, LG},
		{1200, XL},
		{4000, XL},
	}

	for _, tt := range tests {
		if got := ForWidth(tt.px); got != tt.want {
			t.Errorf("ForWidth(%d) = %v, want %v", tt.px, got, tt.want)
		}
	}
}
