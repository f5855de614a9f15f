package grid

import "testing"

func TestAttributesLookup(t *testing.T) {
	attrs := Attributes{
		"string":  "6",
		"padded":  " 4 ",
		"empty":   "",
		"nil":     nil,
		"int":     3,
		"float":   float64(5),
		"int64":   int64(7),
		"frac":    1.5,
		"huge":    1e19,
		"zero":    0,
		"boolean": true,
	}

	tests := []struct {
		key   string
		set   bool
		token string
	}{
		{"string", true, "6"},
		{"padded", true, "4"},
		{"empty", false, ""},
		{"nil", false, ""},
		{"missing", false, ""},
		{"int", true, "3"},
		{"float", true, "5"},
		{"int64", true, "7"},
		{"frac", true, "1.5"},
		{"huge", true, "10000000000000000000"},
		{"zero", true, "0"},
		{"boolean", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := attrs.Lookup(tt.key)
			if v.IsSet() != tt.set {
				t.Errorf("IsSet() = %v, want %v", v.IsSet(), tt.set)
			}
			if v.Token() != tt.token {
				t.Errorf("Token() = %q, want %q", v.Token(), tt.token)
			}
		})
	}
}

func TestValueOr(t *testing.T) {
	if got := Inherited().Or("12"); got != "12" {
		t.Errorf("Inherited().Or = %q, want 12", got)
	}
	if got := Explicit("0").Or("12"); got != "0" {
		t.Errorf("Explicit(0).Or = %q, want 0", got)
	}
	if Inherited().String() != "inherit" {
		t.Errorf("Inherited().String() = %q", Inherited().String())
	}
}

func TestAttributesFlag(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"true", true, true},
		{"false", false, false},
		{"nil", nil, false},
		{"string true", "true", true},
		{"string false", "false", false},
		{"string zero", "0", false},
		{"empty string", "", false},
		{"one", 1, true},
		{"float zero", 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := Attributes{"mdNone": tt.v}
			if got := attrs.Flag("mdNone"); got != tt.want {
				t.Errorf("Flag(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}

	if (Attributes{}).Flag("smNone") {
		t.Error("missing flag should be false")
	}
}

func TestAttributesClone(t *testing.T) {
	a := Attributes{"allSize": "6"}
	b := a.Clone()
	b["allSize"] = "4"
	if a["allSize"] != "6" {
		t.Error("Clone should not share the map")
	}
	if !a.Has("allSize") || a.Has("smSize") {
		t.Error("Has reports wrong presence")
	}
}
