package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a per-breakpoint override. The zero Value is Inherited: the
// breakpoint takes whatever the cascade carries into it. An explicit value is
// always a token, so an explicit offset of 0 ("0") is distinct from no offset.
type Value struct {
	token string
	set   bool
}

// Inherited returns a Value that defers to the cascade.
func Inherited() Value { return Value{} }

// Explicit returns a Value set to tok.
func Explicit(tok string) Value { return Value{token: tok, set: true} }

// IsSet reports whether v is an explicit override.
func (v Value) IsSet() bool { return v.set }

// Token returns the override token. It is empty for inherited values.
func (v Value) Token() string { return v.token }

// Or returns v when explicit and fallback otherwise.
func (v Value) Or(fallback string) string {
	if v.set {
		return v.token
	}
	return fallback
}

func (v Value) String() string {
	if !v.set {
		return "inherit"
	}
	return v.token
}

// Attributes is the flat attribute record of one block instance, as stored by
// the editor: keys such as "smSize", "orderLg" or "mdNone" mapped to strings,
// numbers, booleans or nil. Decoders (JSON, YAML, TOML) produce different
// numeric types; Attributes accepts all of them.
type Attributes map[string]any

// Lookup returns the override stored under key. Missing keys, nil and empty
// strings are Inherited. Integral numbers are rendered in decimal so that 3,
// 3.0 and "3" are the same token.
func (a Attributes) Lookup(key string) Value {
	raw, ok := a[key]
	if !ok {
		return Inherited()
	}
	tok, ok := tokenOf(raw)
	if !ok {
		return Inherited()
	}
	return Explicit(tok)
}

// Flag reports whether key holds a truthy value: true, a non-zero number or a
// non-empty string other than "false" and "0".
func (a Attributes) Flag(key string) bool {
	switch v := a[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		return s != "" && s != "false" && s != "0"
	default:
		tok, ok := tokenOf(v)
		return ok && tok != "0"
	}
}

// Has reports whether key is present with a non-nil value.
func (a Attributes) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// Clone returns a shallow copy of a.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func tokenOf(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	case float32:
		return formatFloat(float64(v)), true
	case float64:
		return formatFloat(v), true
	case fmt.Stringer:
		s := strings.TrimSpace(v.String())
		return s, s != ""
	default:
		return fmt.Sprint(v), true
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
