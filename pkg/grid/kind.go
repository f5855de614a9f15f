package grid

import (
	"fmt"
	"strings"
)

// Namespace is the block namespace used by the editor.
const Namespace = "grid-system"

// Kind is a block type: its name, the properties it tracks and whether it
// carries a per-breakpoint visibility dimension.
type Kind struct {
	// Name is the short name ("column").
	Name string

	// Block is the registered block name without namespace ("responsive-spacer").
	Block string

	Properties []Property

	// Visibility enables the "{bp}None" hidden flags.
	Visibility bool

	// VisibilityKeys holds the hidden-flag key per breakpoint when Visibility is set.
	VisibilityKeys [NumBreakpoints]string

	// Leading returns the fixed tokens that precede the cascade ("row", "no-gutters").
	Leading func(Attributes) []string

	// Flags lists boolean attributes consumed by Leading.
	Flags []string
}

// BlockName returns the namespaced block name ("grid-system/column").
func (k *Kind) BlockName() string {
	return Namespace + "/" + k.Block
}

// WrapperClass returns the class the editor adds to the saved wrapper element.
func (k *Kind) WrapperClass() string {
	return "wp-block-" + Namespace + "-" + k.Block
}

// Property returns the property with the given name.
func (k *Kind) Property(name string) (Property, bool) {
	for _, p := range k.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// SupportKeys are the block attributes the editor adds to every block kind.
// They carry no grid meaning; the markup serializer reads className and align.
var SupportKeys = []string{"className", "align", "anchor", "lock", "metadata", "style"}

// Keys returns every attribute key the kind reads, in a stable order.
func (k *Kind) Keys() []string {
	var keys []string
	keys = append(keys, k.Flags...)
	for _, bp := range Breakpoints() {
		if k.Visibility {
			keys = append(keys, k.VisibilityKeys[bp])
		}
		for _, p := range k.Properties {
			keys = append(keys, p.Keys[bp])
		}
	}
	return keys
}

func (k *Kind) leading(attrs Attributes) []string {
	if k.Leading == nil {
		return nil
	}
	return k.Leading(attrs)
}

func (k *Kind) String() string { return k.Name }

var (
	// Column tracks size, offset and order with per-breakpoint visibility.
	Column = &Kind{
		Name:  "column",
		Block: "column",
		Properties: []Property{
			{Name: "size", Prefix: "col", Default: "12", Keys: prefixed("Size", "allSize"), Domain: DomainSize},
			{Name: "offset", Prefix: "offset", Default: "0", Keys: prefixed("Offset", "allOffset"), Omit: "0", Reset: "0", Domain: DomainOffset},
			{Name: "order", Prefix: "order", Default: "default", Keys: suffixed("order"), Omit: "default", Reset: "0", Domain: DomainOrder},
		},
		Visibility:     true,
		VisibilityKeys: keysFor(func(bp Breakpoint) string { return bp.String() + "None" }),
	}

	// Row tracks vertical and horizontal alignment after the fixed "row" token.
	Row = &Kind{
		Name:  "row",
		Block: "row",
		Properties: []Property{
			{Name: "align", Prefix: "align-items", Default: "start", Keys: suffixed("alignItems"), Domain: DomainAlignItems},
			{Name: "justify", Prefix: "justify-content", Default: "start", Keys: suffixed("justifyContent"), Domain: DomainJustifyContent},
		},
		Flags: []string{"noGutters"},
		Leading: func(attrs Attributes) []string {
			if attrs.Flag("noGutters") {
				return []string{"row", "no-gutters"}
			}
			return []string{"row"}
		},
	}

	// Spacer tracks a single padding scale.
	Spacer = &Kind{
		Name:  "spacer",
		Block: "responsive-spacer",
		Properties: []Property{
			{Name: "padding", Prefix: "p", Default: "3", Keys: suffixed("paddingBottom"), Domain: DomainPadding},
		},
	}

	// Container has no responsive properties; it is fixed or fluid width.
	Container = &Kind{
		Name:  "container",
		Block: "container",
		Flags: []string{"setWidthClass"},
		Leading: func(attrs Attributes) []string {
			if attrs.Flag("setWidthClass") {
				return []string{"container-fluid"}
			}
			return []string{"container"}
		},
	}
)

// Kinds returns every block kind.
func Kinds() []*Kind {
	return []*Kind{Container, Row, Column, Spacer}
}

// KindByName looks up a kind by short name, block name or namespaced block
// name ("spacer", "responsive-spacer", "grid-system/responsive-spacer").
func KindByName(name string) (*Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, Namespace+"/")
	for _, k := range Kinds() {
		if n == k.Name || n == k.Block {
			return k, nil
		}
	}
	return nil, fmt.Errorf("unknown block %q", name)
}

// KindNames returns the short names of all kinds.
func KindNames() []string {
	var names []string
	for _, k := range Kinds() {
		names = append(names, k.Name)
	}
	return names
}
