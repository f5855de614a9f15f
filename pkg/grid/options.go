package grid

import (
	"fmt"
	"strconv"
)

// Option is one choice offered by an editor control.
type Option struct {
	Value       string
	Label       string
	Description string
}

// VisibilityOptions are the choices of the per-breakpoint visibility toggle.
var VisibilityOptions = []Option{
	{Value: "false", Label: "Visible", Description: "Column is visible at this breakpoint."},
	{Value: "true", Label: "Hidden", Description: `Column is hidden using "d-none".`},
}

// OrderOptions are the choices of the order control.
var OrderOptions = append([]Option{
	{Value: "default", Label: "Default", Description: "No order class is added; the column keeps its source position."},
	{Value: "first", Label: "First", Description: "Column is moved to the start of the row."},
	{Value: "last", Label: "Last", Description: "Column is moved to the end of the row."},
}, numberedOptions(0, 12, "Order value %s.")...)

// AlignItemsOptions are the vertical alignment choices of a row.
var AlignItemsOptions = []Option{
	{Value: "start", Label: "Align Top", Description: "Aligns items to the top of the row."},
	{Value: "center", Label: "Align Middle", Description: "Aligns items to the center (vertical) of the row."},
	{Value: "end", Label: "Align Bottom", Description: "Aligns items to the bottom of the row."},
}

// JustifyContentOptions are the horizontal alignment choices of a row.
var JustifyContentOptions = []Option{
	{Value: "start", Label: "Align Left (Start)", Description: "Aligns columns to the left."},
	{Value: "center", Label: "Align Center", Description: "Aligns columns to the center."},
	{Value: "end", Label: "Align Right (End)", Description: "Aligns columns to the right."},
	{Value: "between", Label: "Space Between", Description: "Distributes columns with space between them."},
	{Value: "around", Label: "Space Around", Description: "Distributes columns with space around them."},
}

// SizeOptions are the column widths 1 to 12 plus "auto".
var SizeOptions = append(numberedOptions(1, 12, "Spans %s of 12 columns."),
	Option{Value: "auto", Label: "Auto", Description: "Width follows the column content."})

// OffsetOptions are the offsets 0 to 11.
var OffsetOptions = numberedOptions(0, 11, "Shifts the column right by %s columns.")

// PaddingOptions are the spacer scale steps 0 to 5.
var PaddingOptions = numberedOptions(0, 5, "Spacing scale step %s.")

// OptionsFor returns the option table of a domain.
func OptionsFor(d Domain) []Option {
	switch d {
	case DomainSize:
		return SizeOptions
	case DomainOffset:
		return OffsetOptions
	case DomainOrder:
		return OrderOptions
	case DomainAlignItems:
		return AlignItemsOptions
	case DomainJustifyContent:
		return JustifyContentOptions
	case DomainPadding:
		return PaddingOptions
	}
	return nil
}

func numberedOptions(from, to int, desc string) []Option {
	var out []Option
	for i := from; i <= to; i++ {
		s := strconv.Itoa(i)
		out = append(out, Option{Value: s, Label: s, Description: fmt.Sprintf(desc, s)})
	}
	return out
}
