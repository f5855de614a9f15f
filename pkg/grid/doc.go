// Package grid implements the breakpoint cascade behind the grid-system
// blocks: given the attribute record of a block instance it computes the
// effective value of every responsive property at every breakpoint and the
// minimal, ordered list of utility classes that reproduces that cascade under
// mobile-first CSS.
//
// # Model
//
// Breakpoints run xs, sm, md, lg, xl. A class declared at one breakpoint holds
// at every wider breakpoint until another class for the same property
// replaces it. Each block kind is a configuration of one engine:
//
//   - [Column]: size (col), offset, order, plus per-breakpoint visibility
//   - [Row]: align-items and justify-content after the fixed "row" token
//   - [Spacer]: padding (p)
//   - [Container]: a fixed "container" or "container-fluid" token
//
// Overrides are read with [Attributes.Lookup], which returns a tagged [Value]:
// Inherited when the key is missing, nil or empty, Explicit otherwise. An
// explicit offset of 0 is therefore distinct from no offset at all.
//
// # Emission
//
// [Emit] returns a [Trace] in which every class carries the breakpoint, the
// property and the [Reason] it was emitted for. [Classes] joins it into the
// string stored on the block wrapper:
//
//	grid.Classes(grid.Column, grid.Attributes{
//	    "allSize": "12", "smSize": "6", "mdSize": "4",
//	}, grid.Canonical)
//	// "col-12 col-sm-6 col-md-4"
//
// Two profiles exist. [Canonical] restates carried values when a hidden
// column is revealed and keeps overrides made at hidden breakpoints.
// [Legacy] reproduces the class strings saved by earlier plugin releases so
// stored markup can be checked byte for byte.
//
// The engine never fails: unknown keys are ignored and values outside a
// property's domain are emitted as given. [Validate] is the separate check
// the editor controls enforce.
package grid
