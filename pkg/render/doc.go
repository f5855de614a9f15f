// Package render groups the diagram renderers of gridsystem.
//
// The [dot] subpackage draws the breakpoint cascade of one block as a
// Graphviz graph and lays it out to SVG or PNG in-process.
//
// [dot]: https://pkg.go.dev/github.com/newjenk/gridsystem/pkg/render/dot
package render
