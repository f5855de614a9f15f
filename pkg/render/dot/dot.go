// Package dot draws the breakpoint cascade of a block as a Graphviz diagram.
//
// Each breakpoint is a node listing the effective value of every property;
// edges run xs→xl and carry the classes emitted on entering the next
// breakpoint. Hidden breakpoints are drawn dashed and grey, so a reveal and
// the classes it restates are easy to spot.
//
//	res := grid.Resolve(grid.Column, attrs)
//	tr := grid.Emit(grid.Column, attrs, grid.Canonical)
//	src := dot.ToDOT(res, tr, dot.Options{Detailed: true})
//	svg, err := dot.RenderSVG(ctx, src)
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/newjenk/gridsystem/pkg/grid"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds the pixel range and the provenance of every value
	// ("set", "inherited from sm") to the node labels.
	Detailed bool
}

// ToDOT converts a resolution and its emission trace to Graphviz DOT.
func ToDOT(res grid.Resolution, tr grid.Trace, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph cascade {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("\n")

	if lead := staticClasses(tr); lead != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n\n", lead)
	}

	for _, bp := range grid.Breakpoints() {
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(res, tr, bp, opts.Detailed))}
		if res.Hidden[bp] {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=dimgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", bp.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, bp := range grid.Breakpoints()[1:] {
		prev, _ := bp.Prev()
		classes := classesAt(tr, bp)
		attrs := []string{fmt.Sprintf("label=%q", strings.Join(classes, "\n"))}
		if len(classes) == 0 {
			attrs = append(attrs, "style=dotted")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", prev.String(), bp.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(res grid.Resolution, tr grid.Trace, bp grid.Breakpoint, detailed bool) string {
	lines := []string{bp.String()}
	if detailed {
		lines[0] += " (" + grid.RangeOf(bp).Span() + ")"
	}
	if res.Hidden[bp] {
		lines = append(lines, "hidden")
	}
	for _, p := range res.Kind.Properties {
		e, _ := res.Value(bp, p.Name)
		line := fmt.Sprintf("%s: %s", p.Name, e.Token)
		if detailed {
			line += " (" + e.Source() + ")"
		}
		lines = append(lines, line)
	}
	if bp == grid.XS {
		if base := classesAt(tr, bp); len(base) > 0 {
			lines = append(lines, "→ "+strings.Join(base, " "))
		}
	}
	return strings.Join(lines, "\n")
}

func classesAt(tr grid.Trace, bp grid.Breakpoint) []string {
	var out []string
	for _, tok := range tr.At(bp) {
		out = append(out, tok.Class)
	}
	return out
}

func staticClasses(tr grid.Trace) string {
	var out []string
	for _, tok := range tr.Tokens {
		if tok.Reason == grid.ReasonStatic {
			out = append(out, tok.Class)
		}
	}
	return strings.Join(out, " ")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag so the diagram scales from a
// zero origin with its natural size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
