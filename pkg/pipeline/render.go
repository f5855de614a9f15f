package pipeline

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/newjenk/gridsystem/pkg/grid"
)

// Serialize encodes a rendered document.
//
//   - text: one class string per line, nested blocks indented by two spaces
//   - json: the Result as indented JSON
//   - html: the saved block markup, nested
func Serialize(res *Result, format string) ([]byte, error) {
	switch format {
	case FormatText:
		var b strings.Builder
		writeText(&b, res.Blocks, 0)
		return []byte(b.String()), nil
	case FormatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		return append(data, '\n'), nil
	case FormatHTML:
		var b strings.Builder
		writeHTML(&b, res.Blocks, 0)
		return []byte(b.String()), nil
	}
	return nil, ValidateFormat(format)
}

func writeText(b *strings.Builder, blocks []BlockResult, depth int) {
	for _, br := range blocks {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(br.Classes)
		b.WriteByte('\n')
		writeText(b, br.InnerBlocks, depth+1)
	}
}

// MarkupClass returns the class attribute the editor saves for a block: the
// wrapper class, the grid classes, the alignment class and any custom
// className, in that order.
func MarkupClass(br BlockResult) string {
	parts := []string{wrapperClass(br.Kind)}
	if br.Classes != "" {
		parts = append(parts, br.Classes)
	}
	if a := alignClass(br); a != "" {
		parts = append(parts, a)
	}
	if custom, ok := br.Attributes["className"].(string); ok && strings.TrimSpace(custom) != "" {
		parts = append(parts, strings.TrimSpace(custom))
	}
	return strings.Join(parts, " ")
}

func wrapperClass(kind string) string {
	if k, err := grid.KindByName(kind); err == nil {
		return k.WrapperClass()
	}
	return "wp-block-" + grid.Namespace + "-" + kind
}

// alignClass maps the block alignment attribute to its class. Containers
// default to full width.
func alignClass(br BlockResult) string {
	align, _ := br.Attributes["align"].(string)
	if align == "" && br.Kind == grid.Container.Name {
		align = "full"
	}
	if align == "" {
		return ""
	}
	return "align" + align
}

func writeHTML(b *strings.Builder, blocks []BlockResult, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, br := range blocks {
		class := html.EscapeString(MarkupClass(br))
		if br.Kind == grid.Spacer.Name {
			fmt.Fprintf(b, "%s<div class=\"%s\" aria-hidden=\"true\"></div>\n", indent, class)
			continue
		}
		if len(br.InnerBlocks) == 0 {
			fmt.Fprintf(b, "%s<div class=\"%s\"></div>\n", indent, class)
			continue
		}
		fmt.Fprintf(b, "%s<div class=\"%s\">\n", indent, class)
		writeHTML(b, br.InnerBlocks, depth+1)
		fmt.Fprintf(b, "%s</div>\n", indent)
	}
}
