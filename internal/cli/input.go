package cli

import (
	"fmt"
	"os"
	"strings"

	apperr "github.com/newjenk/gridsystem/pkg/errors"
	"github.com/newjenk/gridsystem/pkg/grid"
	gio "github.com/newjenk/gridsystem/pkg/io"
)

// stdinPath names standard input in file arguments.
const stdinPath = "-"

// loadDocument reads path, or stdin when path is "-". block is the kind
// used for bare attribute records; stdinFormat picks the decoder for stdin.
func loadDocument(path, block, stdinFormat string) (*gio.Document, error) {
	if path != stdinPath {
		return gio.Import(path, block)
	}
	format, err := gio.ParseFormat(stdinFormat)
	if err != nil {
		return nil, err
	}
	return gio.Read(os.Stdin, format, block)
}

// parseInline turns key=value arguments into attributes. "true" and
// "false" become booleans and an empty value means inherit.
func parseInline(args []string) (grid.Attributes, error) {
	attrs := grid.Attributes{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "expected key=value, got %q", arg)
		}
		switch value {
		case "true":
			attrs[key] = true
		case "false":
			attrs[key] = false
		default:
			attrs[key] = value
		}
	}
	return attrs, nil
}

// blockSource is the shared "<block> key=value..." or "--file" input of
// the single-block commands.
type blockSource struct {
	file  string
	index int
}

// load returns the block kind and attributes named by args or the file.
// With a file, the block at index in document order is used.
func (s blockSource) load(args []string) (*grid.Kind, grid.Attributes, error) {
	if s.file != "" {
		block := ""
		if len(args) > 0 {
			block = args[0]
		}
		doc, err := loadDocument(s.file, block, string(gio.FormatJSON))
		if err != nil {
			return nil, nil, err
		}
		flat := flattenBlocks(doc.Blocks, nil)
		if s.index < 0 || s.index >= len(flat) {
			return nil, nil, apperr.New(apperr.ErrCodeNotFound, "block index %d out of range (document has %d blocks)", s.index, len(flat))
		}
		b := flat[s.index]
		k, err := b.Kind()
		if err != nil {
			return nil, nil, err
		}
		return k, b.Attributes, nil
	}

	if len(args) == 0 {
		return nil, nil, fmt.Errorf("a block name or --file is required (one of: %s)", strings.Join(grid.KindNames(), ", "))
	}
	k, err := grid.KindByName(args[0])
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.ErrCodeInvalidBlock, err, "block")
	}
	attrs, err := parseInline(args[1:])
	if err != nil {
		return nil, nil, err
	}
	return k, attrs, nil
}

// flattenBlocks lists blocks in document pre-order.
func flattenBlocks(blocks []gio.Block, out []gio.Block) []gio.Block {
	for _, b := range blocks {
		out = append(out, b)
		out = flattenBlocks(b.InnerBlocks, out)
	}
	return out
}

// completeBlockNames offers block kinds for the first positional argument.
func completeBlockNames(args []string) []string {
	if len(args) > 0 {
		return nil
	}
	return grid.KindNames()
}
