package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/newjenk/gridsystem/pkg/grid"
)

// Document is an ordered list of top-level blocks.
type Document struct {
	Blocks []Block `json:"blocks" yaml:"blocks" toml:"blocks"`
}

// Block is one block instance: its name and the attribute record the editor
// saved for it.
type Block struct {
	Name        string          `json:"name" yaml:"name" toml:"name"`
	Attributes  grid.Attributes `json:"attributes" yaml:"attributes" toml:"attributes"`
	InnerBlocks []Block         `json:"innerBlocks,omitempty" yaml:"innerBlocks,omitempty" toml:"innerBlocks,omitempty"`
}

// Kind returns the block kind. Blocks produced by Read always resolve.
func (b Block) Kind() (*grid.Kind, error) {
	return grid.KindByName(b.Name)
}

// Count returns the number of blocks in the document, nested ones included.
func (d *Document) Count() int {
	var count func([]Block) int
	count = func(bs []Block) int {
		n := len(bs)
		for _, b := range bs {
			n += count(b.InnerBlocks)
		}
		return n
	}
	return count(d.Blocks)
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q", format)
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes doc to path in the format implied by its extension.
func Export(doc *Document, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, doc, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
