package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperr "github.com/newjenk/gridsystem/pkg/errors"
	"github.com/newjenk/gridsystem/pkg/grid"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported document encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat parses a format name; "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidFormat, "unknown document format %q (must be json, yaml or toml)", s)
}

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "cannot infer format of %s: no extension", path)
	}
	return ParseFormat(ext)
}

// Read decodes a document from r. block names the block kind used when the
// input is a bare attribute record; it is ignored otherwise.
//
// Read does not close r.
func Read(r io.Reader, format Format, block string) (*Document, error) {
	raw, err := decode(r, format)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "decode %s", format)
	}
	return fromMap(raw, block)
}

// Import reads the document stored at path, choosing the decoder from the
// file extension.
func Import(path, block string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format, block)
}

func decode(r io.Reader, format Format) (map[string]any, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func fromMap(raw map[string]any, block string) (*Document, error) {
	if list, ok := raw["blocks"]; ok {
		items, ok := list.([]any)
		if !ok {
			// TOML arrays of tables decode as []map[string]any.
			if tables, isTables := list.([]map[string]any); isTables {
				for _, t := range tables {
					items = append(items, t)
				}
			} else {
				return nil, apperr.New(apperr.ErrCodeInvalidInput, "blocks must be a list")
			}
		}
		blocks, err := blockList(items, "blocks")
		if err != nil {
			return nil, err
		}
		return &Document{Blocks: blocks}, nil
	}

	if _, ok := raw["name"].(string); ok {
		b, err := blockFrom(raw, "block")
		if err != nil {
			return nil, err
		}
		return &Document{Blocks: []Block{b}}, nil
	}

	if block == "" {
		return nil, apperr.New(apperr.ErrCodeInvalidBlock, "input is a bare attribute record; a block name is required")
	}
	k, err := grid.KindByName(block)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidBlock, err, "block")
	}
	return &Document{Blocks: []Block{{Name: k.BlockName(), Attributes: grid.Attributes(raw)}}}, nil
}

func blockList(items []any, path string) ([]Block, error) {
	blocks := make([]Block, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "%s[%d]: block must be an object", path, i)
		}
		b, err := blockFrom(m, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func blockFrom(m map[string]any, path string) (Block, error) {
	name, _ := m["name"].(string)
	if name == "" {
		return Block{}, apperr.New(apperr.ErrCodeInvalidBlock, "%s: missing block name", path)
	}
	if _, err := grid.KindByName(name); err != nil {
		return Block{}, apperr.Wrap(apperr.ErrCodeInvalidBlock, err, "%s", path)
	}

	b := Block{Name: name, Attributes: grid.Attributes{}}
	switch attrs := m["attributes"].(type) {
	case nil:
	case map[string]any:
		b.Attributes = grid.Attributes(attrs)
	default:
		return Block{}, apperr.New(apperr.ErrCodeInvalidInput, "%s: attributes must be an object", path)
	}

	if inner, ok := m["innerBlocks"]; ok {
		var items []any
		switch v := inner.(type) {
		case []any:
			items = v
		case []map[string]any:
			for _, t := range v {
				items = append(items, t)
			}
		default:
			return Block{}, apperr.New(apperr.ErrCodeInvalidInput, "%s: innerBlocks must be a list", path)
		}
		children, err := blockList(items, path+".innerBlocks")
		if err != nil {
			return Block{}, err
		}
		b.InnerBlocks = children
	}
	return b, nil
}
