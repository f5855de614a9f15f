package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperr "github.com/newjenk/gridsystem/pkg/errors"
	"github.com/newjenk/gridsystem/pkg/grid"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		block  string
		input  string
		check  func(t *testing.T, d *Document)
	}{
		{
			name:   "json block list",
			format: FormatJSON,
			input: `{"blocks": [
				{"name": "grid-system/row", "attributes": {"alignItemsXs": "center"},
				 "innerBlocks": [{"name": "column", "attributes": {"allSize": 6}}]}
			]}`,
			check: func(t *testing.T, d *Document) {
				if len(d.Blocks) != 1 || d.Count() != 2 {
					t.Fatalf("got %d top-level, %d total blocks", len(d.Blocks), d.Count())
				}
				col := d.Blocks[0].InnerBlocks[0]
				if got := grid.ColumnClasses(col.Attributes); got != "col-6" {
					t.Errorf("inner column classes = %q", got)
				}
			},
		},
		{
			name:   "json single block",
			format: FormatJSON,
			input:  `{"name": "spacer", "attributes": {"paddingBottomXs": 3, "paddingBottomLg": 5}}`,
			check: func(t *testing.T, d *Document) {
				if got := grid.SpacerClasses(d.Blocks[0].Attributes); got != "p-3 p-lg-5" {
					t.Errorf("classes = %q", got)
				}
			},
		},
		{
			name:   "yaml bare attributes",
			format: FormatYAML,
			block:  "column",
			input:  "allSize: 12\nsmSize: 6\nmdSize: 4\n",
			check: func(t *testing.T, d *Document) {
				b := d.Blocks[0]
				if b.Name != "grid-system/column" {
					t.Errorf("Name = %q", b.Name)
				}
				if got := grid.ColumnClasses(b.Attributes); got != "col-12 col-sm-6 col-md-4" {
					t.Errorf("classes = %q", got)
				}
			},
		},
		{
			name:   "yaml block list",
			format: FormatYAML,
			input: `blocks:
  - name: row
    attributes:
      noGutters: true
  - name: container
`,
			check: func(t *testing.T, d *Document) {
				if len(d.Blocks) != 2 {
					t.Fatalf("got %d blocks", len(d.Blocks))
				}
				if d.Blocks[1].Attributes == nil {
					t.Error("missing attributes should decode as an empty record")
				}
			},
		},
		{
			name:   "toml block list",
			format: FormatTOML,
			input: `[[blocks]]
name = "column"
[blocks.attributes]
xsNone = false
allSize = "6"
smNone = true

[[blocks.innerBlocks]]
name = "spacer"
`,
			check: func(t *testing.T, d *Document) {
				if got := grid.ColumnClasses(d.Blocks[0].Attributes); got != "col-6 d-sm-none d-md-block col-md-6" {
					t.Errorf("classes = %q", got)
				}
				if len(d.Blocks[0].InnerBlocks) != 1 {
					t.Errorf("inner blocks = %d, want 1", len(d.Blocks[0].InnerBlocks))
				}
			},
		},
		{
			name:   "toml bare attributes",
			format: FormatTOML,
			block:  "responsive-spacer",
			input:  "paddingBottomXs = 2\n",
			check: func(t *testing.T, d *Document) {
				if got := grid.SpacerClasses(d.Blocks[0].Attributes); got != "p-2" {
					t.Errorf("classes = %q", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Read(strings.NewReader(tt.input), tt.format, tt.block)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			tt.check(t, d)
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		block string
		code  apperr.Code
	}{
		{"malformed", `{"blocks": [`, "", apperr.ErrCodeInvalidInput},
		{"bare without block", `{"allSize": 6}`, "", apperr.ErrCodeInvalidBlock},
		{"bare with unknown block", `{"allSize": 6}`, "gallery", apperr.ErrCodeInvalidBlock},
		{"unknown block name", `{"blocks": [{"name": "core/paragraph"}]}`, "", apperr.ErrCodeInvalidBlock},
		{"missing name", `{"blocks": [{"attributes": {}}]}`, "", apperr.ErrCodeInvalidBlock},
		{"blocks not a list", `{"blocks": {"name": "row"}}`, "", apperr.ErrCodeInvalidInput},
		{"attributes not an object", `{"name": "row", "attributes": [1]}`, "", apperr.ErrCodeInvalidInput},
		{"inner not a list", `{"name": "row", "innerBlocks": "column"}`, "", apperr.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), FormatJSON, tt.block)
			if err == nil {
				t.Fatal("expected error")
			}
			if !apperr.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", apperr.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"page.json", FormatJSON, false},
		{"page.YAML", FormatYAML, false},
		{"dir/page.yml", FormatYAML, false},
		{"page.toml", FormatTOML, false},
		{"page.txt", "", true},
		{"page", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "missing.json"), "")
	if !apperr.Is(err, apperr.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{
			Name:       "grid-system/row",
			Attributes: grid.Attributes{"alignItemsXs": "center", "noGutters": true},
			InnerBlocks: []Block{
				{Name: "grid-system/column", Attributes: grid.Attributes{"allSize": "6", "mdNone": true}},
				{Name: "grid-system/column", Attributes: grid.Attributes{"allSize": "6", "orderLg": "first"}},
			},
		},
		{Name: "grid-system/responsive-spacer", Attributes: grid.Attributes{"paddingBottomXs": 4}},
	}}

	for _, ext := range []string{"json", "yaml", "toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "page."+ext)
			if err := Export(doc, path); err != nil {
				t.Fatalf("Export: %v", err)
			}
			got, err := Import(path, "")
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if got.Count() != doc.Count() {
				t.Fatalf("Count = %d, want %d", got.Count(), doc.Count())
			}
			// Numeric types differ per format; class output must not.
			for i, b := range doc.Blocks {
				k, _ := b.Kind()
				want := grid.Classes(k, b.Attributes, grid.Canonical)
				if c := grid.Classes(k, got.Blocks[i].Attributes, grid.Canonical); c != want {
					t.Errorf("block %d classes = %q, want %q", i, c, want)
				}
			}
			inner := got.Blocks[0].InnerBlocks[0]
			if c := grid.ColumnClasses(inner.Attributes); c != "col-6 d-md-none" {
				t.Errorf("inner classes = %q", c)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	doc := &Document{Blocks: []Block{{Name: "grid-system/container", Attributes: grid.Attributes{}}}}
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "innerBlocks") {
		t.Error("empty innerBlocks should be omitted")
	}
	if !strings.Contains(buf.String(), `"name": "grid-system/container"`) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestExportUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.xml")
	if err := Export(&Document{}, path); err == nil {
		t.Error("expected error for unknown extension")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be created")
	}
}
