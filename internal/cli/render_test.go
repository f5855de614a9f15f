package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/newjenk/gridsystem/pkg/grid"
	"github.com/newjenk/gridsystem/pkg/pipeline"
)

const pageJSON = `{"blocks":[
  {"name":"row","attributes":{"alignItemsXs":"center"},"innerBlocks":[
    {"name":"column","attributes":{"allSize":"12","smSize":"6","mdSize":"4"}},
    {"name":"column","attributes":{"allSize":"6","smNone":true,"mdNone":false}}
  ]},
  {"name":"spacer","attributes":{"paddingBottomXs":3,"paddingBottomLg":5}}
]}`

func TestRenderFormats(t *testing.T) {
	page := writeDoc(t, "page.json", pageJSON)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "text",
			args: []string{"render", page},
			want: "row align-items-center justify-content-start\n" +
				"  col-12 col-sm-6 col-md-4\n" +
				"  col-6 d-sm-none d-md-block col-md-6\n" +
				"p-3 p-lg-5\n",
		},
		{
			name: "legacy",
			args: []string{"render", page, "--profile", "legacy"},
			want: "row align-items-center justify-content-start\n" +
				"  col-12 col-sm-6 col-md-4\n" +
				"  col-6 d-sm-none d-md-block\n" +
				"p-3 p-lg-5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.want {
				t.Errorf("output =\n%s\nwant\n%s", out, tt.want)
			}
		})
	}
}

func TestRenderHTMLAndJSON(t *testing.T) {
	page := writeDoc(t, "page.yaml", "name: column\nattributes:\n  allSize: \"12\"\n  mdOffset: \"2\"\n")

	out, err := run(t, "render", page, "-f", "html")
	if err != nil {
		t.Fatal(err)
	}
	if out != "<div class=\"wp-block-grid-system-column col-12 offset-md-2\"></div>\n" {
		t.Errorf("html = %q", out)
	}

	out, err = run(t, "render", page, "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"classes": "col-12 offset-md-2"`) {
		t.Errorf("json = %s", out)
	}
}

func TestRenderBareAttributes(t *testing.T) {
	attrs := writeDoc(t, "col.json", `{"allSize":"12","orderXs":"2","orderSm":"default"}`)

	if _, err := run(t, "render", attrs); err == nil {
		t.Error("bare attributes without --block should fail")
	}
	out, err := run(t, "render", attrs, "--block", "column")
	if err != nil {
		t.Fatal(err)
	}
	if out != "col-12 order-2 order-sm-0\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRenderStrict(t *testing.T) {
	attrs := writeDoc(t, "col.json", `{"allSize":"13"}`)
	if _, err := run(t, "render", attrs, "-b", "column"); err != nil {
		t.Errorf("non-strict render should accept out-of-domain values: %v", err)
	}
	if _, err := run(t, "render", attrs, "-b", "column", "--strict"); err == nil {
		t.Error("strict render should reject size 13")
	}
}

func TestRenderOutputFile(t *testing.T) {
	page := writeDoc(t, "page.json", pageJSON)
	dest := filepath.Join(t.TempDir(), "out", "page.html")

	out, err := run(t, "render", page, "-f", "html", "-o", dest)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout should be empty with --output, got %q", out)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `aria-hidden="true"`) {
		t.Errorf("file = %s", data)
	}
}

func TestRenderErrors(t *testing.T) {
	page := writeDoc(t, "page.json", pageJSON)

	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", page, "-f", "pdf"}},
		{"bad profile", []string{"render", page, "-p", "modern"}},
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "nope.json")}},
		{"unknown extension", []string{"render", writeDoc(t, "page.txt", "{}")}},
		{"watch stdin", []string{"render", "-", "--watch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestPipelineOptions(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.Config.Profile = grid.Legacy

	po, err := c.pipelineOptions(renderOpts{format: pipeline.FormatHTML})
	if err != nil {
		t.Fatal(err)
	}
	if po.Profile != grid.Legacy || po.Format != pipeline.FormatHTML || po.Concurrency != pipeline.DefaultConcurrency {
		t.Errorf("options = %+v", po)
	}

	po, _ = c.pipelineOptions(renderOpts{format: pipeline.FormatText, profile: "canonical", strict: true})
	if po.Profile != grid.Canonical || !po.Strict {
		t.Errorf("flags should override config: %+v", po)
	}
}

func TestWriteOutput(t *testing.T) {
	var sb strings.Builder
	if err := writeOutput("", []byte("col-6"), &sb); err != nil || sb.String() != "col-6" {
		t.Errorf("stdout write = %q, %v", sb.String(), err)
	}

	path := filepath.Join(t.TempDir(), "a", "b.txt")
	if err := writeOutput(path, []byte("row"), &sb); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(path); string(data) != "row" {
		t.Errorf("file = %q", data)
	}
}
