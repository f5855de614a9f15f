package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with args in an isolated XDG environment
// and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	prev := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = prev })

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// writeDoc writes body to name inside a temp dir and returns the path.
func writeDoc(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"render", "explain", "graph", "inspect", "breakpoints", "validate", "convert", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("verbose") == nil || root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing persistent flags")
	}
}

func TestConfigFlag(t *testing.T) {
	cfg := writeDoc(t, "config.toml", "profile = \"legacy\"\n[cache]\nbackend = \"none\"\n")
	out, err := run(t, "--config", cfg, "explain", "column", "allSize=6", "smNone=true", "mdNone=false")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "legacy profile") || !strings.Contains(out, "col-6 d-sm-none d-md-block\n") {
		t.Errorf("config profile not applied:\n%s", out)
	}

	if _, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "breakpoints"); err == nil {
		t.Error("missing --config file should fail")
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "gridsystem version") {
		t.Errorf("version output = %q", out)
	}
}
