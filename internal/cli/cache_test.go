package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/newjenk/gridsystem/internal/config"
	"github.com/newjenk/gridsystem/pkg/cache"
)

func TestCacheLocation(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	tests := []struct {
		name string
		mod  func(*config.Config)
		want string
	}{
		{"file default", func(*config.Config) {}, filepath.Join("/tmp/xdg-cache", appName)},
		{"file explicit", func(c *config.Config) { c.Cache.Dir = "/srv/cache" }, "/srv/cache"},
		{"none", func(c *config.Config) { c.Cache.Backend = config.BackendNone }, "disabled"},
		{"redis", func(c *config.Config) {
			c.Cache.Backend = config.BackendRedis
			c.Redis.Addr = "cache:6379"
			c.Redis.DB = 1
		}, "redis://cache:6379/1 (gridsystem:*)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mod(&cfg)
			if got := cacheLocation(cfg); got != tt.want {
				t.Errorf("cacheLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := run(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q", out)
	}
}

func TestCacheClearCommand(t *testing.T) {
	cacheHome := t.TempDir()
	cfgPath := writeDoc(t, "config.toml", "[cache]\ndir = \""+filepath.ToSlash(cacheHome)+"\"\n")

	store, err := cache.NewFileCache(cacheHome)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	_ = store.Set(ctx, "classes:abc", []byte("col-6"), time.Hour)

	if _, err := run(t, "--config", cfgPath, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := store.Get(ctx, "classes:abc"); hit {
		t.Error("cache clear left entries behind")
	}
	if _, err := os.Stat(cacheHome); err != nil {
		t.Errorf("cache directory removed: %v", err)
	}
}

func TestRenderUsesCache(t *testing.T) {
	cacheHome := t.TempDir()
	cfgPath := writeDoc(t, "config.toml", "[cache]\ndir = \""+filepath.ToSlash(cacheHome)+"\"\n")
	page := writeDoc(t, "page.json", pageJSON)

	first, err := run(t, "--config", cfgPath, "render", page)
	if err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(cacheHome)
	if len(entries) == 0 {
		t.Fatal("render wrote nothing to the cache")
	}
	second, err := run(t, "--config", cfgPath, "render", page)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("cached render differs:\n%s\nvs\n%s", first, second)
	}
}
