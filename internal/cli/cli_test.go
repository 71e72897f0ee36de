package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"analyze": false,
		"search":  false,
		"render":  false,
		"cache":   false,
		"serve":   false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() = %v", err)
	}
	if want := filepath.Join("/tmp/xdg-test", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("cacheDir() = %q, want a %q directory", dir, appName)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) = %v", err)
	}
	defer c.Close()

	// The null cache never stores anything.
	if err := c.Set(t.Context(), "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if _, hit, _ := c.Get(t.Context(), "k"); hit {
		t.Error("disabled cache returned a hit")
	}
}
