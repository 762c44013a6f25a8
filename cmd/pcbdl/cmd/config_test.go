package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoadConfigExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pcbdl.toml")
	content := "no_connect_prefix = \"unconnected-\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.NoConnectPrefix != "unconnected-" {
		t.Errorf("Expected no_connect_prefix 'unconnected-', got %q", cfg.NoConnectPrefix)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Expected debug level, got %v", cfg.Level())
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error for missing explicit config file, got nil")
	}
}

func TestLoadConfigDefaultAbsent(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Expected absent default config to be tolerated, got %v", err)
	}
	if cfg.Level() != log.InfoLevel {
		t.Errorf("Expected info level default, got %v", cfg.Level())
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("no_connect_prefix = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed TOML, got nil")
	}
}
