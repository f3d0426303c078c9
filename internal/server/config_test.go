package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.Grace() != 5*time.Second {
		t.Fatalf("grace = %s", cfg.Grace())
	}
	if cfg.Theme.RendererConfig() != nil {
		t.Fatal("empty theme must resolve to nil renderer config")
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
addr: ":9090"
data_dir: /srv/yieldtables
header: "<header><h1>Yield tables</h1></header>"
theme:
  name: forest
  css_vars:
    "--brand": "#145214"
grace_seconds: 12
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.DataDir != "/srv/yieldtables" {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Grace() != 12*time.Second {
		t.Fatalf("grace = %s", cfg.Grace())
	}

	themeCfg := cfg.Theme.RendererConfig()
	if themeCfg == nil || themeCfg.Theme != "forest" || themeCfg.CSSVars["--brand"] != "#145214" {
		t.Fatalf("theme = %+v", themeCfg)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"addr": ":7070", "grace_seconds": 3}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.GraceSeconds != 3 {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", "data_dir: /data\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q, want default", cfg.Addr)
	}
	if cfg.DataDir != "/data" {
		t.Fatalf("data dir = %q", cfg.DataDir)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, "config.yaml", "addr: [broken\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	path := writeConfig(t, "config.yaml", "   \n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
