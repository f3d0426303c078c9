package server

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// Config holds the server settings a deployment can override. Zero values
// fall back to the defaults from DefaultConfig.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `json:"addr" yaml:"addr"`
	// DataDir points at a directory with yield_tables.csv and
	// yield_tables_meta.csv. Empty uses the embedded dataset.
	DataDir string `json:"data_dir" yaml:"data_dir"`
	// Head and Header replace the built-in page chrome fragments.
	Head   string `json:"head" yaml:"head"`
	Header string `json:"header" yaml:"header"`
	// Theme configures the HTML view's theme attributes and CSS variables.
	Theme ThemeConfig `json:"theme" yaml:"theme"`
	// GraceSeconds bounds how long shutdown waits for in-flight requests.
	GraceSeconds int `json:"grace_seconds" yaml:"grace_seconds"`
}

// ThemeConfig mirrors the subset of theme settings the HTML view consumes.
type ThemeConfig struct {
	Name    string            `json:"name" yaml:"name"`
	Variant string            `json:"variant" yaml:"variant"`
	CSSVars map[string]string `json:"css_vars" yaml:"css_vars"`
}

// RendererConfig converts the file settings into the renderer theme config,
// or nil when no theme is configured.
func (t ThemeConfig) RendererConfig() *theme.RendererConfig {
	if t.Name == "" && t.Variant == "" && len(t.CSSVars) == 0 {
		return nil
	}
	return &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		CSSVars: t.CSSVars,
	}
}

// DefaultConfig returns the settings used when no config file is supplied.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		GraceSeconds: 5,
	}
}

// Grace returns the shutdown grace period as a duration.
func (c Config) Grace() time.Duration {
	if c.GraceSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.GraceSeconds) * time.Second
}

// LoadConfig reads a JSON or YAML config file and overlays it on the
// defaults. The payload is tried as JSON first, then YAML, so both formats
// work without the caller declaring which one the file uses.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("server: read config %s: %w", path, err)
	}
	return parseConfig(data, path)
}

func parseConfig(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("server: config %s is empty", source)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = DefaultConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("server: parse config %s: invalid JSON or YAML", source)
		}
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	return cfg, nil
}
