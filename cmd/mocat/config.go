package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// config holds the CLI demo's persistent defaults. Grounded on the
// teacher's tk Config/LoadConfig shape: a small JSON-tagged struct loaded
// from a JWCC (JSON-with-comments) file via hujson, with CLI flags
// overriding whatever the file sets.
type config struct {
	CatalogPath string `json:"catalog_path,omitempty"`
	Format      string `json:"format,omitempty"` // "json" | "yaml"
	Logging     bool   `json:"logging,omitempty"`
}

const configFileName = "config.jsonc"

func defaultConfig() config {
	return config{Format: "json"}
}

// globalConfigPath returns ~/.config/mocat/config.jsonc (or
// $XDG_CONFIG_HOME/mocat/config.jsonc), empty if undeterminable.
func globalConfigPath(env []string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "XDG_CONFIG_HOME="); ok {
			return filepath.Join(after, "mocat", configFileName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "mocat", configFileName)
}

// loadConfig loads defaults overlaid with the global config file, if
// present. Missing files are not an error.
func loadConfig(env []string) (config, error) {
	cfg := defaultConfig()

	path := globalConfigPath(env)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from trusted env/home dir
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return config{}, fmt.Errorf("invalid JSONC in %s: %w", path, err)
	}

	var fileCfg config

	if err := json.Unmarshal(standardized, &fileCfg); err != nil {
		return config{}, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	return mergeConfig(cfg, fileCfg), nil
}

func mergeConfig(base, overlay config) config {
	if overlay.CatalogPath != "" {
		base.CatalogPath = overlay.CatalogPath
	}

	if overlay.Format != "" {
		base.Format = overlay.Format
	}

	base.Logging = overlay.Logging || base.Logging

	return base
}
