package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Loaded is the result of Load: where the config came from, the effective
// values, and anything worth telling the user about.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// Load resolves the config location, reads it, and parses whatever format it
// finds. A missing file is not an error: defaults apply and the result says
// so. Without an explicit path, a legacy config.conf is honored when
// config.jsonc is absent.
func Load(explicitPath string) (Loaded, error) {
	resolved, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	implicit := strings.TrimSpace(explicitPath) == ""
	path, content, warnings, err := readConfig(resolved, implicit)
	if errors.Is(err, os.ErrNotExist) {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("config file %q not found; using defaults", path),
		})
		return Loaded{Path: path, Config: Default(), Warnings: warnings, Exists: false}, nil
	}
	if err != nil {
		return Loaded{}, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, parseWarnings, err := Parse(string(content), Default())
	if err != nil {
		return Loaded{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	return Loaded{
		Path:     path,
		Config:   cfg,
		Warnings: append(warnings, parseWarnings...),
		Exists:   true,
	}, nil
}

// readConfig reads path, falling back to the legacy config.conf sibling when
// the preferred file is missing and the location was not user-chosen.
func readConfig(path string, allowLegacy bool) (string, []byte, []Warning, error) {
	content, err := os.ReadFile(path)
	if err == nil || !errors.Is(err, os.ErrNotExist) || !allowLegacy {
		return path, content, nil, err
	}

	legacyPath := strings.TrimSuffix(path, ".jsonc") + ".conf"
	legacyContent, legacyErr := os.ReadFile(legacyPath)
	if legacyErr != nil {
		// Report against the preferred path, not the fallback.
		return path, nil, nil, err
	}

	warnings := []Warning{{
		Message: fmt.Sprintf("using legacy config path %q; rename to config.jsonc", legacyPath),
	}}
	return legacyPath, legacyContent, warnings, nil
}
