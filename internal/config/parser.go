package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const legacyFormatWarning = "legacy key=value config format is deprecated; migrate to JSONC"

// Parse reads configuration content as JSONC (preferred) or legacy key/value format.
//
// JSONC is selected when the first non-whitespace character is `{`.
func Parse(content string, base Config) (Config, []Warning, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		validatedWarnings, err := Validate(base)
		if err != nil {
			return Config{}, nil, err
		}
		return base, validatedWarnings, nil
	}

	if strings.HasPrefix(trimmed, "{") {
		return parseJSONC(content, base)
	}

	cfg, warnings, err := parseLegacy(content, base)
	if err != nil {
		return Config{}, nil, err
	}
	warnings = append([]Warning{{Message: legacyFormatWarning}}, warnings...)
	return cfg, warnings, nil
}

func parseLegacy(content string, base Config) (Config, []Warning, error) {
	cfg := base

	for i, rawLine := range strings.Split(content, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rawValue, ok := strings.Cut(line, "=")
		if !ok {
			return Config{}, nil, fmt.Errorf("line %d: expected key = value", lineNo)
		}
		value, err := unquote(strings.TrimSpace(rawValue))
		if err != nil {
			return Config{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := applyLegacyKey(&cfg, strings.TrimSpace(key), value); err != nil {
			return Config{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

func applyLegacyKey(cfg *Config, key, value string) error {
	switch key {
	case "pipe.to":
		cfg.Pipe.To = value
	case "pipe.from":
		cfg.Pipe.From = value
	case "pipe.receive_timeout_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("pipe.receive_timeout_ms must be an integer, got %q", value)
		}
		cfg.Pipe.ReceiveTimeoutMS = n
	case "allow_interactive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("allow_interactive must be a boolean, got %q", value)
		}
		cfg.AllowInteractive = b
	case "audacity_cmd":
		argv, err := parseArgv(value)
		if err != nil {
			return fmt.Errorf("invalid audacity_cmd: %w", err)
		}
		cfg.Audacity = CommandConfig{Raw: value, Argv: argv}
	case "debug.wire_dump":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("debug.wire_dump must be a boolean, got %q", value)
		}
		cfg.Debug.WireDump = b
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

// unquote strips one matching pair of single or double quotes, so paths
// with spaces survive the key=value format.
func unquote(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	switch value[0] {
	case '\'':
		if len(value) < 2 || value[len(value)-1] != '\'' {
			return "", errors.New("missing closing single quote")
		}
		return value[1 : len(value)-1], nil
	case '"':
		if len(value) < 2 || value[len(value)-1] != '"' {
			return "", errors.New("missing closing double quote")
		}
		return value[1 : len(value)-1], nil
	}
	return value, nil
}
