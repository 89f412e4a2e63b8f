package config

import (
	"fmt"
	"path/filepath"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if cfg.Pipe.ReceiveTimeoutMS < 0 {
		return nil, fmt.Errorf("pipe.receive_timeout_ms must be >= 0")
	}
	if cfg.Pipe.To != "" && !filepath.IsAbs(cfg.Pipe.To) {
		return nil, fmt.Errorf("pipe.to must be an absolute path")
	}
	if cfg.Pipe.From != "" && !filepath.IsAbs(cfg.Pipe.From) {
		return nil, fmt.Errorf("pipe.from must be an absolute path")
	}
	if len(cfg.Audacity.Argv) == 0 {
		return nil, fmt.Errorf("audacity_cmd must not be empty")
	}

	if (cfg.Pipe.To == "") != (cfg.Pipe.From == "") {
		warnings = append(warnings, Warning{
			Message: "only one pipe endpoint is overridden; the other keeps its platform default",
		})
	}

	return warnings, nil
}
