// Package config resolves, parses, validates, and defaults audpipe
// configuration.
package config

import "time"

// Config is the fully materialized runtime configuration used by audpipe.
type Config struct {
	Pipe             PipeConfig
	AllowInteractive bool
	Audacity         CommandConfig
	Debug            DebugConfig
}

// PipeConfig overrides the scripting pipe endpoints and read patience.
// Empty paths keep the platform defaults.
type PipeConfig struct {
	To               string
	From             string
	ReceiveTimeoutMS int
}

// ReceiveTimeout converts the configured patience to a duration. Zero means
// wait forever.
func (p PipeConfig) ReceiveTimeout() time.Duration {
	return time.Duration(p.ReceiveTimeoutMS) * time.Millisecond
}

// CommandConfig stores a raw command string and its parsed argv form.
type CommandConfig struct {
	Raw  string
	Argv []string
}

// DebugConfig controls optional debug output.
type DebugConfig struct {
	WireDump bool
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
