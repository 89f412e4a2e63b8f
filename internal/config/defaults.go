package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	audacity := "audacity"

	return Config{
		Pipe:             PipeConfig{},
		AllowInteractive: true,
		Audacity:         CommandConfig{Raw: audacity, Argv: mustParseArgv(audacity)},
		Debug:            DebugConfig{},
	}
}
