package config

const (
	defaultConfigPath    = "~/.config/langcodes/config.toml"
	projectConfigName    = "langcodes.toml"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultOutput        = "table"
	defaultColor         = "auto"
	logLevelEnvVar       = "LANGCODES_LOG_LEVEL"
	defaultMinConfidence = 0.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutput,
			Color:  defaultColor,
		},
		Detect: Detect{
			MinConfidence: defaultMinConfidence,
		},
	}
}
