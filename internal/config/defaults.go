package config

import "time"

// Default configuration constants
const (
	// DefaultConfigFile is the saved-config path, relative to the working directory.
	DefaultConfigFile = "whisper_config.json"

	// EnvAPIKey is the environment fallback for the API key.
	EnvAPIKey = "OPENAI_API_KEY"

	// DefaultModel is sent when no --model is given.
	DefaultModel = "whisper-1"

	// DefaultTimeout of zero leaves the request unbounded.
	DefaultTimeout time.Duration = 0

	// MaxTimeout caps --timeout.
	MaxTimeout = 30 * time.Minute
)
