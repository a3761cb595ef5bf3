package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// envFiles are tried in order; the first one that exists is loaded.
var envFiles = []string{
	".env",
	".env.local",
}

// LoadEnv loads environment variables from a .env file in the working
// directory if one exists. Variables already set in the process win. A broken
// file is logged and skipped: the environment is only the last fallback.
func LoadEnv(logger *zap.Logger) {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn("ignoring env file", zap.String("path", envPath), zap.Error(err))
			return
		}
		logger.Debug("loaded env file", zap.String("path", envPath))
		return
	}
}
