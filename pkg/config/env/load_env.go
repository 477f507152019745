package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH
// overrides defaultPath. A missing file only fails in local mode
// (APP_ENV empty or "local"); deployed environments configure through
// real environment variables.
func LoadDotEnv(defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		appEnv := os.Getenv("APP_ENV")
		if appEnv == "local" || appEnv == "" {
			slog.Error("Failed to load environment variables in local mode", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}

	return nil
}
