package completion

import (
	"os"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Config struct {
	BaseURL string
}

func LoadConfigFromEnv() *Config {
	baseUrl := os.Getenv("OPENAI_BASE_URL")
	if baseUrl == "" {
		baseUrl = defaultBaseURL
	}

	return &Config{
		BaseURL: baseUrl,
	}
}
