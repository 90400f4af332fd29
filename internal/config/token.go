package config

import (
	"fmt"
	"os"
)

// ResolveToken resolves a GitHub access token based on the configured
// source. Supported sources: "env" (from environment variable),
// "config" (from config value). An empty token is not an error: public
// repositories can be sampled anonymously.
func ResolveToken(cfg GitHubConfig) (string, error) {
	switch cfg.TokenSource {
	case "", "env":
		envVar := cfg.TokenEnv
		if envVar == "" {
			envVar = "GITHUB_TOKEN"
		}
		return os.Getenv(envVar), nil
	case "config":
		return cfg.Token, nil
	default:
		return "", fmt.Errorf("unknown token_source: %q", cfg.TokenSource)
	}
}
