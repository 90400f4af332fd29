package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the top-level application configuration.
type Config struct {
	Generator GeneratorConfig `toml:"generator"`
	Sampler   SamplerConfig   `toml:"sampler"`
	GitHub    GitHubConfig    `toml:"github"`
}

// GeneratorConfig holds settings for the local text-generation backend.
type GeneratorConfig struct {
	Command string `toml:"command"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// SamplerConfig bounds the repository content walk.
type SamplerConfig struct {
	MaxFiles   int `toml:"max_files"`
	CharBudget int `toml:"char_budget"`
	MaxDirs    int `toml:"max_dirs"`
	SnippetCap int `toml:"snippet_cap"`
}

// GitHubConfig holds settings for the GitHub REST API.
type GitHubConfig struct {
	APIBase     string `toml:"api_base"`
	TokenSource string `toml:"token_source"`
	Token       string `toml:"token"`
	TokenEnv    string `toml:"token_env"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Command: "ollama",
			Model:   "deepseek-coder:6.7b-instruct",
			BaseURL: "http://localhost:11434",
		},
		Sampler: SamplerConfig{
			MaxFiles:   30,
			CharBudget: 12000,
			MaxDirs:    50,
			SnippetCap: 800,
		},
		GitHub: GitHubConfig{
			TokenSource: "env",
			TokenEnv:    "GITHUB_TOKEN",
		},
	}
}

// Load reads a TOML config file from the given path, layered over
// DefaultConfig. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
