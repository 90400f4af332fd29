// cmd/docdroid/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docdroid/docdroid/internal/config"
	"github.com/docdroid/docdroid/internal/sampler"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath string
	tokenFlag  string
)

func versionString() string {
	return fmt.Sprintf("docdroid %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "docdroid",
		Short:         "Generate README files with a local AI model",
		Long:          "docdroid — generate a README for a repository by sampling its content,\nprompting a locally running Ollama model, and optionally publishing the\nresult to GitHub as a pull request.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "GitHub access token (overrides config and environment)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(versionString())
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(publishCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(ollamaCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path and loads the config. Defaults to
// ~/.config/docdroid/config.toml.
func loadConfig() (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgPath = filepath.Join(home, ".config", "docdroid", "config.toml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveToken returns the GitHub token from the --token flag or the
// configured source. An empty token is allowed for read-only use.
func resolveToken(cfg *config.Config) (string, error) {
	if tokenFlag != "" {
		return tokenFlag, nil
	}
	return config.ResolveToken(cfg.GitHub)
}

// samplerBudget builds the sampling budget from config, with the
// tighter remote per-file snippet cap when the walk goes over the API.
func samplerBudget(cfg *config.Config, remote bool) sampler.Budget {
	b := sampler.DefaultBudget()
	if remote {
		b = sampler.RemoteBudget()
	}
	if cfg.Sampler.MaxFiles > 0 {
		b.MaxFiles = cfg.Sampler.MaxFiles
	}
	if cfg.Sampler.CharBudget > 0 {
		b.MaxChars = cfg.Sampler.CharBudget
	}
	if cfg.Sampler.MaxDirs > 0 {
		b.MaxDirs = cfg.Sampler.MaxDirs
	}
	if !remote && cfg.Sampler.SnippetCap > 0 {
		b.SnippetCap = cfg.Sampler.SnippetCap
	}
	return b
}
