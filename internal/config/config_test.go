package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "ollama", cfg.Generator.Command)
	assert.Equal(t, 30, cfg.Sampler.MaxFiles)
	assert.Equal(t, 12000, cfg.Sampler.CharBudget)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[generator]
model = "llama3"

[sampler]
max_files = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3", cfg.Generator.Model)
	assert.Equal(t, 10, cfg.Sampler.MaxFiles)
	// Untouched keys keep defaults.
	assert.Equal(t, "ollama", cfg.Generator.Command)
	assert.Equal(t, 12000, cfg.Sampler.CharBudget)
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestResolveTokenFromEnv(t *testing.T) {
	t.Setenv("DOCDROID_TEST_TOKEN", "ghp_abc")
	tok, err := ResolveToken(GitHubConfig{TokenSource: "env", TokenEnv: "DOCDROID_TEST_TOKEN"})
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc", tok)
}

func TestResolveTokenFromConfig(t *testing.T) {
	tok, err := ResolveToken(GitHubConfig{TokenSource: "config", Token: "ghp_cfg"})
	require.NoError(t, err)
	assert.Equal(t, "ghp_cfg", tok)
}

func TestResolveTokenEmptyEnvIsNotError(t *testing.T) {
	t.Setenv("DOCDROID_TEST_TOKEN", "")
	tok, err := ResolveToken(GitHubConfig{TokenSource: "env", TokenEnv: "DOCDROID_TEST_TOKEN"})
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestResolveTokenUnknownSource(t *testing.T) {
	_, err := ResolveToken(GitHubConfig{TokenSource: "keyring"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown token_source")
}
