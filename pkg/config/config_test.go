// Test Type: Unit Test
// Description: Tests for the config package - layering of defaults, config file, and environment

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rulebook/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".rulebook/rules", cfg.Rules.Dir)
	assert.Equal(t, []string{".mdc", ".md"}, cfg.Rules.Extensions)
	assert.Equal(t, "RULEBOOK.md", cfg.Rules.RootDocument)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.DebounceDelay())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "[rules]\ndir = \"guidance\"\n\n[watch]\ndebounce = \"2s\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rulebook.toml"), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "guidance", cfg.Rules.Dir)
	assert.Equal(t, 2*time.Second, cfg.Watch.DebounceDelay())
	// Untouched keys keep their defaults
	assert.Equal(t, []string{".mdc", ".md"}, cfg.Rules.Extensions)
}

func TestLoad_DottedFileWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rulebook.toml"),
		[]byte("[rules]\ndir = \"dotted\"\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rulebook.toml"),
		[]byte("[rules]\ndir = \"plain\"\n"), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "dotted", cfg.Rules.Dir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rulebook.toml"),
		[]byte("[rules]\ndir = \"from-file\"\n"), 0644))

	t.Setenv("RULEBOOK_RULES_DIR", "from-env")
	t.Setenv("RULEBOOK_RULES_ROOT_DOCUMENT", "TOP.md")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Rules.Dir)
	assert.Equal(t, "TOP.md", cfg.Rules.RootDocument)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rulebook.toml"),
		[]byte("not [valid toml"), 0644))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestDebounceDelay_Fallback(t *testing.T) {
	w := config.WatchConfig{Debounce: "not-a-duration"}
	assert.Equal(t, 500*time.Millisecond, w.DebounceDelay())

	w = config.WatchConfig{Debounce: "-1s"}
	assert.Equal(t, 500*time.Millisecond, w.DebounceDelay())
}
