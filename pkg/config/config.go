// Package config loads rulebook configuration via koanf, layered from
// embedded defaults, an optional config file, and RULEBOOK_* environment
// variables, in increasing precedence.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/rulebook/pkg/errors"
	"github.com/arthur-debert/rulebook/pkg/logging"
)

//go:embed rulebook.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment variable overrides, e.g.
// RULEBOOK_RULES_DIR.
const EnvPrefix = "RULEBOOK_"

// Config is the resolved rulebook configuration.
type Config struct {
	Rules RulesConfig `koanf:"rules"`
	Watch WatchConfig `koanf:"watch"`
}

// RulesConfig locates and shapes the rule store.
type RulesConfig struct {
	// Dir is the directory searched recursively for rule documents
	Dir string `koanf:"dir"`

	// Extensions are the recognized rule file extensions
	Extensions []string `koanf:"extensions"`

	// RootDocument is an optional top-level always-apply document;
	// empty disables it
	RootDocument string `koanf:"root_document"`
}

// WatchConfig tunes the file watcher.
type WatchConfig struct {
	// Debounce is the quiet period before reloading, as a duration string
	Debounce string `koanf:"debounce"`
}

// DebounceDelay returns the parsed debounce duration, falling back to
// 500ms on a malformed value.
func (w WatchConfig) DebounceDelay() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

// Load resolves the configuration for the given working directory. The
// first of .rulebook.toml and rulebook.toml found in dir is layered over
// the embedded defaults, then environment variables are applied on top.
func Load(dir string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrLoad, "loading default configuration")
	}

	for _, filename := range []string{".rulebook.toml", "rulebook.toml"} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrLoad, "loading configuration from %s", path)
		}
		logger.Debug().Str("path", path).Msg("loaded config file")
		break
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrLoad, "loading environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrLoad, "unmarshaling configuration")
	}

	return &cfg, nil
}

// envToKey maps RULEBOOK_RULES_ROOT_DOCUMENT to rules.root_document: the
// first underscore separates the section, the rest stays as the key.
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(s, "_", 2)
	return strings.Join(parts, ".")
}
