// Package config loads the optional pipboot config file and resolves the
// effective settings from file values and PIPBOOT_* environment overrides.
// Resolution happens once at process start; the result is threaded into
// every component explicitly.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/pipboot/pipboot/internal/messages"
)

// EnvIndexURL, EnvPython, EnvCacheDir, and EnvNoNetwork define the
// environment override keys.
const (
	EnvIndexURL  = "PIPBOOT_INDEX_URL"
	EnvPython    = "PIPBOOT_PYTHON"
	EnvCacheDir  = "PIPBOOT_CACHE_DIR"
	EnvNoNetwork = "PIPBOOT_NO_NETWORK"
)

// FileName is the config file name under the user config directory.
const FileName = "config.toml"

// Config mirrors the config.toml schema.
type Config struct {
	IndexURL string `toml:"index_url"`
	Python   string `toml:"python"`
	CacheDir string `toml:"cache_dir"`
}

// Settings are the effective, fully resolved values.
type Settings struct {
	IndexURL  string
	Python    string
	CacheDir  string
	NoNetwork bool
	// ConfigPath is the file the settings were loaded from, empty when no
	// config file exists.
	ConfigPath string
}

// DefaultPath returns the config file path for the OS family. An empty
// path with a nil error means the platform convention cannot be resolved
// (for example APPDATA unset); the config file is optional, so that is not
// fatal.
func DefaultPath(sys System, osFamily string) (string, error) {
	if sys == nil {
		return "", fmt.Errorf(messages.ConfigSystemRequired)
	}
	switch osFamily {
	case "windows":
		appData := strings.TrimSpace(sys.Getenv("APPDATA"))
		if appData == "" {
			return "", nil
		}
		return filepath.Join(appData, "pipboot", FileName), nil
	default:
		if xdg := strings.TrimSpace(sys.Getenv("XDG_CONFIG_HOME")); xdg != "" {
			return filepath.Join(xdg, "pipboot", FileName), nil
		}
		home, err := sys.HomeDir()
		if err != nil {
			return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
		}
		return filepath.Join(home, ".config", "pipboot", FileName), nil
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates config TOML data. source is used in error
// messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnrecognizedKeysFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with unknown-field rejection so
// typos in key names fail loudly instead of being silently ignored.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Validate checks field values. Empty values are always valid; they mean
// "use the default".
func (c *Config) Validate(source string) error {
	trimmed := strings.TrimSpace(c.IndexURL)
	if trimmed == "" {
		return nil
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf(messages.ConfigIndexURLInvalidFmt, source, c.IndexURL)
	}
	return nil
}

// Resolve computes the effective settings: config file values first, then
// environment overrides. A missing config file is fine; a malformed one is
// fatal.
func Resolve(sys System, osFamily string) (Settings, error) {
	if sys == nil {
		return Settings{}, fmt.Errorf(messages.ConfigSystemRequired)
	}

	var settings Settings
	path, err := DefaultPath(sys, osFamily)
	if err != nil {
		return Settings{}, err
	}
	if path != "" {
		cfg, err := Load(path)
		switch {
		case err == nil:
			settings.IndexURL = strings.TrimSpace(cfg.IndexURL)
			settings.Python = strings.TrimSpace(cfg.Python)
			settings.CacheDir = strings.TrimSpace(cfg.CacheDir)
			settings.ConfigPath = path
		case errors.Is(err, os.ErrNotExist):
			// Optional file.
		default:
			return Settings{}, err
		}
	}

	if v := strings.TrimSpace(sys.Getenv(EnvIndexURL)); v != "" {
		settings.IndexURL = v
	}
	if v := strings.TrimSpace(sys.Getenv(EnvPython)); v != "" {
		settings.Python = v
	}
	if v := strings.TrimSpace(sys.Getenv(EnvCacheDir)); v != "" {
		settings.CacheDir = v
	}
	settings.NoNetwork = strings.TrimSpace(sys.Getenv(EnvNoNetwork)) != ""

	return settings, nil
}
