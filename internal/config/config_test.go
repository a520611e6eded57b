package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeSystem struct {
	env  map[string]string
	home string
}

func (s fakeSystem) Getenv(key string) string {
	return s.env[key]
}

func (s fakeSystem) HomeDir() (string, error) {
	return s.home, nil
}

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, "pipboot", FileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultPathXDG(t *testing.T) {
	sys := fakeSystem{env: map[string]string{"XDG_CONFIG_HOME": "/tmp/conf"}}
	got, err := DefaultPath(sys, "linux")
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != "/tmp/conf/pipboot/config.toml" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestDefaultPathHomeFallback(t *testing.T) {
	sys := fakeSystem{env: map[string]string{}, home: "/home/u"}
	got, err := DefaultPath(sys, "linux")
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != "/home/u/.config/pipboot/config.toml" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestDefaultPathWindows(t *testing.T) {
	sys := fakeSystem{env: map[string]string{"APPDATA": `C:\Users\u\AppData\Roaming`}}
	got, err := DefaultPath(sys, "windows")
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != filepath.Join(`C:\Users\u\AppData\Roaming`, "pipboot", "config.toml") {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestDefaultPathWindowsMissingAppData(t *testing.T) {
	sys := fakeSystem{env: map[string]string{}}
	got, err := DefaultPath(sys, "windows")
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
}

func TestParseValidConfig(t *testing.T) {
	data := []byte("index_url = \"https://mirror.test/pip\"\npython = \"python3.11\"\ncache_dir = \"\"\n")
	cfg, err := Parse(data, "config.toml")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.IndexURL != "https://mirror.test/pip" {
		t.Fatalf("unexpected index_url %q", cfg.IndexURL)
	}
	if cfg.Python != "python3.11" {
		t.Fatalf("unexpected python %q", cfg.Python)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("indexurl = \"https://x\"\n"), "config.toml")
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unrecognized") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRejectsBadSyntax(t *testing.T) {
	if _, err := Parse([]byte("index_url = "), "config.toml"); err == nil {
		t.Fatalf("expected error for bad TOML")
	}
}

func TestParseRejectsBadIndexURL(t *testing.T) {
	if _, err := Parse([]byte("index_url = \"ftp://mirror.test\"\n"), "config.toml"); err == nil {
		t.Fatalf("expected error for non-http index_url")
	}
}

func TestResolveFileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "index_url = \"https://mirror.test/pip\"\npython = \"python3.10\"\n")

	sys := fakeSystem{env: map[string]string{
		"XDG_CONFIG_HOME": dir,
		EnvPython:         "/opt/py/bin/python",
		EnvNoNetwork:      "1",
	}}

	settings, err := Resolve(sys, "linux")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if settings.IndexURL != "https://mirror.test/pip" {
		t.Fatalf("file value should apply, got %q", settings.IndexURL)
	}
	if settings.Python != "/opt/py/bin/python" {
		t.Fatalf("env override should win, got %q", settings.Python)
	}
	if !settings.NoNetwork {
		t.Fatalf("expected NoNetwork")
	}
	if settings.ConfigPath == "" {
		t.Fatalf("expected ConfigPath to be recorded")
	}
}

func TestResolveMissingFileIsFine(t *testing.T) {
	sys := fakeSystem{env: map[string]string{"XDG_CONFIG_HOME": t.TempDir()}}
	settings, err := Resolve(sys, "linux")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if settings.ConfigPath != "" {
		t.Fatalf("expected no config path, got %q", settings.ConfigPath)
	}
}

func TestResolveMalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "index_url = [broken\n")

	sys := fakeSystem{env: map[string]string{"XDG_CONFIG_HOME": dir}}
	if _, err := Resolve(sys, "linux"); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestResolveNilSystem(t *testing.T) {
	if _, err := Resolve(nil, "linux"); err == nil {
		t.Fatalf("expected error for nil system")
	}
}
