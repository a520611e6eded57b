package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitRunsWizardWithDefaultPath(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	original := runWizard
	var gotPath string
	var gotForce bool
	runWizard = func(configPath string, force bool) error {
		gotPath = configPath
		gotForce = force
		return nil
	}
	defer func() { runWizard = original }()

	var out bytes.Buffer
	if err := execute([]string{"pipboot", "init"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if gotPath != filepath.Join(configHome, "pipboot", "config.toml") {
		t.Fatalf("unexpected config path %q", gotPath)
	}
	if gotForce {
		t.Fatalf("force should default to false")
	}
}

func TestInitForceFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	original := runWizard
	var gotForce bool
	runWizard = func(configPath string, force bool) error {
		gotForce = force
		return nil
	}
	defer func() { runWizard = original }()

	var out bytes.Buffer
	if err := execute([]string{"pipboot", "init", "--force"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !gotForce {
		t.Fatalf("expected force flag to propagate")
	}
}

func TestInitWizardErrorPropagates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	original := runWizard
	runWizard = func(configPath string, force bool) error {
		return errors.New("no terminal")
	}
	defer func() { runWizard = original }()

	var out bytes.Buffer
	err := execute([]string{"pipboot", "init"}, &out, &out)
	if err == nil || !strings.Contains(err.Error(), "no terminal") {
		t.Fatalf("unexpected error %v", err)
	}
}
