package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pipboot/pipboot/internal/bootstrap"
	"github.com/pipboot/pipboot/internal/pyenv"
	"github.com/pipboot/pipboot/internal/pyversion"
)

func TestUpgradeRebuildsAndReports(t *testing.T) {
	origResolve := resolveEnvFunc
	origRebuild := rebuildFunc
	defer func() {
		resolveEnvFunc = origResolve
		rebuildFunc = origRebuild
	}()

	fakeEnv := environment{
		interp:    pyenv.Interpreter{Path: "/usr/bin/python3", Version: pyversion.Version{Major: 3, Minor: 9}},
		cacheRoot: "/home/dev/.cache/pipboot/3.9",
	}
	resolveEnvFunc = func() (environment, error) { return fakeEnv, nil }

	rebuilt := false
	rebuildFunc = func(opts bootstrap.Options) error {
		rebuilt = true
		if opts.CacheRoot != fakeEnv.cacheRoot {
			t.Fatalf("unexpected cache root %q", opts.CacheRoot)
		}
		return nil
	}

	var out bytes.Buffer
	if err := execute([]string{"pipboot", "upgrade-pip"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !rebuilt {
		t.Fatalf("expected rebuild")
	}
	if !strings.Contains(out.String(), "rebuilt pip for Python 3.9") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestUpgradeRebuildFailurePropagates(t *testing.T) {
	origResolve := resolveEnvFunc
	origRebuild := rebuildFunc
	defer func() {
		resolveEnvFunc = origResolve
		rebuildFunc = origRebuild
	}()

	resolveEnvFunc = func() (environment, error) { return environment{}, nil }
	rebuildFunc = func(opts bootstrap.Options) error { return errors.New("index unreachable") }

	var out bytes.Buffer
	if err := execute([]string{"pipboot", "upgrade-pip"}, &out, &out); err == nil {
		t.Fatalf("expected error")
	}
}

func TestUpgradeResolveFailurePropagates(t *testing.T) {
	origResolve := resolveEnvFunc
	defer func() { resolveEnvFunc = origResolve }()

	resolveEnvFunc = func() (environment, error) {
		return environment{}, errors.New("python 3.4 at /usr/bin/python is not supported")
	}

	var out bytes.Buffer
	err := execute([]string{"pipboot", "upgrade-pip"}, &out, &out)
	if err == nil || !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestUpgradeRejectsExtraArgs(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"pipboot", "upgrade-pip", "extra"}, &out, &out); err == nil {
		t.Fatalf("expected error for extra args")
	}
}
