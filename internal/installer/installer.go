// Package installer runs a downloaded get-pip.py against the cache
// directory and normalizes the result to the bare importable pip package.
package installer

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pipboot/pipboot/internal/messages"
)

// keepEntry is the only immediate child of the target directory that
// survives pruning.
const keepEntry = "pip"

var runCommandFunc = runCommand

// Run invokes scriptPath under pythonPath, installing quietly into
// targetDir rather than the interpreter's own environment, then prunes the
// target directory down to the pip package itself. A non-zero installer
// exit is fatal; no partial-state rollback is attempted.
func Run(pythonPath string, scriptPath string, targetDir string, stderr io.Writer) error {
	if stderr == nil {
		stderr = io.Discard
	}
	args := []string{scriptPath, "--quiet", "--target", targetDir}
	if err := runCommandFunc(stderr, pythonPath, args...); err != nil {
		return fmt.Errorf(messages.InstallerRunFailedFmt, scriptPath, err)
	}
	return Prune(targetDir)
}

// Prune deletes every immediate child of targetDir whose name is not
// exactly "pip". The installer leaves dist-info, dependency packages, and
// bytecode caches behind; none of that is needed to import pip as a
// library, and leaving it would leak into tooling that introspects the
// path. One pass over the immediate children; the pip tree itself is
// never descended into.
func Prune(targetDir string) error {
	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return fmt.Errorf(messages.InstallerReadTargetFmt, targetDir, err)
	}
	for _, entry := range entries {
		if entry.Name() == keepEntry {
			continue
		}
		path := filepath.Join(targetDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf(messages.InstallerPruneEntryFmt, path, err)
		}
	}
	return nil
}

// runCommand executes the command with stderr passed through for installer
// diagnostics. Stdout stays silent; the installer runs with --quiet.
func runCommand(stderr io.Writer, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stderr = stderr
	return cmd.Run()
}
